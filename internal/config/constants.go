package config

// Default paths
const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./librarian.db"

	// DefaultExportDir is the default directory for CSV table snapshots
	DefaultExportDir = "./data"
)
