package http

import (
	"github.com/openshelf/librarian/internal/database"
	"github.com/openshelf/librarian/internal/database/cascade"
	"github.com/openshelf/librarian/internal/database/catalog"
	"github.com/openshelf/librarian/internal/database/circulation"
	"github.com/openshelf/librarian/internal/database/dashboard"
	"github.com/openshelf/librarian/internal/seed"
)

// RouterConfig carries every dependency the router needs, so route wiring
// stays testable without the full entrypoint.
type RouterConfig struct {
	Database    *database.Database
	Catalog     *catalog.Repository
	Circulation *circulation.Repository
	Cascade     *cascade.Engine
	Dashboard   *dashboard.Repository
	Seeder      *seed.Seeder

	// Export refreshes CSV snapshots after mutating writes. May be nil, in
	// which case the side channel is disabled.
	Export ExportFunc

	Version string
}

// NewRouterConfig builds a RouterConfig with repositories derived from db.
func NewRouterConfig(db *database.Database, export ExportFunc, version string) RouterConfig {
	return RouterConfig{
		Database:    db,
		Catalog:     catalog.NewRepository(db.DB),
		Circulation: circulation.NewRepository(db.DB),
		Cascade:     cascade.NewEngine(db.DB),
		Dashboard:   dashboard.NewRepository(db.DB),
		Seeder:      seed.NewSeeder(db.DB),
		Export:      export,
		Version:     version,
	}
}
