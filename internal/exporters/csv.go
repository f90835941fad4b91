// Package exporters writes denormalized table snapshots for external
// consumption. The snapshots are a side channel: callers log failures and move
// on, a broken export must never fail the request that triggered it.
package exporters

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/gorm"
)

// exportFiles maps exportable tables to their snapshot file names.
var exportFiles = map[string]string{
	"books":   "books.csv",
	"copies":  "copies.csv",
	"loans":   "loans.csv",
	"members": "members.csv",
}

// ExportableTables lists every table with a configured snapshot file.
func ExportableTables() []string {
	return []string{"books", "copies", "loans", "members"}
}

// CSVExporter dumps full table contents as CSV files under a fixed directory:
// a header row of column names followed by one row per record.
type CSVExporter struct {
	db  *gorm.DB
	dir string
}

// NewCSVExporter creates an exporter writing into dir.
func NewCSVExporter(db *gorm.DB, dir string) *CSVExporter {
	return &CSVExporter{db: db, dir: dir}
}

// ExportTable writes the current contents of table to its snapshot file,
// replacing the previous snapshot.
func (e *CSVExporter) ExportTable(table string) error {
	filename, ok := exportFiles[table]
	if !ok {
		return fmt.Errorf("no export configured for table %s", table)
	}

	// Table name comes from the whitelist above, never from request input.
	rows, err := e.db.Raw("SELECT * FROM " + table).Rows()
	if err != nil {
		return fmt.Errorf("failed to read table %s: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("failed to read columns of %s: %w", table, err)
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	file, err := os.Create(filepath.Join(e.dir, filename))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", filename, err)
	}

	values := make([]any, len(columns))
	pointers := make([]any, len(columns))
	for i := range values {
		pointers[i] = &values[i]
	}

	record := make([]string, len(columns))
	for rows.Next() {
		if err := rows.Scan(pointers...); err != nil {
			return fmt.Errorf("failed to scan row of %s: %w", table, err)
		}
		for i, value := range values {
			record[i] = formatCell(value)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row of %s: %w", filename, err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate table %s: %w", table, err)
	}

	writer.Flush()
	return writer.Error()
}

// ExportTables snapshots each table, logging and swallowing per-table errors.
func (e *CSVExporter) ExportTables(tables ...string) {
	for _, table := range tables {
		if err := e.ExportTable(table); err != nil {
			log.Printf("CSV export of %s failed: %v", table, err)
		}
	}
}

func formatCell(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	case time.Time:
		return v.Format(time.RFC3339)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
