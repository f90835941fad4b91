package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
)

// TableExporter writes table snapshots to the export directory.
type TableExporter interface {
	ExportTable(table string) error
}

// ExportTablesTask refreshes the CSV snapshots of the named tables.
type ExportTablesTask struct {
	Tables []string `json:"tables"`
}

// Config returns the queue configuration for export tasks. Exports are
// attempted once: a stale snapshot is preferable to retry churn, the next
// mutating write refreshes it anyway.
func (t ExportTablesTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "export_tables",
		MaxAttempts: 1,
		Timeout:     1 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// ExportTablesProcessor creates a processor function for ExportTablesTask.
func ExportTablesProcessor(exporter TableExporter) backlite.QueueProcessor[ExportTablesTask] {
	return func(ctx context.Context, task ExportTablesTask) error {
		if exporter == nil {
			return fmt.Errorf("table exporter not configured")
		}

		for _, table := range task.Tables {
			if err := exporter.ExportTable(table); err != nil {
				// Export is best effort. Log per table and keep going so one
				// broken table does not block the others.
				log.Printf("[TASK] Export of %s failed: %v", table, err)
			}
		}
		return nil
	}
}

// NewExportTablesQueue creates a backlite queue for export tasks.
func NewExportTablesQueue(exporter TableExporter) backlite.Queue {
	return backlite.NewQueue(ExportTablesProcessor(exporter))
}
