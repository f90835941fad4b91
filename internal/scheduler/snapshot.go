// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/openshelf/librarian/internal/exporters"
)

// SnapshotScheduler periodically refreshes every CSV table snapshot, so the
// export directory stays current even when a table has not been written
// through the API for a while.
type SnapshotScheduler struct {
	exporter *exporters.CSVExporter
	schedule string

	cron       *cron.Cron
	mu         sync.Mutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewSnapshotScheduler creates a scheduler exporting on the given cron
// schedule (standard five-field format).
func NewSnapshotScheduler(exporter *exporters.CSVExporter, schedule string) *SnapshotScheduler {
	return &SnapshotScheduler{
		exporter: exporter,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler.
func (s *SnapshotScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	_, err := s.cron.AddFunc(s.schedule, s.runSnapshot)
	if err != nil {
		return fmt.Errorf("failed to schedule snapshot job: %w", err)
	}

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true
	log.Printf("Snapshot scheduler: started with schedule '%s'", s.schedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler.
func (s *SnapshotScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.isRunning = false
	log.Printf("Snapshot scheduler: stopped")
}

func (s *SnapshotScheduler) runSnapshot() {
	log.Printf("Snapshot scheduler: refreshing table exports")
	s.exporter.ExportTables(exporters.ExportableTables()...)
}
