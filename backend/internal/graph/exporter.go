package graph

import (
	"context"
	"time"

	"go.uber.org/zap"
	"socialgraph/backend/internal/social"
	"socialgraph/backend/pkg/logger"
)

// SnapshotWriter persists one snapshot and returns its export id
type SnapshotWriter interface {
	ExportSnapshot(ctx context.Context, snap social.Snapshot) (string, error)
}

// SnapshotSource produces snapshots to export
type SnapshotSource interface {
	Snapshot() social.Snapshot
}

// Exporter periodically copies the in-memory graph to a SnapshotWriter.
// Export failures are logged and never stop the loop.
type Exporter struct {
	writer   SnapshotWriter
	source   SnapshotSource
	interval time.Duration
	observe  func(elapsed time.Duration, err error)
	logger   *zap.Logger
}

// NewExporter creates an exporter; observe may be nil
func NewExporter(writer SnapshotWriter, source SnapshotSource, interval time.Duration, observe func(time.Duration, error)) *Exporter {
	if observe == nil {
		observe = func(time.Duration, error) {}
	}
	return &Exporter{
		writer:   writer,
		source:   source,
		interval: interval,
		observe:  observe,
		logger:   logger.Named("exporter"),
	}
}

// ExportOnce takes a snapshot and writes it
func (e *Exporter) ExportOnce(ctx context.Context) (string, error) {
	start := time.Now()
	id, err := e.writer.ExportSnapshot(ctx, e.source.Snapshot())
	e.observe(time.Since(start), err)
	return id, err
}

// Run exports on every tick until ctx is done, then makes one final export
// with a short deadline so the latest state is mirrored on shutdown.
func (e *Exporter) Run(ctx context.Context) error {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			finalCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if _, err := e.ExportOnce(finalCtx); err != nil {
				e.logger.Warn("Final snapshot export failed", zap.Error(err))
			}
			return nil
		case <-ticker.C:
			if _, err := e.ExportOnce(ctx); err != nil {
				e.logger.Warn("Snapshot export failed", zap.Error(err))
			}
		}
	}
}
