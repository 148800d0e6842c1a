package workers

import (
	"context"
	"log/slog"
	"time"
)

const DefaultGCRatio = 0.5

type GarbageCollector interface {
	RunGC(ratio float64) error
}

// StoreGCWorker periodically compacts the interaction store.
// A failed pass is logged and retried on the next tick.
type StoreGCWorker struct {
	log      *slog.Logger
	store    GarbageCollector
	interval time.Duration
	ratio    float64
}

func NewStoreGCWorker(log *slog.Logger, store GarbageCollector, interval time.Duration) *StoreGCWorker {
	return &StoreGCWorker{log: log, store: store, interval: interval, ratio: DefaultGCRatio}
}

// Run compacts until ctx is canceled. A non-positive interval disables the worker.
func (w *StoreGCWorker) Run(ctx context.Context) error {
	if w.interval <= 0 {
		w.log.Info("Store gc disabled", "interval", w.interval)
		return nil
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping store gc")
			return nil
		case <-ticker.C:
			start := time.Now()
			if err := w.store.RunGC(w.ratio); err != nil {
				w.log.Warn("Store gc failed", "error", err)
				continue
			}
			w.log.Debug("Store gc done", "duration", time.Since(start))
		}
	}
}
