package workers

import (
	"context"
	"log/slog"
	"recipe-live/domain/chat"
	"recipe-live/observability"
	"time"
)

type StatsSource interface {
	Stats(ctx context.Context) (chat.RoomStats, error)
}

// StatsReporterWorker logs the chat room occupancy and the server's own CPU and memory
// at a fixed interval. The process figures are also exported as gauges.
type StatsReporterWorker struct {
	log      *slog.Logger
	source   StatsSource
	sampler  ProcessSampler
	interval time.Duration
}

// NewStatsReporterWorker accepts a nil sampler, process figures are then left out.
func NewStatsReporterWorker(log *slog.Logger, source StatsSource, sampler ProcessSampler, interval time.Duration) *StatsReporterWorker {
	return &StatsReporterWorker{log: log, source: source, sampler: sampler, interval: interval}
}

// Run reports until ctx is canceled. Reports are skipped while the hub is restarting.
// A non-positive interval disables the worker.
func (w *StatsReporterWorker) Run(ctx context.Context) error {
	if w.interval <= 0 {
		w.log.Info("Stats reporter disabled", "interval", w.interval)
		return nil
	}
	startTime := time.Now()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.report(ctx, startTime)
		}
	}
}

func (w *StatsReporterWorker) report(ctx context.Context, startTime time.Time) {
	stats, err := w.source.Stats(ctx)
	if err != nil {
		w.log.Debug("Stats unavailable", "error", err)
		return
	}
	attrs := []any{
		"uptime", time.Since(startTime).Round(time.Second).String(),
		"connections", stats.Connections,
		"messages", stats.Messages,
	}
	if w.sampler != nil {
		if self, err := w.sampler.Sample(); err != nil {
			w.log.Warn("Failed to collect self stats", "error", err)
		} else {
			observability.ProcessCPUPercent.Set(self.CPUPercent)
			observability.ProcessResidentMemory.Set(float64(self.RSS))
			attrs = append(attrs, "rss_bytes", self.RSS, "cpu_percent", self.CPUPercent, "status", self.Status)
		}
	}
	w.log.Info("Chat room stats", attrs...)
}
