package workers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"recipe-live/domain/chat"
	"recipe-live/observability"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

type countingCollector struct {
	calls atomic.Int32
	err   error
}

func (c *countingCollector) RunGC(float64) error {
	c.calls.Add(1)
	return c.err
}

type countingSource struct {
	calls atomic.Int32
}

func (s *countingSource) Stats(context.Context) (chat.RoomStats, error) {
	s.calls.Add(1)
	return chat.RoomStats{Connections: 2, Messages: 3}, nil
}

type fixedSampler struct {
	stats ProcessStats
	err   error
}

func (s fixedSampler) Sample() (ProcessStats, error) {
	return s.stats, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStoreGCWorker_Runs_Periodically(t *testing.T) {
	req := require.New(t)
	collector := &countingCollector{err: errors.New("disk busy")}
	worker := NewStoreGCWorker(discardLogger(), collector, 10*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	// When the worker runs for a while with a failing store
	err := worker.Run(ctx)

	// Then it kept retrying and stopped cleanly
	req.NoError(err)
	req.GreaterOrEqual(collector.calls.Load(), int32(2))
}

func TestStatsReporterWorker_Polls_Source(t *testing.T) {
	req := require.New(t)
	source := &countingSource{}
	worker := NewStatsReporterWorker(discardLogger(), source, nil, 10*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	req.NoError(worker.Run(ctx))
	req.GreaterOrEqual(source.calls.Load(), int32(2))
}

func TestStatsReporterWorker_Exports_Process_Gauges(t *testing.T) {
	req := require.New(t)
	sampler := fixedSampler{stats: ProcessStats{RSS: 64 << 20, CPUPercent: 12.5, Status: "R"}}
	worker := NewStatsReporterWorker(discardLogger(), &countingSource{}, sampler, 10*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// When the worker reports at least once
	req.NoError(worker.Run(ctx))

	// Then the process gauges carry the sampled figures
	req.Equal(12.5, testutil.ToFloat64(observability.ProcessCPUPercent))
	req.Equal(float64(64<<20), testutil.ToFloat64(observability.ProcessResidentMemory))
}

func TestStatsReporterWorker_Survives_Sampling_Errors(t *testing.T) {
	req := require.New(t)
	source := &countingSource{}
	worker := NewStatsReporterWorker(discardLogger(), source, fixedSampler{err: errors.New("no procfs")}, 10*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	req.NoError(worker.Run(ctx))
	req.GreaterOrEqual(source.calls.Load(), int32(2))
}

func TestSelfSampler_Reads_Own_Process(t *testing.T) {
	req := require.New(t)
	sampler, err := NewSelfSampler()
	req.NoError(err)

	stats, err := sampler.Sample()

	req.NoError(err)
	req.Positive(stats.RSS)
	req.GreaterOrEqual(stats.CPUPercent, 0.0)
}

func TestWorkers_NonPositive_Interval_Disables(t *testing.T) {
	req := require.New(t)
	collector := &countingCollector{}
	source := &countingSource{}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// When both workers are configured with a zero interval
	req.NoError(NewStoreGCWorker(discardLogger(), collector, 0).Run(ctx))
	req.NoError(NewStatsReporterWorker(discardLogger(), source, nil, -time.Second).Run(ctx))

	// Then they return at once without panicking or working
	req.NoError(ctx.Err())
	req.Zero(collector.calls.Load())
	req.Zero(source.calls.Load())
}
