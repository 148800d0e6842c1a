// Package observability exposes the Prometheus instrumentation of the live core:
// hub connections and traffic, interaction store latency and the REST surface.
package observability

import (
	"errors"
	apperrors "recipe-live/errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChatConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chat_connections",
			Help: "Current number of open chat connections",
		},
	)

	ProcessCPUPercent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "server_cpu_percent",
			Help: "CPU usage of the server process, sampled by the stats reporter",
		},
	)

	ProcessResidentMemory = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "server_resident_memory_bytes",
			Help: "Resident memory of the server process, sampled by the stats reporter",
		},
	)

	ChatHistorySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chat_history_messages",
			Help: "Number of chat messages kept for replay",
		},
	)

	ChatMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_messages_total",
			Help: "Total number of inbound chat messages by outcome",
		},
		[]string{"result"}, // "accepted", "rejected"
	)

	ChatTyping = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_typing_events_total",
			Help: "Total number of typing indicators fanned out",
		},
	)

	ChatDeliveriesDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chat_deliveries_dropped_total",
			Help: "Total number of events not delivered because a connection queue was full",
		},
	)

	StoreDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "interaction_store_duration_seconds",
			Help:    "Duration of interaction store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interaction_store_errors_total",
			Help: "Total number of interaction store errors",
		},
		[]string{"operation", "error_type"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of REST requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// RecordStoreOperation observes one store call; expected business outcomes are labeled, not hidden.
func RecordStoreOperation(operation string, start time.Time, err error) {
	StoreDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		StoreErrors.WithLabelValues(operation, errorType(err)).Inc()
	}
}

func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}

func errorType(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrConflict):
		return "conflict"
	case errors.Is(err, apperrors.ErrNotFound):
		return "not_found"
	case errors.Is(err, apperrors.ErrForbidden):
		return "forbidden"
	default:
		return "internal"
	}
}
