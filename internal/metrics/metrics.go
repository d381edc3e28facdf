// Package metrics exposes Prometheus collectors for the polling workers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"homeboard/internal/worker"
)

type Metrics struct {
	RefreshTicks    *prometheus.CounterVec
	RefreshErrors   *prometheus.CounterVec
	RefreshDuration *prometheus.HistogramVec
}

// New registers the worker collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RefreshTicks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "worker_refresh_ticks_total",
				Help: "Total completed worker ticks, by worker and outcome",
			},
			[]string{"worker", "outcome"},
		),
		RefreshErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "worker_refresh_errors_total",
				Help: "Total worker ticks that ended in an error",
			},
			[]string{"worker"},
		),
		RefreshDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "worker_refresh_duration_seconds",
				Help: "Time taken by one worker tick",
			},
			[]string{"worker"},
		),
	}
}

// ObserveTick implements worker.Observer.
func (m *Metrics) ObserveTick(info worker.TickInfo) {
	if info.Err != nil {
		m.RefreshErrors.WithLabelValues(info.Worker).Inc()
	} else {
		m.RefreshTicks.WithLabelValues(info.Worker, info.Outcome.String()).Inc()
	}
	m.RefreshDuration.WithLabelValues(info.Worker).Observe(info.Duration.Seconds())
}
