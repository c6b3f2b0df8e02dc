package recorder

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusRecorder exports counters and latencies to a Prometheus registry.
type PrometheusRecorder struct {
	messages       *prometheus.CounterVec
	lookups        *prometheus.CounterVec
	lookupDuration *prometheus.HistogramVec
}

// NewPrometheusRecorder registers the collectors on reg. A nil reg means the default registerer.
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &PrometheusRecorder{
		messages: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketask_messages_total",
				Help: "Total number of messages dispatched",
			},
			[]string{"intent", "outcome"},
		),
		lookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marketask_lookups_total",
				Help: "Total number of market data lookups",
			},
			[]string{"source", "outcome"},
		),
		lookupDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "marketask_lookup_duration_seconds",
				Help:    "Duration of market data lookups in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"source"},
		),
	}
}

func (r *PrometheusRecorder) RecordMessage(intent, outcome string) {
	r.messages.WithLabelValues(intent, outcome).Inc()
}

func (r *PrometheusRecorder) RecordLookup(source, outcome string, elapsed time.Duration) {
	r.lookups.WithLabelValues(source, outcome).Inc()
	r.lookupDuration.WithLabelValues(source).Observe(elapsed.Seconds())
}
