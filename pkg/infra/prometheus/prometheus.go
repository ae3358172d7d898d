package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Evaluation latency is pattern matching only, so buckets skew low.
	latencyBuckets = []float64{
		0.1, 0.25, 0.5,
		1, 2.5, 5,
		10, 25, 50,
		100, 250,
	}

	CommentsModerated = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "guardpost_comments_moderated_total",
			Help: "Total number of comments moderated",
		},
		[]string{"platform", "action"},
	)

	ViolationsDetected = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "guardpost_violations_total",
			Help: "Total number of standard violations detected",
		},
		[]string{"standard", "severity"},
	)

	ModerationLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "guardpost_moderation_duration_ms",
			Help:    "Moderation latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"platform"},
	)
)

func Initialize() {
	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
}

func Registry() *prometheus.Registry {
	return registry
}
