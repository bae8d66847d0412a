package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artfolio_http_requests_total",
			Help: "Total HTTP requests by method, route and status code.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "artfolio_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	DetectionCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artfolio_detection_calls_total",
			Help: "AI-detection calls by provider and outcome (passed, rejected, error).",
		},
		[]string{"provider", "outcome"},
	)

	PublishGateRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "artfolio_publish_rejections_total",
			Help: "Publishes aborted because content was judged AI-generated.",
		},
	)
)
