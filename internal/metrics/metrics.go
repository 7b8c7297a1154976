package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "workplanner"

var (
	requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route template, method and status.",
		},
		[]string{"route", "method", "status"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route template and method.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	operations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "repo",
			Name:      "operations_total",
			Help:      "Write operations by name and API error code, code is empty on success.",
		},
		[]string{"op", "code"},
	)

	operationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "repo",
			Name:      "operation_duration_seconds",
			Help:      "Write operation latency by name.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"op"},
	)

	users = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "users",
			Help:      "User accounts stored in the database.",
		},
	)
)

func init() {
	prometheus.MustRegister(requests, requestDuration, operations, operationDuration, users)
}
