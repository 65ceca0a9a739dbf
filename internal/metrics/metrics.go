package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"sync"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	HttpRequestsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_http_requests_total",
			Help: "Total number of handled HTTP requests.",
		},
		[]string{"route", "code"},
	)
	StoreMutationsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_store_mutations_total",
			Help: "Total number of create, update and delete operations on the entity store.",
		},
		[]string{"entity", "op"},
	)
	MetricsComputeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dashboard_metrics_compute_duration_seconds",
			Help:    "Duration of each dashboard overview computation in seconds.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)
)

var registerOnce sync.Once

func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(ErrorsCounter)
		prometheus.MustRegister(HttpRequestsCounter)
		prometheus.MustRegister(StoreMutationsCounter)
		prometheus.MustRegister(MetricsComputeDuration)
	})
}
