package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "importduty"

// Metrics holds the service collectors
type Metrics struct {
	Calculations       *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	LandedCost         *prometheus.HistogramVec
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	LiveClients        prometheus.Gauge
}

// New registers the collectors on reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Calculations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Completed tax calculations by item category.",
		}, []string{"category"}),
		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Rejected calculation requests by item category and field.",
		}, []string{"category", "field"}),
		LandedCost: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "landed_cost_kes",
			Help:      "Total landed cost of calculated items.",
			Buckets:   prometheus.ExponentialBuckets(10_000, 4, 10),
		}, []string{"category"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		LiveClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_clients",
			Help:      "Connected live calculator websocket clients.",
		}),
	}
}

// NewNop returns collectors registered on a throwaway registry
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
