// Package metrics provides Prometheus instrumentation for outbound vendor calls.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Result labels for vendor call metrics.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultTimeout = "timeout"
)

// Vendor holds the metric collectors for supplier round trips.
type Vendor struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewVendor creates the vendor call collectors and registers them with the
// given registerer.
func NewVendor(reg prometheus.Registerer) *Vendor {
	v := &Vendor{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "alliance_vendor_requests_total",
			Help: "Total number of supplier API calls by operation and result.",
		}, []string{"operation", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "alliance_vendor_request_duration_seconds",
			Help:    "Supplier API call round-trip duration.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	if reg != nil {
		reg.MustRegister(v.requests, v.duration)
	}
	return v
}

// NewNopVendor creates collectors that are not registered anywhere.
// Useful for tests.
func NewNopVendor() *Vendor {
	return NewVendor(nil)
}

// Observe records one vendor round trip.
func (v *Vendor) Observe(operation, result string, elapsed time.Duration) {
	v.requests.WithLabelValues(operation, result).Inc()
	v.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}
