package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	OTPIssued     *prometheus.CounterVec
	OTPVerified   *prometheus.CounterVec
	OTPRejected   *prometheus.CounterVec
	Notifications *prometheus.CounterVec
	Transitions   *prometheus.CounterVec
	Purged        *prometheus.CounterVec
}

// NewMetrics registers the service metrics on reg.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		OTPIssued: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "otp_issued_total",
			Help:      "The total number of one-time codes issued",
		}, []string{"channel"}),
		OTPVerified: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "otp_verified_total",
			Help:      "The total number of one-time codes verified",
		}, []string{"channel"}),
		OTPRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "otp_rejected_total",
			Help:      "The total number of rejected verification attempts",
		}, []string{"reason"}),
		Notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "The total number of notification dispatches",
		}, []string{"channel", "result"}),
		Transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "service_transitions_total",
			Help:      "The total number of lifecycle transitions",
		}, []string{"kind", "target"}),
		Purged: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "services_purged_total",
			Help:      "The total number of service requests deleted by retention rules",
		}, []string{"rule"}),
	}
}

// Noop returns metrics bound to a private registry.
func Noop() *Metrics {
	return NewMetrics("noop", prometheus.NewRegistry())
}
