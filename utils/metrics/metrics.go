package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service collectors. A nil *Metrics is a valid no-op recorder.
type Metrics struct {
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	jobDuration      *prometheus.HistogramVec
	jobSuccess       *prometheus.CounterVec
	jobFailure       *prometheus.CounterVec
	ordersPurged     prometheus.Counter
	orderTransitions *prometheus.CounterVec
	otpIssued        *prometheus.CounterVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return nil
	}
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "endpoint", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
		jobDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "job_duration_seconds",
			Help:    "Duration of scheduled jobs in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"job"}),
		jobSuccess: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "job_success",
			Help: "Successful scheduled job executions.",
		}, []string{"job"}),
		jobFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "job_failure",
			Help: "Failed scheduled job executions.",
		}, []string{"job"}),
		ordersPurged: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orders_purged_total",
			Help: "Completed orders deleted by the retention policy.",
		}),
		orderTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "order_transitions_total",
			Help: "Order status transitions by target status.",
		}, []string{"status"}),
		otpIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "otp_issued_total",
			Help: "OTP issuance attempts by purpose and result.",
		}, []string{"purpose", "result"}),
	}
	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.jobDuration,
		m.jobSuccess,
		m.jobFailure,
		m.ordersPurged,
		m.orderTransitions,
		m.otpIssued,
	)
	return m
}

func (m *Metrics) ObserveHTTP(method, endpoint, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, endpoint, status).Inc()
	m.httpDuration.WithLabelValues(method, endpoint).Observe(d.Seconds())
}

func (m *Metrics) ObserveJob(job string, d time.Duration, err error) {
	if m == nil {
		return
	}
	if job == "" {
		job = "unknown"
	}
	m.jobDuration.WithLabelValues(job).Observe(d.Seconds())
	if err != nil {
		m.jobFailure.WithLabelValues(job).Inc()
		return
	}
	m.jobSuccess.WithLabelValues(job).Inc()
}

func (m *Metrics) AddOrdersPurged(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.ordersPurged.Add(float64(n))
}

func (m *Metrics) IncOrderTransition(status string) {
	if m == nil {
		return
	}
	m.orderTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) IncOTPIssued(purpose string, ok bool) {
	if m == nil {
		return
	}
	result := "success"
	if !ok {
		result = "failure"
	}
	m.otpIssued.WithLabelValues(purpose, result).Inc()
}
