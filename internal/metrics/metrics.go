package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/2400031249Gowtham/Certification-Trackerr/internal/status"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Certification urgency buckets, refreshed after every mutation.
	CertificationsByStatus = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "certifications_by_status",
			Help: "Certifications per urgency bucket",
		},
		[]string{"status"},
	)

	// Worker queue
	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(CertificationsByStatus)
	prometheus.MustRegister(WorkerQueueDepth)
}

// SetStatusCounts publishes one batch of bucket totals.
func SetStatusCounts(c status.Counts) {
	CertificationsByStatus.WithLabelValues(string(status.Expired)).Set(float64(c.Expired))
	CertificationsByStatus.WithLabelValues(string(status.Critical)).Set(float64(c.Critical))
	CertificationsByStatus.WithLabelValues(string(status.Warning)).Set(float64(c.Warning))
	CertificationsByStatus.WithLabelValues(string(status.Soon)).Set(float64(c.Soon))
	CertificationsByStatus.WithLabelValues(string(status.Active)).Set(float64(c.Active))
}
