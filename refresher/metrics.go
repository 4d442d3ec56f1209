package refresher

import (
	"sync/atomic"
	"time"

	"code.cloudfoundry.org/asg-refresher/models"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "asg_refresher"
	metricsSubsystem = "refresher"
)

// Metrics records refresh outcomes. It is a prometheus.Collector and also remembers
// whether the most recent attempted refresh failed, for readiness checks.
type Metrics struct {
	refreshes   *prometheus.CounterVec
	duration    prometheus.Histogram
	lastSuccess prometheus.Gauge
	lastFailed  atomic.Bool
}

var _ prometheus.Collector = &Metrics{}

func NewMetrics() *Metrics {
	return &Metrics{
		refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "refresh_total",
			Help:      "Number of refresh invocations by outcome",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "refresh_duration_seconds",
			Help:      "Duration of attempted refreshes",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1200, 1800},
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful refresh",
		}),
	}
}

func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.refreshes.Describe(ch)
	m.duration.Describe(ch)
	m.lastSuccess.Describe(ch)
}

func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.refreshes.Collect(ch)
	m.duration.Collect(ch)
	m.lastSuccess.Collect(ch)
}

func (m *Metrics) ObserveSkipped() {
	m.refreshes.WithLabelValues(string(models.RefreshOutcomeSkipped)).Inc()
}

func (m *Metrics) ObserveFailed(duration time.Duration) {
	m.refreshes.WithLabelValues(string(models.RefreshOutcomeFailed)).Inc()
	m.duration.Observe(duration.Seconds())
	m.lastFailed.Store(true)
}

func (m *Metrics) ObserveSucceeded(duration time.Duration, at time.Time) {
	m.refreshes.WithLabelValues(string(models.RefreshOutcomeSucceeded)).Inc()
	m.duration.Observe(duration.Seconds())
	m.lastSuccess.Set(float64(at.Unix()))
	m.lastFailed.Store(false)
}

func (m *Metrics) LastRefreshFailed() bool {
	return m.lastFailed.Load()
}
