package refresher_test

import (
	"strings"
	"time"

	"code.cloudfoundry.org/asg-refresher/refresher"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

var _ = Describe("Metrics", func() {
	var metrics *refresher.Metrics

	BeforeEach(func() {
		metrics = refresher.NewMetrics()
	})

	It("can be registered", func() {
		Expect(prometheus.NewRegistry().Register(metrics)).To(Succeed())
	})

	It("counts refreshes by outcome and records the last success", func() {
		metrics.ObserveSkipped()
		metrics.ObserveSkipped()
		metrics.ObserveFailed(2 * time.Second)
		metrics.ObserveSucceeded(90*time.Second, time.Unix(1709596800, 0))

		expected := `
# HELP asg_refresher_refresher_last_success_timestamp_seconds Unix time of the last successful refresh
# TYPE asg_refresher_refresher_last_success_timestamp_seconds gauge
asg_refresher_refresher_last_success_timestamp_seconds 1.7095968e+09
# HELP asg_refresher_refresher_refresh_total Number of refresh invocations by outcome
# TYPE asg_refresher_refresher_refresh_total counter
asg_refresher_refresher_refresh_total{outcome="failed"} 1
asg_refresher_refresher_refresh_total{outcome="skipped"} 2
asg_refresher_refresher_refresh_total{outcome="succeeded"} 1
`
		Expect(testutil.CollectAndCompare(metrics, strings.NewReader(expected),
			"asg_refresher_refresher_refresh_total",
			"asg_refresher_refresher_last_success_timestamp_seconds",
		)).To(Succeed())
	})

	It("only observes the duration of attempted refreshes", func() {
		metrics.ObserveSkipped()
		metrics.ObserveFailed(time.Second)
		metrics.ObserveSucceeded(time.Minute, time.Now())

		Expect(testutil.CollectAndCount(metrics, "asg_refresher_refresher_refresh_duration_seconds")).To(Equal(1))
		Expect(histogramSampleCount(metrics)).To(Equal(uint64(2)))
	})

	Describe("LastRefreshFailed", func() {
		It("is false initially", func() {
			Expect(metrics.LastRefreshFailed()).To(BeFalse())
		})

		It("follows the last attempted refresh", func() {
			metrics.ObserveFailed(time.Second)
			Expect(metrics.LastRefreshFailed()).To(BeTrue())

			metrics.ObserveSkipped()
			Expect(metrics.LastRefreshFailed()).To(BeTrue())

			metrics.ObserveSucceeded(time.Second, time.Now())
			Expect(metrics.LastRefreshFailed()).To(BeFalse())
		})
	})
})

func histogramSampleCount(collector prometheus.Collector) uint64 {
	registry := prometheus.NewRegistry()
	Expect(registry.Register(collector)).To(Succeed())
	families, err := registry.Gather()
	Expect(err).NotTo(HaveOccurred())
	for _, family := range families {
		if family.GetName() == "asg_refresher_refresher_refresh_duration_seconds" {
			return family.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	return 0
}
