package healthendpoint

import (
	"fmt"

	"code.cloudfoundry.org/lager/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// RuntimeCollectors are the process and Go runtime collectors served next to the
// refresher's own metrics.
func RuntimeCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	}
}

// RegisterCollectors registers every collector it can. A failed registration is
// logged and skipped so one bad collector does not take the health port down.
func RegisterCollectors(registerer prometheus.Registerer, custom []prometheus.Collector, includeRuntime bool, logger lager.Logger) {
	all := custom
	if includeRuntime {
		all = append(RuntimeCollectors(), custom...)
	}

	for _, c := range all {
		if err := registerer.Register(c); err != nil {
			logger.Error("failed-to-register-collector", err, lager.Data{"collector": fmt.Sprintf("%T", c)})
		}
	}
}
