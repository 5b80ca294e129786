// Package metrics exposes the kernel identification as Prometheus metrics,
// in the style of node_exporter's node_uname_info.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"gitlab.dafni.rl.ac.uk/dafni/tools/hello-board/internal/pkg/kernel"
)

const (
	namespace = "board"
	subsystem = "uname"
)

// IdentityCollector queries its provider on every scrape. A failed query
// produces no info sample, only a bump of the failure counter.
type IdentityCollector struct {
	provider kernel.Provider
	info     *prometheus.Desc
	failures prometheus.Counter
}

func NewIdentityCollector(provider kernel.Provider) *IdentityCollector {
	return &IdentityCollector{
		provider: provider,
		info: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "info"),
			"Kernel identification reported by uname(2).",
			[]string{"sysname", "nodename", "release", "version", "machine"},
			nil,
		),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "query_failures_total",
			Help:      "Number of failed kernel identification queries.",
		}),
	}
}

func (c *IdentityCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.info
	c.failures.Describe(ch)
}

func (c *IdentityCollector) Collect(ch chan<- prometheus.Metric) {
	id, err := c.provider.Fetch()
	if err != nil {
		log.WithError(err).Debug("identification query failed during collection")
		c.failures.Inc()
	} else {
		ch <- prometheus.MustNewConstMetric(c.info, prometheus.GaugeValue, 1,
			id.Sysname, id.Nodename, id.Release, id.Version, id.Machine)
	}
	c.failures.Collect(ch)
}

// WriteTextfile writes the identity in the text exposition format to path,
// ready for node_exporter's textfile collector.
func WriteTextfile(path string, provider kernel.Provider) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(NewIdentityCollector(provider)); err != nil {
		return err
	}
	return prometheus.WriteToTextfile(path, reg)
}
