package healthendpoint

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PollStatusCollector counts poll cycles and their per-instance and
// per-metric outcomes.
type PollStatusCollector interface {
	prometheus.Collector
	IncPollCycles()
	IncInstancesDispatched()
	IncInstancesFailed()
	IncMetricsSkipped()
}

type pollStatusCollector struct {
	pollCyclesCounter          prometheus.Counter
	instancesDispatchedCounter prometheus.Counter
	instancesFailedCounter     prometheus.Counter
	metricsSkippedCounter      prometheus.Counter
}

func NewPollStatusCollector(namespace, subSystem string) PollStatusCollector {
	return &pollStatusCollector{
		pollCyclesCounter: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      "poll_cycles_total",
				Help:      "Number of poll cycles run",
			}),
		instancesDispatchedCounter: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      "instances_dispatched_total",
				Help:      "Number of instances evaluated and dispatched",
			}),
		instancesFailedCounter: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      "instances_failed_total",
				Help:      "Number of instances that failed during a poll cycle",
			}),
		metricsSkippedCounter: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      "metrics_skipped_total",
				Help:      "Number of metrics skipped because sampling failed",
			}),
	}
}

func (c *pollStatusCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.pollCyclesCounter.Desc()
	ch <- c.instancesDispatchedCounter.Desc()
	ch <- c.instancesFailedCounter.Desc()
	ch <- c.metricsSkippedCounter.Desc()
}

func (c *pollStatusCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- c.pollCyclesCounter
	ch <- c.instancesDispatchedCounter
	ch <- c.instancesFailedCounter
	ch <- c.metricsSkippedCounter
}

func (c *pollStatusCollector) IncPollCycles() {
	c.pollCyclesCounter.Inc()
}

func (c *pollStatusCollector) IncInstancesDispatched() {
	c.instancesDispatchedCounter.Inc()
}

func (c *pollStatusCollector) IncInstancesFailed() {
	c.instancesFailedCounter.Inc()
}

func (c *pollStatusCollector) IncMetricsSkipped() {
	c.metricsSkippedCounter.Inc()
}
