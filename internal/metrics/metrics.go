// Package metrics exports search counters through Prometheus.
//
// A Collector implements search.Observer and owns a private registry, so
// several collectors (one per command run or per test) never collide on
// metric names.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/bestfirst/search"
)

// Collector counts frontier and expansion events of every search it observes.
type Collector struct {
	reg        *prometheus.Registry
	pushes     prometheus.Counter
	pops       *prometheus.CounterVec // {stale}
	expansions prometheus.Counter
	successors prometheus.Counter
	runs       *prometheus.CounterVec // {phase}
	perRun     prometheus.Histogram
}

var _ search.Observer = (*Collector)(nil)

// New builds a Collector whose metric names start with namespace
// ("bestfirst" when empty).
func New(namespace string) *Collector {
	if namespace == "" {
		namespace = "bestfirst"
	}
	c := &Collector{
		reg: prometheus.NewRegistry(),
		pushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frontier_pushes_total",
			Help:      "Entries pushed onto the frontier",
		}),
		pops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frontier_pops_total",
			Help:      "Entries popped from the frontier, split by whether they were stale duplicates",
		}, []string{"stale"}),
		expansions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expansions_total",
			Help:      "States expanded",
		}),
		successors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "successors_total",
			Help:      "Transitions returned by successor generators",
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Finished searches by terminal phase",
		}, []string{"phase"}),
		perRun: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "expansions_per_run",
			Help:      "Expansions needed by each finished search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}
	c.reg.MustRegister(c.pushes, c.pops, c.expansions, c.successors, c.runs, c.perRun)

	return c
}

// Registry returns the collector's private registry.
func (c *Collector) Registry() *prometheus.Registry { return c.reg }

// WriteTextfile writes the text exposition of every metric to path.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.reg)
}

// Pushed implements search.Observer.
func (c *Collector) Pushed(float64) { c.pushes.Inc() }

// Popped implements search.Observer.
func (c *Collector) Popped(_ float64, stale bool) {
	if stale {
		c.pops.WithLabelValues("true").Inc()
		return
	}
	c.pops.WithLabelValues("false").Inc()
}

// Expanded implements search.Observer.
func (c *Collector) Expanded(_ float64, n int) {
	c.expansions.Inc()
	c.successors.Add(float64(n))
}

// Finished implements search.Observer.
func (c *Collector) Finished(p search.Phase, expanded int) {
	c.runs.WithLabelValues(p.String()).Inc()
	c.perRun.Observe(float64(expanded))
}
