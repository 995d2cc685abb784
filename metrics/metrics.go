// Package metrics records partition runs as Prometheus metrics on a private
// registry and exports them in the node-exporter textfile format.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/cliquepart/partition"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "cliquepart"

// Run status label values.
const (
	StatusValid   = "valid"
	StatusInvalid = "invalid"
)

// Collector holds the Prometheus metrics for partition runs.
type Collector struct {
	registry *prometheus.Registry

	// Builder and repair events, fed by the hooks from Options.
	CliquesBuilt prometheus.Counter
	CliqueSize   prometheus.Histogram
	Relocations  prometheus.Counter

	// Per-run results, fed by Observe.
	Runs            *prometheus.CounterVec
	SolveDuration   prometheus.Histogram
	UncoveredEdges  prometheus.Gauge
	PartitionWeight prometheus.Gauge
}

// NewCollector creates a collector whose metrics live on a fresh registry.
// An empty namespace selects DefaultNamespace.
func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	registry := prometheus.NewRegistry()

	cliquesBuilt := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cliques_built_total",
			Help:      "Total number of cliques emitted by the builder",
		},
	)

	cliqueSize := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "clique_size",
			Help:      "Size of cliques emitted by the builder",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		},
	)

	relocations := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "relocations_total",
			Help:      "Total number of vertices moved by the repair phase",
		},
	)

	runs := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Total number of partition runs by validation status",
		},
		[]string{"status"},
	)

	solveDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall time of a partition run in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	uncovered := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "uncovered_edges",
			Help:      "Edges whose endpoints ended in different cliques in the last run",
		},
	)

	weight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "partition_weight",
			Help:      "Total within-clique weight of the last run",
		},
	)

	registry.MustRegister(
		cliquesBuilt,
		cliqueSize,
		relocations,
		runs,
		solveDuration,
		uncovered,
		weight,
	)

	return &Collector{
		registry:        registry,
		CliquesBuilt:    cliquesBuilt,
		CliqueSize:      cliqueSize,
		Relocations:     relocations,
		Runs:            runs,
		SolveDuration:   solveDuration,
		UncoveredEdges:  uncovered,
		PartitionWeight: weight,
	}
}

// Registry exposes the private registry, e.g. for an HTTP handler.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Options returns pipeline hooks that feed the builder and repair metrics.
// Pass them to partition.Solve alongside any other options.
func (c *Collector) Options() []partition.Option {
	return []partition.Option{
		partition.WithOnCliqueBuilt(func(_ int, members []int) {
			c.CliquesBuilt.Inc()
			c.CliqueSize.Observe(float64(len(members)))
		}),
		partition.WithOnRelocate(func(int, int, int) {
			c.Relocations.Inc()
		}),
	}
}

// Observe records the outcome of one run. A nil result is ignored.
func (c *Collector) Observe(res *partition.Result) {
	if res == nil {
		return
	}
	status := StatusValid
	if !res.Valid() {
		status = StatusInvalid
	}
	c.Runs.WithLabelValues(status).Inc()
	c.SolveDuration.Observe(res.Elapsed.Seconds())
	c.UncoveredEdges.Set(float64(res.Stats.UncoveredEdges))
	c.PartitionWeight.Set(float64(res.Stats.TotalWeight))
}

// WriteTextfile atomically writes the registry to path in the text
// exposition format read by the node exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("metrics: writing %s: %w", path, err)
	}

	return nil
}
