package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/c9s/rbtree/pkg/rbtree"
)

// StatsSource is anything exposing tree counters, *rbtree.Tree[K] for any K.
type StatsSource interface {
	Stats() rbtree.Stats
}

var (
	nodesDesc = prometheus.NewDesc(
		"rbtree_nodes",
		"Number of nodes currently linked into the tree.",
		[]string{"tree"}, nil)

	allocDesc = prometheus.NewDesc(
		"rbtree_node_alloc_total",
		"Number of node allocations.",
		[]string{"tree"}, nil)

	freeDesc = prometheus.NewDesc(
		"rbtree_node_free_total",
		"Number of released nodes.",
		[]string{"tree"}, nil)

	rotationsDesc = prometheus.NewDesc(
		"rbtree_rotations_total",
		"Number of left and right rotations.",
		[]string{"tree"}, nil)

	insertRepairDesc = prometheus.NewDesc(
		"rbtree_insert_repair_total",
		"Number of times each insert repair case ran.",
		[]string{"tree", "case"}, nil)

	deleteRepairDesc = prometheus.NewDesc(
		"rbtree_delete_repair_total",
		"Number of times each delete repair case ran.",
		[]string{"tree", "case"}, nil)
)

var StressRunDurationMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "rbtree_stress_run_duration_seconds",
		Help: "Wall time of the last stress run.",
	}, []string{"tree"})

var StressOperationsMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "rbtree_stress_operations_total",
		Help: "Operations issued by the stress driver.",
	}, []string{"tree", "op"})

// NewRegistry returns a registry holding the collector of one tree and the
// stress vectors. The default registry is left untouched since nothing serves it.
func NewRegistry(name string, source StatsSource) *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		NewTreeCollector(name, source),
		StressRunDurationMetrics,
		StressOperationsMetrics,
	)
	return registry
}

// TreeCollector exports the counters of one tree. Stats are read atomically, so
// the collector may be scraped while the owner keeps mutating the tree.
type TreeCollector struct {
	name   string
	source StatsSource
}

func NewTreeCollector(name string, source StatsSource) *TreeCollector {
	return &TreeCollector{name: name, source: source}
}

func (c *TreeCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- nodesDesc
	ch <- allocDesc
	ch <- freeDesc
	ch <- rotationsDesc
	ch <- insertRepairDesc
	ch <- deleteRepairDesc
}

func (c *TreeCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.source.Stats()

	ch <- prometheus.MustNewConstMetric(nodesDesc, prometheus.GaugeValue, float64(stats.InUse()), c.name)
	ch <- prometheus.MustNewConstMetric(allocDesc, prometheus.CounterValue, float64(stats.Alloc), c.name)
	ch <- prometheus.MustNewConstMetric(freeDesc, prometheus.CounterValue, float64(stats.Free), c.name)
	ch <- prometheus.MustNewConstMetric(rotationsDesc, prometheus.CounterValue, float64(stats.Rotations), c.name)

	for i, n := range stats.InsertCases {
		ch <- prometheus.MustNewConstMetric(insertRepairDesc, prometheus.CounterValue, float64(n), c.name, strconv.Itoa(i+1))
	}

	for i, n := range stats.DeleteCases {
		ch <- prometheus.MustNewConstMetric(deleteRepairDesc, prometheus.CounterValue, float64(n), c.name, strconv.Itoa(i+1))
	}
}
