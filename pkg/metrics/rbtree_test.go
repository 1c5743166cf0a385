package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/rbtree/pkg/rbtree"
)

func TestTreeCollector(t *testing.T) {
	tree := rbtree.New[int64]()
	for _, k := range []int64{10, 20, 30} {
		tree.Insert(k)
	}
	require.NoError(t, tree.Delete(10))

	collector := NewTreeCollector("test", tree)

	// 1 gauge + 3 counters + 4 insert cases + 6 delete cases
	assert.Equal(t, 14, testutil.CollectAndCount(collector))

	expected := `
# HELP rbtree_nodes Number of nodes currently linked into the tree.
# TYPE rbtree_nodes gauge
rbtree_nodes{tree="test"} 2
# HELP rbtree_rotations_total Number of left and right rotations.
# TYPE rbtree_rotations_total counter
rbtree_rotations_total{tree="test"} 1
`
	err := testutil.CollectAndCompare(collector, strings.NewReader(expected), "rbtree_nodes", "rbtree_rotations_total")
	assert.NoError(t, err)

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(collector))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 6)
}

func TestNewRegistry(t *testing.T) {
	tree := rbtree.New[int64]()
	tree.Insert(1)

	reg := NewRegistry("registry", tree)
	StressOperationsMetrics.WithLabelValues("registry", "insert").Add(3)
	assert.Equal(t, 3.0, testutil.ToFloat64(StressOperationsMetrics.WithLabelValues("registry", "insert")))

	families, err := reg.Gather()
	require.NoError(t, err)

	var names []string
	for _, family := range families {
		names = append(names, family.GetName())
	}
	assert.Contains(t, names, "rbtree_nodes")
	assert.Contains(t, names, "rbtree_stress_operations_total")

	// the stress vectors stay off the default registry
	defaults, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, family := range defaults {
		assert.NotContains(t, family.GetName(), "rbtree_")
	}

	// a second registry per run is fine
	assert.NotPanics(t, func() {
		NewRegistry("again", tree)
	})
}

func TestWriteText(t *testing.T) {
	tree := rbtree.New[int64]()
	for _, k := range []int64{1, 2, 3, 4} {
		tree.Insert(k)
	}

	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(NewTreeCollector("dump", tree)))

	var buf strings.Builder
	require.NoError(t, WriteText(&buf, reg))

	out := buf.String()
	assert.Contains(t, out, "# TYPE rbtree_nodes gauge\n")
	assert.Contains(t, out, `rbtree_nodes{tree="dump"} 4`)
	assert.Contains(t, out, `rbtree_insert_repair_total{case="3",tree="dump"} 1`)
}
