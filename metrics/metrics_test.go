package metrics_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquepart/builder"
	"github.com/katalvlaran/cliquepart/metrics"
	"github.com/katalvlaran/cliquepart/partition"
)

// textfile writes c to a temp file and returns its contents.
func textfile(t *testing.T, c *metrics.Collector) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cliquepart.prom")
	require.NoError(t, c.WriteTextfile(path))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(raw)
}

func TestCollector_Solve(t *testing.T) {
	g, err := builder.BuildGraph(5, 4, nil,
		builder.Edge(0, 1, 3), builder.Edge(0, 2, 5), builder.Edge(0, 4, 1),
		builder.Edge(1, 2, 4), builder.Edge(1, 4, 5), builder.Edge(3, 4, 7))
	require.NoError(t, err)

	c := metrics.NewCollector("")
	res, err := partition.Solve(g, c.Options()...)
	require.NoError(t, err)
	c.Observe(res)

	out := textfile(t, c)
	for _, want := range []string{
		"cliquepart_cliques_built_total 2",
		"cliquepart_clique_size_count 2",
		"cliquepart_clique_size_sum 5",
		"cliquepart_relocations_total 0",
		`cliquepart_runs_total{status="valid"} 1`,
		"cliquepart_solve_duration_seconds_count 1",
		"cliquepart_uncovered_edges 2",
		"cliquepart_partition_weight 19",
	} {
		assert.Contains(t, out, want)
	}
}

func TestCollector_RelocationsAndInvalid(t *testing.T) {
	c := metrics.NewCollector("test")
	hooks := c.Options()
	o := partition.DefaultOptions()
	for _, h := range hooks {
		h(&o)
	}
	o.OnCliqueBuilt(0, []int{1, 2, 3})
	o.OnRelocate(4, 0, 1)
	o.OnRelocate(5, 1, 0)
	c.Observe(&partition.Result{Violation: errors.New("broken")})
	c.Observe(nil)

	out := textfile(t, c)
	assert.Contains(t, out, "test_relocations_total 2")
	assert.Contains(t, out, "test_clique_size_sum 3")
	assert.Contains(t, out, `test_runs_total{status="invalid"} 1`)
	assert.NotContains(t, out, `status="valid"`)
}

func TestCollector_IndependentRegistries(t *testing.T) {
	a, b := metrics.NewCollector(""), metrics.NewCollector("")
	a.CliquesBuilt.Inc()

	mfs, err := b.Registry().Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() == "cliquepart_cliques_built_total" {
			assert.Zero(t, mf.GetMetric()[0].GetCounter().GetValue())
		}
	}
}

func TestWriteTextfile_BadPath(t *testing.T) {
	c := metrics.NewCollector("")
	err := c.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"))
	assert.Error(t, err)
}
