package loader_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquepart/loader"
	"github.com/katalvlaran/cliquepart/wgraph"
)

const X = wgraph.NoEdge

const sampleTri = `# five vertices, cliques of at most four
5 4
3 5 -9999 1   # row 0
4 -9999 5

-9999 6
7
`

func sampleWeights() [][]int {
	return [][]int{
		{0, 3, 5, X, 1},
		{3, 0, 4, X, 5},
		{5, 4, 0, X, 6},
		{X, X, X, 0, 7},
		{1, 5, 6, 7, 0},
	}
}

func TestParseTriangular(t *testing.T) {
	inst, err := loader.ParseTriangular(strings.NewReader(sampleTri))
	require.NoError(t, err)
	assert.Equal(t, 5, inst.N)
	assert.Equal(t, 4, inst.K)
	assert.Equal(t, sampleWeights(), inst.Weights)

	g, err := inst.Graph()
	require.NoError(t, err)
	assert.Equal(t, 7, g.EdgeCount())
	assert.Equal(t, 6, g.Weight(4, 2))
}

func TestParseTriangular_SingleVertex(t *testing.T) {
	inst, err := loader.ParseTriangular(strings.NewReader("1 1\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}}, inst.Weights)
}

func TestParseDense(t *testing.T) {
	src := "3 2\n7 1 -9999\n1 0 2\n-9999 2 9\n"
	inst, err := loader.ParseDense(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, X}, {1, 0, 2}, {X, 2, 0}}, inst.Weights, "diagonal is normalized")
}

func TestParseText_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		parse func(string) error
		src   string
	}{
		{"tri empty", triErr, "# nothing\n"},
		{"tri header width", triErr, "3\n1 2\n3\n"},
		{"tri n zero", triErr, "0 1\n"},
		{"tri k above n", triErr, "2 3\n1\n"},
		{"tri not an int", triErr, "2 1\nx\n"},
		{"tri short row", triErr, "3 2\n1\n2\n"},
		{"tri missing row", triErr, "3 2\n1 2\n"},
		{"tri trailing", triErr, "2 2\n1\n5\n"},
		{"dense asymmetric", denseErr, "2 2\n0 1\n2 0\n"},
		{"dense short", denseErr, "2 2\n0 1\n"},
		{"tri huge n", triErr, "4611686018427387904 1\n"},
		{"dense huge n", denseErr, "4611686018427387904 1\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.parse(tc.src), loader.ErrMalformed)
		})
	}
}

func TestParse_VertexBound(t *testing.T) {
	over := strconv.Itoa(loader.MaxVertices+1) + " 1\n"
	assert.ErrorIs(t, triErr(over), loader.ErrMalformed)
	assert.ErrorIs(t, denseErr(over), loader.ErrMalformed)

	_, err := loader.ParseYAML(strings.NewReader("n: " + strconv.Itoa(loader.MaxVertices+1) + "\nk: 1\n"))
	assert.ErrorIs(t, err, loader.ErrMalformed)
}

func triErr(src string) error {
	_, err := loader.ParseTriangular(strings.NewReader(src))
	return err
}

func denseErr(src string) error {
	_, err := loader.ParseDense(strings.NewReader(src))
	return err
}

func TestParseYAML(t *testing.T) {
	src := `
n: 4
k: 2
no_edge: -1
edges:
  - {u: 0, v: 1, w: 5}
  - {u: 3, v: 2, w: -7}
  - {u: 1, v: 2, w: -1}
`
	inst, err := loader.ParseYAML(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{0, 5, X, X},
		{5, 0, X, X},
		{X, X, 0, -7},
		{X, X, -7, 0},
	}, inst.Weights)
}

func TestParseYAML_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":        "",
		"unknown key":  "n: 2\nk: 1\nweights: []\n",
		"self loop":    "n: 2\nk: 1\nedges: [{u: 1, v: 1, w: 3}]\n",
		"out of range": "n: 2\nk: 1\nedges: [{u: 0, v: 2, w: 3}]\n",
		"repeated":     "n: 2\nk: 1\nedges: [{u: 0, v: 1, w: 3}, {u: 1, v: 0, w: 4}]\n",
		"collision":    "n: 2\nk: 1\nno_edge: -1\nedges: [{u: 0, v: 1, w: -9999}]\n",
		"bad k":        "n: 2\nk: 0\n",
		"syntax":       "n: [\n",
		"huge n":       "n: 4611686018427387904\nk: 1\nedges: []\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := loader.ParseYAML(strings.NewReader(src))
			assert.ErrorIs(t, err, loader.ErrMalformed)
		})
	}
}

const sampleHCL = `
n = 3
k = 2

edge {
  u = 0
  v = 1
  w = 5
}

edge {
  u = 2
  v = 1
  w = -3
}

edge {
  u = 0
  v = 2
  w = no_edge
}
`

func TestParseHCL(t *testing.T) {
	inst, err := loader.ParseHCL([]byte(sampleHCL), "sample.hcl")
	require.NoError(t, err)
	assert.Equal(t, 3, inst.N)
	assert.Equal(t, 2, inst.K)
	assert.Equal(t, [][]int{{0, 5, X}, {5, 0, -3}, {X, -3, 0}}, inst.Weights)
}

func TestParseHCL_Malformed(t *testing.T) {
	cases := map[string]string{
		"syntax":           "n = \n",
		"missing k":        "n = 2\n",
		"unknown variable": "n = 2\nk = 1\nedge {\n  u = 0\n  v = 1\n  w = nope\n}\n",
		"out of range":     "n = 2\nk = 1\nedge {\n  u = 0\n  v = 5\n  w = 1\n}\n",
		"huge n":           "n = 4611686018427387904\nk = 1\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := loader.ParseHCL([]byte(src), name+".hcl")
			assert.ErrorIs(t, err, loader.ErrMalformed)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]loader.Format{
		"a.tri":     loader.FormatTriangular,
		"dir/b.TXT": loader.FormatTriangular,
		"c.dense":   loader.FormatDense,
		"d.mat":     loader.FormatDense,
		"e.yaml":    loader.FormatYAML,
		"f.yml":     loader.FormatYAML,
		"g.hcl":     loader.FormatHCL,
	} {
		got, err := loader.FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
	_, err := loader.FormatFromPath("x.json")
	assert.ErrorIs(t, err, loader.ErrUnknownFormat)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	tri := filepath.Join(dir, "sample.tri")
	require.NoError(t, os.WriteFile(tri, []byte(sampleTri), 0o600))
	hclPath := filepath.Join(dir, "sample.hcl")
	require.NoError(t, os.WriteFile(hclPath, []byte(sampleHCL), 0o600))

	inst, err := loader.Load(tri)
	require.NoError(t, err)
	assert.Equal(t, sampleWeights(), inst.Weights)

	inst, err = loader.Load(hclPath)
	require.NoError(t, err)
	assert.Equal(t, 3, inst.N)

	_, err = loader.Load(filepath.Join(dir, "missing.tri"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = loader.Load(filepath.Join(dir, "sample.csv"))
	assert.ErrorIs(t, err, loader.ErrUnknownFormat)
}

func TestWrite_RoundTrip(t *testing.T) {
	orig := &loader.Instance{N: 5, K: 4, Weights: sampleWeights()}
	for _, format := range []loader.Format{loader.FormatTriangular, loader.FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, loader.Write(&buf, orig, format))
			back, err := loader.Parse(&buf, format, "roundtrip")
			require.NoError(t, err)
			assert.Equal(t, orig, back)
		})
	}

	assert.ErrorIs(t, loader.Write(&bytes.Buffer{}, orig, loader.FormatHCL), loader.ErrUnknownFormat)
}

func TestInstance_GraphNil(t *testing.T) {
	var inst *loader.Instance
	_, err := inst.Graph()
	assert.ErrorIs(t, err, wgraph.ErrInvalidInput)
}
