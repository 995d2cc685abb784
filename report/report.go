// Package report renders the outcome of a partition run as styled text,
// JSON or YAML.
package report

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/cliquepart/converters"
	"github.com/katalvlaran/cliquepart/partition"
	"github.com/katalvlaran/cliquepart/wgraph"
)

// Report is the printable summary of one run.
type Report struct {
	RunID      string       `json:"run_id" yaml:"run_id"`
	Source     string       `json:"source,omitempty" yaml:"source,omitempty"`
	N          int          `json:"n" yaml:"n"`
	K          int          `json:"k" yaml:"k"`
	Cliques    []CliqueLine `json:"cliques" yaml:"cliques"`
	Summary    Summary      `json:"summary" yaml:"summary"`
	Repair     RepairLine   `json:"repair" yaml:"repair"`
	Modularity *float64     `json:"modularity,omitempty" yaml:"modularity,omitempty"`
	Valid      bool         `json:"valid" yaml:"valid"`
	Violation  string       `json:"violation,omitempty" yaml:"violation,omitempty"`
	ElapsedMS  float64      `json:"elapsed_ms" yaml:"elapsed_ms"`
}

// CliqueLine is one clique with its size and internal weight.
type CliqueLine struct {
	Members []int `json:"members" yaml:"members,flow"`
	Size    int   `json:"size" yaml:"size"`
	Weight  int64 `json:"weight" yaml:"weight"`
}

// Summary mirrors partition.Stats.
type Summary struct {
	Cliques        int     `json:"cliques" yaml:"cliques"`
	Largest        int     `json:"largest" yaml:"largest"`
	Singletons     int     `json:"singletons" yaml:"singletons"`
	TotalWeight    int64   `json:"total_weight" yaml:"total_weight"`
	AverageWeight  float64 `json:"average_weight" yaml:"average_weight"`
	CoveredEdges   int     `json:"covered_edges" yaml:"covered_edges"`
	UncoveredEdges int     `json:"uncovered_edges" yaml:"uncovered_edges"`
}

// RepairLine mirrors partition.RepairStats.
type RepairLine struct {
	Rounds      int `json:"rounds" yaml:"rounds"`
	Relocations int `json:"relocations" yaml:"relocations"`
	Dropped     int `json:"dropped" yaml:"dropped"`
}

// Option customizes New.
type Option func(*Report)

// WithRunID replaces the generated run id.
func WithRunID(id string) Option {
	return func(r *Report) { r.RunID = id }
}

// WithSource records the instance origin (usually a file path).
func WithSource(src string) Option {
	return func(r *Report) { r.Source = src }
}

// New assembles a Report from g and the pipeline result. A fresh UUID is
// used as run id unless WithRunID is given. Modularity is omitted when it
// is undefined for g.
func New(g *wgraph.Graph, res *partition.Result, opts ...Option) *Report {
	r := &Report{
		RunID: uuid.New().String(),
		N:     g.N(),
		K:     g.K(),
		Summary: Summary{
			Cliques:        res.Stats.Cliques,
			Largest:        res.Stats.Largest,
			Singletons:     res.Stats.Singletons,
			TotalWeight:    res.Stats.TotalWeight,
			AverageWeight:  res.Stats.AverageWeight,
			CoveredEdges:   res.Stats.CoveredEdges,
			UncoveredEdges: res.Stats.UncoveredEdges,
		},
		Repair: RepairLine{
			Rounds:      res.Repair.Rounds,
			Relocations: res.Repair.Relocations,
			Dropped:     res.Repair.Dropped,
		},
		Valid:     res.Valid(),
		ElapsedMS: float64(res.Elapsed.Microseconds()) / 1000,
	}
	if res.Violation != nil {
		r.Violation = res.Violation.Error()
	}

	r.Cliques = make([]CliqueLine, len(res.Cliques))
	for i, cl := range res.Cliques {
		r.Cliques[i] = CliqueLine{
			Members: append([]int(nil), cl...),
			Size:    len(cl),
			Weight:  g.CliqueWeight(cl),
		}
	}
	if q, err := converters.Modularity(g, res.Cliques); err == nil {
		r.Modularity = &q
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}
