package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/cliquepart/builder"
	"github.com/katalvlaran/cliquepart/loader"
	"github.com/katalvlaran/cliquepart/wgraph"
)

// Generator topologies.
const (
	topoRandom   = "random"
	topoPlanted  = "planted"
	topoComplete = "complete"
	topoGrid     = "grid"
)

type generateFlags struct {
	n, k       int
	topology   string
	p          float64
	seed       int64
	minW, maxW int
	rows       int
	format     string
	file       string
}

func newGenerateCmd(a *app) *cobra.Command {
	gf := generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic instance",
		Long: `Generate a synthetic instance and write it in triangular or YAML form.

Topologies:
  random    G(n,p) with uniform weights in [min-weight, max-weight]
  planted   disjoint complete blocks of k vertices over G(n,p) noise
  complete  every pair connected
  grid      rows x (n/rows) orthogonal grid`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.generate(cmd.OutOrStdout(), gf)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&gf.n, "n", "n", 20, "vertex count")
	f.IntVarP(&gf.k, "k", "k", 4, "clique size bound")
	f.StringVarP(&gf.topology, "topology", "t", topoRandom, "random, planted, complete or grid")
	f.Float64VarP(&gf.p, "p", "p", 0.3, "edge probability for random and planted")
	f.Int64Var(&gf.seed, "seed", 1, "random seed")
	f.IntVar(&gf.minW, "min-weight", 1, "smallest edge weight")
	f.IntVar(&gf.maxW, "max-weight", 10, "largest edge weight")
	f.IntVar(&gf.rows, "rows", 1, "grid rows")
	f.StringVarP(&gf.format, "format", "f", string(loader.FormatTriangular), "triangular or yaml")
	f.StringVar(&gf.file, "file", "", "write to file instead of stdout")

	return cmd
}

// constructors maps the flags onto builder constructors.
func (gf generateFlags) constructors() ([]builder.Constructor, error) {
	switch gf.topology {
	case topoRandom:
		return []builder.Constructor{builder.RandomSparse(gf.p)}, nil
	case topoPlanted:
		cons := []builder.Constructor{builder.RandomSparse(gf.p)}
		for start := 0; start < gf.n; start += gf.k {
			end := min(start+gf.k, gf.n)
			block := make([]int, 0, end-start)
			for v := start; v < end; v++ {
				block = append(block, v)
			}
			if len(block) > 1 {
				cons = append(cons, builder.Complete(block...))
			}
		}
		return cons, nil
	case topoComplete:
		return []builder.Constructor{builder.Complete()}, nil
	case topoGrid:
		if gf.rows < 1 {
			return nil, fmt.Errorf("grid needs rows ≥ 1, got %d", gf.rows)
		}
		return []builder.Constructor{builder.Grid(gf.rows, gf.n/gf.rows)}, nil
	default:
		return nil, fmt.Errorf("unknown topology %q", gf.topology)
	}
}

func (a *app) generate(stdout io.Writer, gf generateFlags) error {
	if gf.n < 1 || gf.k < 1 || gf.k > gf.n {
		return fmt.Errorf("need 1 ≤ k ≤ n, got n=%d k=%d", gf.n, gf.k)
	}
	if gf.minW > gf.maxW {
		return fmt.Errorf("min-weight %d exceeds max-weight %d", gf.minW, gf.maxW)
	}
	if gf.minW <= wgraph.NoEdge && wgraph.NoEdge <= gf.maxW {
		return fmt.Errorf("weight range [%d,%d] contains the missing-edge marker %d", gf.minW, gf.maxW, wgraph.NoEdge)
	}
	cons, err := gf.constructors()
	if err != nil {
		return err
	}

	w, err := builder.BuildMatrix(gf.n,
		[]builder.BuilderOption{builder.WithSeed(gf.seed), builder.WithUniformWeight(gf.minW, gf.maxW)},
		cons...)
	if err != nil {
		return err
	}
	inst := &loader.Instance{N: gf.n, K: gf.k, Weights: w}
	if _, err = inst.Graph(); err != nil {
		return err
	}

	if gf.file == "" {
		err = loader.Write(stdout, inst, loader.Format(gf.format))
	} else {
		err = writeFile(gf.file, func(out io.Writer) error {
			return loader.Write(out, inst, loader.Format(gf.format))
		})
	}
	if err != nil {
		return err
	}

	a.log.Info("instance generated",
		zap.String("topology", gf.topology),
		zap.Int("n", gf.n),
		zap.Int("k", gf.k),
		zap.Int64("seed", gf.seed),
		zap.String("file", gf.file),
	)

	return nil
}

// writeFile creates path and hands it to fn, reporting the close error
// when fn succeeds.
func writeFile(path string, fn func(io.Writer) error) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = fn(fh); err != nil {
		_ = fh.Close()
		return err
	}

	return fh.Close()
}
