package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/katalvlaran/cliquepart/loader"
	"github.com/katalvlaran/cliquepart/partition"
	"github.com/katalvlaran/cliquepart/report"
	"github.com/katalvlaran/cliquepart/tracing"
	"github.com/katalvlaran/cliquepart/wgraph"
)

// errInvalidPartition is returned by solve --strict when the validator
// rejects the result.
var errInvalidPartition = errors.New("partition failed validation")

// solveFlags are the per-run overrides shared by solve and watch.
type solveFlags struct {
	k      int
	strict bool
}

func newSolveCmd(a *app) *cobra.Command {
	var sf solveFlags

	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Partition the instance in file and print a report",
		Long: `Load an instance (.tri, .dense, .yaml or .hcl), run build, repair and
validation, and print the resulting cliques with weight and coverage figures.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.run(cmd.Context(), cmd.OutOrStdout(), args[0], sf)
			return err
		},
	}
	bindSolveFlags(cmd, &sf)

	return cmd
}

// bindSolveFlags registers the solver flags on cmd. The ones listed in
// flagKeys are bound to configuration keys by app.setup.
func bindSolveFlags(cmd *cobra.Command, sf *solveFlags) {
	f := cmd.Flags()
	f.IntVarP(&sf.k, "k", "k", 0, "override the instance clique size bound (0 keeps it)")
	f.BoolVar(&sf.strict, "strict", false, "exit non-zero when the partition fails validation")
	f.StringP("output", "o", "", "report format: text, json, yaml")
	f.Int("workers", 0, "parallel scan workers")
	f.Int("max-repair-rounds", 0, "repair sweep cap")
	f.String("metrics-file", "", "write Prometheus textfile metrics here")
}

// run loads path, solves it and writes the report to out. Each phase gets
// its own span under a root span for the whole run.
func (a *app) run(ctx context.Context, out io.Writer, path string, sf solveFlags) (res *partition.Result, err error) {
	ctx, span := tracing.Start(ctx, "cliquepart.run", attribute.String("file", path))
	defer func() { tracing.End(span, err) }()

	var g *wgraph.Graph
	err = phase(ctx, "load", func(context.Context) error {
		inst, err := loader.Load(path)
		if err != nil {
			return err
		}
		if sf.k > 0 {
			inst.K = sf.k
		}
		g, err = inst.Graph()
		return err
	})
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("n", g.N()), attribute.Int("k", g.K()), attribute.Int("edges", g.EdgeCount()))

	err = phase(ctx, "solve", func(context.Context) error {
		opts := append(a.cfg.PartitionOptions(), partition.WithLogger(a.log))
		opts = append(opts, a.metrics.Options()...)
		res, err = partition.Solve(g, opts...)
		return err
	})
	if err != nil {
		return nil, err
	}
	a.metrics.Observe(res)

	err = phase(ctx, "write", func(context.Context) error {
		r := report.New(g, res, report.WithSource(path))
		return report.Write(out, r, report.Format(a.cfg.Output.Format))
	})
	if err != nil {
		return nil, err
	}

	if file := a.cfg.Output.MetricsFile; file != "" {
		if err = a.metrics.WriteTextfile(file); err != nil {
			return nil, err
		}
	}

	a.log.Info("run finished",
		zap.String("file", path),
		zap.Int("cliques", len(res.Cliques)),
		zap.Int64("weight", res.Stats.TotalWeight),
		zap.Bool("valid", res.Valid()),
		zap.Duration("elapsed", res.Elapsed),
	)
	if sf.strict && !res.Valid() {
		err = fmt.Errorf("%s: %w: %v", path, errInvalidPartition, res.Violation)
		return res, err
	}

	return res, nil
}

// phase runs fn inside a child span named name.
func phase(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, span := tracing.Start(ctx, name)
	err := fn(ctx)
	tracing.End(span, err)

	return err
}
