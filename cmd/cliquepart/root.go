package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/cliquepart/config"
	"github.com/katalvlaran/cliquepart/logging"
	"github.com/katalvlaran/cliquepart/metrics"
	"github.com/katalvlaran/cliquepart/tracing"
)

// shutdownTimeout bounds the final span flush.
const shutdownTimeout = 5 * time.Second

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger
	metrics *metrics.Collector

	// closers run in reverse order on teardown.
	closers []tracing.ShutdownFunc
}

func newApp() *app {
	return &app{
		v:       viper.New(),
		log:     zap.NewNop(),
		metrics: metrics.NewCollector(metrics.DefaultNamespace),
	}
}

func newRootCmd() *cobra.Command {
	return newApp().rootCmd()
}

// execute runs cmd and tears the app down afterwards, also when cmd fails.
func (a *app) execute(ctx context.Context, cmd *cobra.Command) error {
	defer a.teardown()

	return cmd.ExecuteContext(ctx)
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cliquepart",
		Short: "Partition a weighted graph into bounded cliques",
		Long: `cliquepart splits the vertices of an edge-weighted undirected graph into
disjoint cliques of at most k vertices, favoring heavy and covered edges.

Configuration is read from defaults, an optional YAML file (--config) and
CLIQUEPART_* environment variables, e.g. CLIQUEPART_SOLVER_WORKERS=4.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "YAML config file")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log encoder: console or json")

	root.AddCommand(newSolveCmd(a), newGenerateCmd(a), newWatchCmd(a))

	return root
}

// flagKeys maps command-line flags onto the configuration keys they override.
// Flags are bound per executing command, since viper keeps one flag per key.
var flagKeys = map[string]string{
	"log-level":         "logging.level",
	"log-format":        "logging.format",
	"output":            "output.format",
	"workers":           "solver.workers",
	"max-repair-rounds": "solver.max_repair_rounds",
	"metrics-file":      "output.metrics_file",
}

// setup loads the configuration and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := a.v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	shutdown, err := tracing.Setup(cmd.Context(), cfg.Tracing.Endpoint, cfg.Tracing.ServiceName)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	a.closers = append(a.closers, shutdown)
	a.log.Debug("configuration loaded",
		zap.String("file", a.cfgFile),
		zap.Int("workers", cfg.Solver.Workers),
		zap.Int("max_repair_rounds", cfg.Solver.MaxRepairRounds),
	)

	return nil
}

// teardown flushes spans and the logger. Calling it twice is harmless.
func (a *app) teardown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			a.log.Warn("shutdown failed", zap.Error(err))
		}
	}
	a.closers = nil
	_ = a.log.Sync()
}
