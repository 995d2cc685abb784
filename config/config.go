// Package config loads the cliquepart runtime configuration from defaults,
// an optional YAML file and CLIQUEPART_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/cliquepart/partition"
)

// EnvPrefix prefixes every environment override, e.g.
// CLIQUEPART_SOLVER_WORKERS for solver.workers.
const EnvPrefix = "CLIQUEPART"

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete runtime configuration.
type Config struct {
	Solver  SolverConfig  `mapstructure:"solver"`
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
	Tracing TracingConfig `mapstructure:"tracing"`
}

// SolverConfig maps onto partition.Options.
type SolverConfig struct {
	// MaxRepairRounds caps the repair sweeps (0 disables repair).
	MaxRepairRounds int `mapstructure:"max_repair_rounds" validate:"gte=0"`
	// CoverageBonus is the builder score per newly covered edge.
	CoverageBonus int64 `mapstructure:"coverage_bonus" validate:"gte=0"`
	// Workers > 1 enables the parallel candidate scan.
	Workers int `mapstructure:"workers" validate:"gte=1"`
}

// LoggingConfig selects the zap level and encoder.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	// Format is one of "text", "json", "yaml".
	Format string `mapstructure:"format" validate:"oneof=text json yaml"`
	// MetricsFile, when set, receives a Prometheus textfile after each run.
	MetricsFile string `mapstructure:"metrics_file"`
}

// TracingConfig configures the OTLP exporter. An empty Endpoint disables it.
type TracingConfig struct {
	Endpoint    string `mapstructure:"endpoint" validate:"omitempty,hostname_port"`
	ServiceName string `mapstructure:"service_name" validate:"required"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Solver: SolverConfig{
			MaxRepairRounds: partition.DefaultMaxRepairRounds,
			CoverageBonus:   partition.DefaultCoverageBonus,
			Workers:         1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Output: OutputConfig{
			Format: "text",
		},
		Tracing: TracingConfig{
			ServiceName: "cliquepart",
		},
	}
}

// SetDefaults registers every key of Default with v, so that environment
// overrides are visible to Unmarshal even without a config file.
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("solver.max_repair_rounds", d.Solver.MaxRepairRounds)
	v.SetDefault("solver.coverage_bonus", d.Solver.CoverageBonus)
	v.SetDefault("solver.workers", d.Solver.Workers)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)

	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.metrics_file", d.Output.MetricsFile)

	v.SetDefault("tracing.endpoint", d.Tracing.Endpoint)
	v.SetDefault("tracing.service_name", d.Tracing.ServiceName)
}

// Load resolves the configuration held by v: defaults, then the YAML file at
// path (skipped when path is empty), then CLIQUEPART_* variables. The result
// is validated before it is returned.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("Load: reading %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("Load: decoding: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// PartitionOptions translates the solver section into pipeline options.
func (c *Config) PartitionOptions() []partition.Option {
	return []partition.Option{
		partition.WithMaxRepairRounds(c.Solver.MaxRepairRounds),
		partition.WithCoverageBonus(c.Solver.CoverageBonus),
		partition.WithWorkers(c.Solver.Workers),
	}
}
