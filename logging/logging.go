// Package logging builds the zap logger used by the cliquepart command.
package logging

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Encoders accepted by New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrUnknownFormat is returned for an encoder other than console or json.
var ErrUnknownFormat = errors.New("logging: unknown format")

// New returns a logger writing to stderr at level ("debug", "info", "warn",
// "error") with the given encoder. Console output uses the development
// encoder config; JSON output uses the production one.
func New(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	var cfg zap.Config
	switch format {
	case FormatConsole:
		cfg = zap.NewDevelopmentConfig()
		cfg.Development = false
		cfg.DisableStacktrace = true
	case FormatJSON:
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}
