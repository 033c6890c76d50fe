// Package logging builds the engine's leveled loggers from a numeric
// verbosity level and provides helpers for capturing diagnostics to files.
package logging

import (
	"os"
	"path/filepath"

	pionlogging "github.com/pion/logging"

	"github.com/pion/timescaler/config"
)

// NewLoggerFactory maps a verbosity level onto a pion logging factory
// writing severity-prefixed lines to stderr.
func NewLoggerFactory(verbosity int) *pionlogging.DefaultLoggerFactory {
	factory := pionlogging.NewDefaultLoggerFactory()
	factory.Writer = os.Stderr
	factory.DefaultLogLevel = logLevel(verbosity)

	return factory
}

func logLevel(verbosity int) pionlogging.LogLevel {
	switch {
	case verbosity <= config.Silent:
		return pionlogging.LogLevelDisabled
	case verbosity == config.Error:
		return pionlogging.LogLevelError
	case verbosity == config.Warning:
		return pionlogging.LogLevelWarn
	default:
		return pionlogging.LogLevelDebug
	}
}

// GetLogFile opens (creating directories as needed) a file for diagnostic
// captures, such as per-run transform traces from a test harness.
func GetLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, err
	}

	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
}
