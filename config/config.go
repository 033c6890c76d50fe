// Package config resolves the engine configuration from the process
// environment: scale factor, verbosity level, and the set of hooked
// operations.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pion/timescaler/hooks"
)

// Environment variables read once at bootstrap.
const (
	EnvScale     = "TIMESCALER_SCALE"
	EnvVerbosity = "TIMESCALER_VERBOSITY"
	EnvHooks     = "TIMESCALER_HOOKS"
)

// Verbosity levels. Higher levels include the lower ones.
const (
	Silent  = 0
	Error   = 1
	Warning = 2
	Debug   = 3
)

// ErrInvalidScale is returned when the scale variable is set to something
// that is not a positive real number. A scale of zero or below cannot be
// used for the inverse transform, so it is rejected at bootstrap instead of
// surfacing as division misbehavior in every hook.
var ErrInvalidScale = errors.New("scale factor must be a positive real number")

// Config is the resolved, immutable engine configuration.
type Config struct {
	// Scale is the ratio of real elapsed time to virtual elapsed time.
	// 1.0 is passthrough; larger values make virtual time elapse slower.
	Scale float64

	// Verbosity selects how much diagnostic output is emitted.
	Verbosity int

	// Hooks is the set of catalog entries that are intercepted; entries
	// outside the set delegate to the real function verbatim.
	Hooks hooks.Set
}

// Default returns the configuration used when no environment variables are
// set: passthrough scale, silent, every hook enabled.
func Default() Config {
	return Config{Scale: 1.0, Verbosity: Silent, Hooks: hooks.All}
}

// Load resolves the configuration from the process environment. Unknown
// hook names are reported in warnings and otherwise ignored; they are never
// fatal. The returned error is non-nil only for an unusable scale factor.
func Load() (Config, []string, error) {
	return loadFrom(os.LookupEnv)
}

func loadFrom(lookup func(string) (string, bool)) (Config, []string, error) {
	cfg := Default()

	var warnings []string

	if raw, ok := lookup(EnvVerbosity); ok {
		level, err := strconv.Atoi(strings.TrimSpace(raw))
		switch {
		case err != nil:
			warnings = append(warnings, fmt.Sprintf("ignoring unparsable %s=%q", EnvVerbosity, raw))
		case level < Silent:
			cfg.Verbosity = Silent
		case level > Debug:
			cfg.Verbosity = Debug
		default:
			cfg.Verbosity = level
		}
	}

	if raw, ok := lookup(EnvScale); ok {
		scale, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || scale <= 0 {
			return cfg, warnings, fmt.Errorf("%w: %s=%q", ErrInvalidScale, EnvScale, raw)
		}
		cfg.Scale = scale
	}

	if raw, ok := lookup(EnvHooks); ok {
		set, unknown := parseHooks(raw)
		cfg.Hooks = set
		for _, name := range unknown {
			warnings = append(warnings, fmt.Sprintf("unknown hook: %q", name))
		}
	}

	return cfg, warnings, nil
}

// parseHooks turns a comma-separated list of catalog names into a selection
// set. An empty string selects nothing, which is how every hook is disabled
// at once. Matching is case-sensitive.
func parseHooks(raw string) (hooks.Set, []string) {
	set := hooks.None
	if raw == "" {
		return set, nil
	}

	var unknown []string
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		id, ok := hooks.Lookup(name)
		if !ok {
			unknown = append(unknown, name)

			continue
		}
		set = set.With(id)
	}

	return set, unknown
}
