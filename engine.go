// Package timescaler makes a process perceive time advancing at an
// adjustable rate relative to wall-clock reality. Every intercepted time
// operation is rewritten through a single invertible transform anchored at
// bootstrap: instantaneous readings move closer to their anchor by the
// scale factor, requested wait durations stretch by it, and reported
// remainders shrink back by it. Operations left out of the hook selection
// delegate to the real platform implementation verbatim.
package timescaler

import (
	pionlogging "github.com/pion/logging"
	"golang.org/x/sys/unix"

	"github.com/pion/timescaler/config"
	"github.com/pion/timescaler/hooks"
	"github.com/pion/timescaler/logging"
	"github.com/pion/timescaler/platform"
	"github.com/pion/timescaler/timeconv"
)

// Engine applies the time transform for one process. All fields are written
// once during construction and read-only afterward, so concurrent hook
// calls need no locking.
type Engine struct {
	cfg  config.Config
	real platform.Table
	log  pionlogging.LeveledLogger

	// passthrough forces every hook to delegate verbatim. It is set when
	// the configured scale factor is unusable: the engine then refuses to
	// scale rather than divide by a rejected value.
	passthrough bool

	anchors anchors
}

// anchors are the per-clock-source reference readings captured once at
// bootstrap through the real handles. Anchors of different sources are
// never compared with each other.
type anchors struct {
	wall float64 // calendar seconds, shared by time, gettimeofday, CLOCK_REALTIME
	mono float64 // CLOCK_MONOTONIC seconds
	cpu  float64 // elapsed-CPU seconds from the tick counter
}

// Option configures an Engine.
type Option func(*Engine) error

// WithConfig sets the resolved configuration.
func WithConfig(cfg config.Config) Option {
	return func(e *Engine) error {
		e.cfg = cfg

		return nil
	}
}

// WithTable injects the real-function registry. Tests use this to
// substitute fakes for the platform.
func WithTable(table platform.Table) Option {
	return func(e *Engine) error {
		e.real = table

		return nil
	}
}

// WithLoggerFactory sets the factory used for the engine's diagnostics.
func WithLoggerFactory(factory pionlogging.LoggerFactory) Option {
	return func(e *Engine) error {
		e.log = factory.NewLogger("timescaler")

		return nil
	}
}

// NewEngine builds an engine and captures its clock anchors. The default
// configuration is passthrough scale with every hook enabled and silent
// diagnostics; the default table is the running platform.
func NewEngine(options ...Option) (*Engine, error) {
	e := &Engine{
		cfg:  config.Default(),
		real: platform.System(),
	}

	for _, option := range options {
		if err := option(e); err != nil {
			return nil, err
		}
	}

	if e.log == nil {
		e.log = logging.NewLoggerFactory(e.cfg.Verbosity).NewLogger("timescaler")
	}

	if e.cfg.Scale <= 0 {
		e.log.Errorf("refusing scale factor %v, forcing passthrough", e.cfg.Scale)
		e.cfg.Scale = 1.0
		e.passthrough = true
	}

	e.captureAnchors()

	if missing := e.real.Missing(); len(missing) > 0 {
		e.log.Debugf("unresolved handles: %v", missing)
	}
	e.log.Debugf("initialized with scale=%v verbosity=%d hooks=%v",
		e.cfg.Scale, e.cfg.Verbosity, e.cfg.Hooks.Names())

	return e, nil
}

// captureAnchors reads one reference value per clock source through the
// real handles. Handles that are unresolved leave a zero anchor; the
// operations needing them fail with ErrUnresolved when invoked, so nothing
// is lost by skipping them here.
func (e *Engine) captureAnchors() {
	if e.real.Gettimeofday != nil {
		var tv unix.Timeval
		if err := e.real.Gettimeofday(&tv); err == nil {
			e.anchors.wall = timeconv.FromTimeval(tv)
		}
	} else if e.real.Time != nil {
		if now, err := e.real.Time(); err == nil {
			e.anchors.wall = float64(now)
		}
	}

	if e.real.ClockGettime != nil {
		var ts unix.Timespec
		if err := e.real.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err == nil {
			e.anchors.mono = timeconv.FromTimespec(ts)
		}
	}

	if e.real.Clock != nil {
		if ticks, err := e.real.Clock(); err == nil {
			e.anchors.cpu = timeconv.FromTicks(ticks, platform.ClockTicksPerSecond)
		}
	}
}

// Scale returns the effective scale factor.
func (e *Engine) Scale() float64 {
	return e.cfg.Scale
}

// Hooks returns the enabled hook selection.
func (e *Engine) Hooks() hooks.Set {
	if e.passthrough {
		return hooks.None
	}

	return e.cfg.Hooks
}

// enabled reports whether id is intercepted; a disabled entry delegates to
// the real handle with unmodified arguments.
func (e *Engine) enabled(id hooks.ID) bool {
	return !e.passthrough && e.cfg.Hooks.Has(id)
}

// toVirtual maps an instantaneous real reading onto the virtual timeline of
// its clock source. Virtual time equals real time exactly at the anchor and
// advances monotonically with it for any positive scale.
func (e *Engine) toVirtual(anchor, real float64) float64 {
	return anchor + (real-anchor)/e.cfg.Scale
}

// scaleIn converts a requested virtual duration into the real duration
// handed to the platform.
func (e *Engine) scaleIn(seconds float64) float64 {
	return seconds * e.cfg.Scale
}

// scaleOut converts a real remainder reported by the platform back into
// virtual seconds.
func (e *Engine) scaleOut(seconds float64) float64 {
	return seconds / e.cfg.Scale
}

// anchorFor returns the anchor of a clock-gettime clock source. Only the
// realtime and monotonic clocks are virtualized; any other id reports
// EINVAL to the caller.
func (e *Engine) anchorFor(clockID int32) (float64, bool) {
	switch clockID {
	case unix.CLOCK_REALTIME:
		return e.anchors.wall, true
	case unix.CLOCK_MONOTONIC:
		return e.anchors.mono, true
	default:
		return 0, false
	}
}

func (e *Engine) trace(name string) {
	e.log.Debugf("calling %s", name)
}
