package timescaler

import (
	"math"

	"golang.org/x/sys/unix"

	"github.com/pion/timescaler/hooks"
	"github.com/pion/timescaler/platform"
	"github.com/pion/timescaler/timeconv"
)

// Alarm installs a coarse one-shot alarm of the given virtual seconds and
// returns the virtual seconds that remained on any previously installed
// alarm. Zero cancels and passes through unscaled.
func (e *Engine) Alarm(seconds uint) (uint, error) {
	if e.real.Alarm == nil {
		return 0, platform.Unresolved("alarm")
	}
	e.trace("alarm")

	if !e.enabled(hooks.Alarm) {
		return e.real.Alarm(seconds)
	}

	scaled := seconds
	if seconds > 0 {
		scaled = uint(math.Round(e.scaleIn(float64(seconds))))
	}

	previous, err := e.real.Alarm(scaled)
	if err != nil || previous == 0 {
		return previous, err
	}

	return uint(math.Round(e.scaleOut(float64(previous)))), nil
}

// Ualarm installs a fine-resolution repeating alarm: a virtual initial
// delay and recurrence interval in microseconds, each stretched
// independently. The returned remainder of a previous alarm is mapped back
// to virtual microseconds.
func (e *Engine) Ualarm(usecs, interval uint32) (uint32, error) {
	if e.real.Ualarm == nil {
		return 0, platform.Unresolved("ualarm")
	}
	e.trace("ualarm")

	if !e.enabled(hooks.Ualarm) {
		return e.real.Ualarm(usecs, interval)
	}

	previous, err := e.real.Ualarm(e.scaleMicros(usecs), e.scaleMicros(interval))
	if err != nil || previous == 0 {
		return previous, err
	}

	return uint32(math.Round(e.scaleOut(float64(previous)))), nil
}

// Getitimer reads an interval timer, mapping both its current value and its
// recurrence interval back to virtual time.
func (e *Engine) Getitimer(which int, value *unix.Itimerval) error {
	if e.real.Getitimer == nil {
		return platform.Unresolved("getitimer")
	}
	e.trace("getitimer")

	if err := e.real.Getitimer(which, value); err != nil {
		return err
	}
	if e.enabled(hooks.Getitimer) && value != nil {
		value.Value = e.timevalOut(value.Value)
		value.Interval = e.timevalOut(value.Interval)
	}

	return nil
}

// Setitimer installs an interval timer, stretching the initial value and
// the recurrence interval independently, and returns the previously
// installed timer mapped back to virtual time.
func (e *Engine) Setitimer(which int, value unix.Itimerval) (unix.Itimerval, error) {
	if e.real.Setitimer == nil {
		return unix.Itimerval{}, platform.Unresolved("setitimer")
	}
	e.trace("setitimer")

	if !e.enabled(hooks.Setitimer) {
		return e.real.Setitimer(which, value)
	}

	scaled := unix.Itimerval{
		Value:    e.timevalIn(value.Value),
		Interval: e.timevalIn(value.Interval),
	}

	old, err := e.real.Setitimer(which, scaled)
	if err != nil {
		return old, err
	}

	old.Value = e.timevalOut(old.Value)
	old.Interval = e.timevalOut(old.Interval)

	return old, nil
}

func (e *Engine) scaleMicros(usec uint32) uint32 {
	if usec == 0 {
		return 0
	}

	return uint32(math.Round(e.scaleIn(float64(usec))))
}

func (e *Engine) timevalIn(tv unix.Timeval) unix.Timeval {
	seconds := timeconv.FromTimeval(tv)
	if seconds <= 0 {
		return tv
	}

	return timeconv.ToTimeval(e.scaleIn(seconds))
}

func (e *Engine) timevalOut(tv unix.Timeval) unix.Timeval {
	seconds := timeconv.FromTimeval(tv)
	if seconds <= 0 {
		return tv
	}

	return timeconv.ToTimeval(e.scaleOut(seconds))
}
