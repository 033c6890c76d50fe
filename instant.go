package timescaler

import (
	"math"

	"golang.org/x/sys/unix"

	"github.com/pion/timescaler/hooks"
	"github.com/pion/timescaler/platform"
	"github.com/pion/timescaler/timeconv"
)

// Time returns the virtual calendar time in whole seconds, also storing it
// through tloc when non-nil.
func (e *Engine) Time(tloc *int64) (int64, error) {
	if e.real.Time == nil {
		return 0, platform.Unresolved("time")
	}
	e.trace("time")

	now, err := e.real.Time()
	if err != nil {
		return now, err
	}
	if e.enabled(hooks.Time) {
		now = int64(math.Floor(e.toVirtual(e.anchors.wall, float64(now))))
	}
	if tloc != nil {
		*tloc = now
	}

	return now, nil
}

// Gettimeofday fills tv with the virtual calendar time of day.
func (e *Engine) Gettimeofday(tv *unix.Timeval) error {
	if e.real.Gettimeofday == nil {
		return platform.Unresolved("gettimeofday")
	}
	e.trace("gettimeofday")

	if err := e.real.Gettimeofday(tv); err != nil {
		return err
	}
	if e.enabled(hooks.Gettimeofday) && tv != nil {
		*tv = timeconv.ToTimeval(e.toVirtual(e.anchors.wall, timeconv.FromTimeval(*tv)))
	}

	return nil
}

// ClockGettime fills ts with the virtual reading of the given clock source.
// Only the realtime and monotonic clocks are supported when the hook is
// enabled; any other id is rejected with EINVAL before touching the
// platform.
func (e *Engine) ClockGettime(clockID int32, ts *unix.Timespec) error {
	if e.real.ClockGettime == nil {
		return platform.Unresolved("clock_gettime")
	}
	e.trace("clock_gettime")

	if !e.enabled(hooks.ClockGettime) {
		return e.real.ClockGettime(clockID, ts)
	}

	anchor, ok := e.anchorFor(clockID)
	if !ok {
		e.log.Errorf("clock_gettime: unsupported clock id %d", clockID)

		return unix.EINVAL
	}

	if err := e.real.ClockGettime(clockID, ts); err != nil {
		return err
	}
	if ts != nil {
		*ts = timeconv.ToTimespec(e.toVirtual(anchor, timeconv.FromTimespec(*ts)))
	}

	return nil
}

// Clock returns the virtual elapsed-CPU tick count.
func (e *Engine) Clock() (int64, error) {
	if e.real.Clock == nil {
		return 0, platform.Unresolved("clock")
	}
	e.trace("clock")

	ticks, err := e.real.Clock()
	if err != nil || !e.enabled(hooks.Clock) {
		return ticks, err
	}

	virtual := e.toVirtual(e.anchors.cpu, timeconv.FromTicks(ticks, platform.ClockTicksPerSecond))

	return timeconv.ToTicks(virtual, platform.ClockTicksPerSecond), nil
}
