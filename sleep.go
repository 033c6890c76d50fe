package timescaler

import (
	"math"

	"golang.org/x/sys/unix"

	"github.com/pion/timescaler/hooks"
	"github.com/pion/timescaler/platform"
	"github.com/pion/timescaler/timeconv"
)

// Futex ABI constants from <linux/futex.h>; golang.org/x/sys/unix does not
// export them.
const (
	FUTEX_WAIT           = 0
	FUTEX_WAKE           = 1
	FUTEX_PRIVATE_FLAG   = 128
	FUTEX_CLOCK_REALTIME = 256
)

// The futex op word carries modifier flags; only the command bits decide
// whether the timeout is a relative wait.
const futexCmdMask = ^(FUTEX_PRIVATE_FLAG | FUTEX_CLOCK_REALTIME)

// Sleep suspends for the given number of virtual whole seconds and returns
// the unslept virtual remainder if interrupted.
func (e *Engine) Sleep(seconds uint) (uint, error) {
	if e.real.Sleep == nil {
		return 0, platform.Unresolved("sleep")
	}
	e.trace("sleep")

	if !e.enabled(hooks.Sleep) || seconds == 0 {
		return e.real.Sleep(seconds)
	}

	remaining, err := e.real.Sleep(uint(math.Round(e.scaleIn(float64(seconds)))))
	if err != nil || remaining == 0 {
		return remaining, err
	}

	return uint(math.Round(e.scaleOut(float64(remaining)))), nil
}

// Usleep suspends for the given number of virtual microseconds.
func (e *Engine) Usleep(usec uint32) error {
	if e.real.Usleep == nil {
		return platform.Unresolved("usleep")
	}
	e.trace("usleep")

	if !e.enabled(hooks.Usleep) || usec == 0 {
		return e.real.Usleep(usec)
	}

	return e.real.Usleep(uint32(math.Round(e.scaleIn(float64(usec)))))
}

// Nanosleep suspends for the requested virtual duration. A non-positive
// request passes through unscaled; on interruption the reported remainder
// is mapped back to virtual seconds.
func (e *Engine) Nanosleep(req, rem *unix.Timespec) error {
	if e.real.Nanosleep == nil {
		return platform.Unresolved("nanosleep")
	}
	e.trace("nanosleep")

	if !e.enabled(hooks.Nanosleep) || req == nil {
		return e.real.Nanosleep(req, rem)
	}

	requested := timeconv.FromTimespec(*req)
	if requested <= 0 {
		return e.real.Nanosleep(req, rem)
	}

	scaled := timeconv.ToTimespec(e.scaleIn(requested))
	err := e.real.Nanosleep(&scaled, rem)
	if err != nil && rem != nil {
		*rem = timeconv.ToTimespec(e.scaleOut(timeconv.FromTimespec(*rem)))
	}

	return err
}

// ClockNanosleep suspends until a deadline or for a duration on the given
// clock. An absolute deadline is first turned into a relative wait against
// the real function's current reading of the same clock; a deadline already
// reached returns immediately without entering the scaled-wait path.
func (e *Engine) ClockNanosleep(clockID int32, flags int, req, rem *unix.Timespec) error {
	if e.real.ClockNanosleep == nil {
		return platform.Unresolved("clock_nanosleep")
	}
	e.trace("clock_nanosleep")

	if !e.enabled(hooks.ClockNanosleep) {
		return e.real.ClockNanosleep(clockID, flags, req, rem)
	}

	if _, ok := e.anchorFor(clockID); !ok {
		e.log.Errorf("clock_nanosleep: unsupported clock id %d", clockID)

		return unix.EINVAL
	}
	if req == nil {
		return e.real.ClockNanosleep(clockID, flags, req, rem)
	}

	requested := timeconv.FromTimespec(*req)

	if flags&unix.TIMER_ABSTIME != 0 {
		if e.real.ClockGettime == nil {
			return platform.Unresolved("clock_gettime")
		}

		var now unix.Timespec
		if err := e.real.ClockGettime(clockID, &now); err != nil {
			return err
		}

		requested -= timeconv.FromTimespec(now)
		if requested <= 0 {
			return nil
		}

		scaled := timeconv.ToTimespec(e.scaleIn(requested))

		return e.real.ClockNanosleep(clockID, 0, &scaled, nil)
	}

	if requested <= 0 {
		return e.real.ClockNanosleep(clockID, flags, req, rem)
	}

	scaled := timeconv.ToTimespec(e.scaleIn(requested))
	err := e.real.ClockNanosleep(clockID, flags, &scaled, rem)
	if err != nil && rem != nil {
		*rem = timeconv.ToTimespec(e.scaleOut(timeconv.FromTimespec(*rem)))
	}

	return err
}

// Futex forwards a futex operation, stretching the relative timeout of a
// FUTEX_WAIT. Every other command either takes no timeout or interprets it
// on its own terms, so it passes through untouched, as does the
// wait-forever nil timeout.
func (e *Engine) Futex(uaddr *int32, op int, val int32, timeout *unix.Timespec, uaddr2 *int32, val3 int32) (int, error) {
	if e.real.Futex == nil {
		return 0, platform.Unresolved("futex")
	}
	e.trace("futex")

	if !e.enabled(hooks.Futex) || op&futexCmdMask != FUTEX_WAIT || timeout == nil {
		return e.real.Futex(uaddr, op, val, timeout, uaddr2, val3)
	}

	requested := timeconv.FromTimespec(*timeout)
	if requested <= 0 {
		return e.real.Futex(uaddr, op, val, timeout, uaddr2, val3)
	}

	scaled := timeconv.ToTimespec(e.scaleIn(requested))

	return e.real.Futex(uaddr, op, val, &scaled, uaddr2, val3)
}
