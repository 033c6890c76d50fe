// Package timeconv maps the structured time representations used on the
// platform boundary (timespec, timeval, fixed-rate tick counts) onto one
// continuous float64 seconds quantity, so that the scaling transform can be
// written once against a single unit.
//
// Conversions are lossless up to the resolution of the target
// representation: structured -> seconds -> structured reproduces the
// original value.
package timeconv

import (
	"math"

	"golang.org/x/sys/unix"
)

const (
	nanosPerSecond  = 1e9
	microsPerSecond = 1e6
)

// FromTimespec converts ts to continuous seconds.
func FromTimespec(ts unix.Timespec) float64 {
	return float64(ts.Sec) + float64(ts.Nsec)/nanosPerSecond
}

// ToTimespec converts continuous seconds to a normalized timespec, with
// Nsec in [0, 1e9).
func ToTimespec(seconds float64) unix.Timespec {
	sec := math.Floor(seconds)
	nsec := int64(math.Round((seconds - sec) * nanosPerSecond))
	if nsec >= nanosPerSecond {
		sec++
		nsec = 0
	}

	return unix.Timespec{Sec: int64(sec), Nsec: nsec}
}

// FromTimeval converts tv to continuous seconds.
func FromTimeval(tv unix.Timeval) float64 {
	return float64(tv.Sec) + float64(tv.Usec)/microsPerSecond
}

// ToTimeval converts continuous seconds to a normalized timeval, with
// Usec in [0, 1e6).
func ToTimeval(seconds float64) unix.Timeval {
	sec := math.Floor(seconds)
	usec := int64(math.Round((seconds - sec) * microsPerSecond))
	if usec >= microsPerSecond {
		sec++
		usec = 0
	}

	return unix.Timeval{Sec: int64(sec), Usec: usec}
}

// FromTicks converts a tick count at the given rate (ticks per second) to
// continuous seconds.
func FromTicks(ticks int64, hz int64) float64 {
	return float64(ticks) / float64(hz)
}

// ToTicks converts continuous seconds to a tick count at the given rate,
// rounding to the nearest tick.
func ToTicks(seconds float64, hz int64) int64 {
	return int64(math.Round(seconds * float64(hz)))
}

// ScaleMillis scales a millisecond timeout. Negative timeouts are the "wait
// forever" sentinel for poll-style calls and pass through unchanged, as does
// zero.
func ScaleMillis(msec int, scale float64) int {
	if msec <= 0 {
		return msec
	}

	return int(math.Round(float64(msec) * scale))
}
