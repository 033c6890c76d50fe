// Package platform resolves the genuine platform implementations of the
// intercepted operations. The engine never calls its own wrappers to reach
// the platform, only the handles resolved here, which keeps the transform
// from ever being applied twice.
package platform

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// ErrUnresolved is returned when an operation is invoked whose real
// implementation was not resolved. A missing handle is fatal only for the
// call that actually needs it.
var ErrUnresolved = errors.New("real function not resolved")

// ClockTicksPerSecond is the rate of the elapsed-CPU tick counter, the
// kernel's CLK_TCK.
const ClockTicksPerSecond int64 = 100

// Table holds one resolved handle per catalog entry. It is populated once
// during bootstrap and read-only afterward. A nil field reports
// ErrUnresolved when the corresponding operation is invoked.
//
// Signatures mirror golang.org/x/sys/unix so that handles bind to it
// directly; tests substitute fakes for the entries they exercise.
type Table struct {
	Alarm          func(seconds uint) (uint, error)
	Clock          func() (int64, error)
	ClockGettime   func(clockID int32, ts *unix.Timespec) error
	ClockNanosleep func(clockID int32, flags int, req, rem *unix.Timespec) error
	EpollPwait     func(epfd int, events []unix.EpollEvent, msec int, sigmask *unix.Sigset_t) (int, error)
	EpollWait      func(epfd int, events []unix.EpollEvent, msec int) (int, error)
	Futex          func(uaddr *int32, op int, val int32, timeout *unix.Timespec, uaddr2 *int32, val3 int32) (int, error)
	Getitimer      func(which int, value *unix.Itimerval) error
	Gettimeofday   func(tv *unix.Timeval) error
	Nanosleep      func(req, rem *unix.Timespec) error
	Poll           func(fds []unix.PollFd, timeoutMsec int) (int, error)
	Ppoll          func(fds []unix.PollFd, timeout *unix.Timespec, sigmask *unix.Sigset_t) (int, error)
	Pselect        func(nfd int, r, w, e *unix.FdSet, timeout *unix.Timespec, sigmask *unix.Sigset_t) (int, error)
	Select         func(nfd int, r, w, e *unix.FdSet, timeout *unix.Timeval) (int, error)
	Setitimer      func(which int, value unix.Itimerval) (unix.Itimerval, error)
	Sleep          func(seconds uint) (uint, error)
	Time           func() (int64, error)
	Ualarm         func(usecs, interval uint32) (uint32, error)
	Usleep         func(usec uint32) error
}

// Missing returns the catalog names whose handles are unresolved, for the
// bootstrap debug report.
func (t Table) Missing() []string {
	var missing []string

	check := func(name string, resolved bool) {
		if !resolved {
			missing = append(missing, name)
		}
	}

	check("alarm", t.Alarm != nil)
	check("clock", t.Clock != nil)
	check("clock_gettime", t.ClockGettime != nil)
	check("clock_nanosleep", t.ClockNanosleep != nil)
	check("epoll_pwait", t.EpollPwait != nil)
	check("epoll_wait", t.EpollWait != nil)
	check("futex", t.Futex != nil)
	check("getitimer", t.Getitimer != nil)
	check("gettimeofday", t.Gettimeofday != nil)
	check("nanosleep", t.Nanosleep != nil)
	check("poll", t.Poll != nil)
	check("ppoll", t.Ppoll != nil)
	check("pselect", t.Pselect != nil)
	check("select", t.Select != nil)
	check("setitimer", t.Setitimer != nil)
	check("sleep", t.Sleep != nil)
	check("time", t.Time != nil)
	check("ualarm", t.Ualarm != nil)
	check("usleep", t.Usleep != nil)

	return missing
}

// Unresolved wraps ErrUnresolved with the name of the operation whose
// handle was missing.
func Unresolved(name string) error {
	return fmt.Errorf("%w: %s", ErrUnresolved, name)
}
