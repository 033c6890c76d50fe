package timescaler

import "golang.org/x/sys/unix"

// Package-level entry points for the interposition collaborator. Each one
// routes through the process-wide engine, bootstrapping it on first use.

// Time reads the virtual calendar time in whole seconds.
func Time(tloc *int64) (int64, error) { return Default().Time(tloc) }

// Gettimeofday reads the virtual calendar time of day.
func Gettimeofday(tv *unix.Timeval) error { return Default().Gettimeofday(tv) }

// ClockGettime reads the virtual time of a clock source.
func ClockGettime(clockID int32, ts *unix.Timespec) error {
	return Default().ClockGettime(clockID, ts)
}

// Clock reads the virtual elapsed-CPU tick count.
func Clock() (int64, error) { return Default().Clock() }

// Sleep suspends for virtual whole seconds.
func Sleep(seconds uint) (uint, error) { return Default().Sleep(seconds) }

// Usleep suspends for virtual microseconds.
func Usleep(usec uint32) error { return Default().Usleep(usec) }

// Nanosleep suspends for a virtual duration.
func Nanosleep(req, rem *unix.Timespec) error { return Default().Nanosleep(req, rem) }

// ClockNanosleep suspends for a virtual duration or until a deadline.
func ClockNanosleep(clockID int32, flags int, req, rem *unix.Timespec) error {
	return Default().ClockNanosleep(clockID, flags, req, rem)
}

// Futex forwards a futex operation with a scaled FUTEX_WAIT timeout.
func Futex(uaddr *int32, op int, val int32, timeout *unix.Timespec, uaddr2 *int32, val3 int32) (int, error) {
	return Default().Futex(uaddr, op, val, timeout, uaddr2, val3)
}

// Select waits on descriptor sets with a scaled timeout.
func Select(nfd int, r, w, ex *unix.FdSet, timeout *unix.Timeval) (int, error) {
	return Default().Select(nfd, r, w, ex, timeout)
}

// Pselect waits on descriptor sets with a scaled timeout.
func Pselect(nfd int, r, w, ex *unix.FdSet, timeout *unix.Timespec, sigmask *unix.Sigset_t) (int, error) {
	return Default().Pselect(nfd, r, w, ex, timeout, sigmask)
}

// Poll waits on a descriptor list with a scaled millisecond timeout.
func Poll(fds []unix.PollFd, timeoutMsec int) (int, error) {
	return Default().Poll(fds, timeoutMsec)
}

// Ppoll waits on a descriptor list with a scaled timeout.
func Ppoll(fds []unix.PollFd, timeout *unix.Timespec, sigmask *unix.Sigset_t) (int, error) {
	return Default().Ppoll(fds, timeout, sigmask)
}

// EpollWait waits on an event set with a scaled millisecond timeout.
func EpollWait(epfd int, events []unix.EpollEvent, msec int) (int, error) {
	return Default().EpollWait(epfd, events, msec)
}

// EpollPwait waits on an event set with a scaled millisecond timeout and a
// signal mask.
func EpollPwait(epfd int, events []unix.EpollEvent, msec int, sigmask *unix.Sigset_t) (int, error) {
	return Default().EpollPwait(epfd, events, msec, sigmask)
}

// Alarm installs a coarse alarm in virtual seconds.
func Alarm(seconds uint) (uint, error) { return Default().Alarm(seconds) }

// Ualarm installs a fine-resolution repeating alarm in virtual
// microseconds.
func Ualarm(usecs, interval uint32) (uint32, error) { return Default().Ualarm(usecs, interval) }

// Getitimer reads an interval timer in virtual time.
func Getitimer(which int, value *unix.Itimerval) error { return Default().Getitimer(which, value) }

// Setitimer installs an interval timer expressed in virtual time.
func Setitimer(which int, value unix.Itimerval) (unix.Itimerval, error) {
	return Default().Setitimer(which, value)
}
