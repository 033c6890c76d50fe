package timescaler

import (
	"golang.org/x/sys/unix"

	"github.com/pion/timescaler/hooks"
	"github.com/pion/timescaler/platform"
	"github.com/pion/timescaler/timeconv"
)

// Select waits on descriptor sets for up to the requested virtual timeout.
// A nil timeout waits forever and passes through; the remaining time the
// kernel writes back into timeout is mapped back to virtual seconds.
func (e *Engine) Select(nfd int, r, w, ex *unix.FdSet, timeout *unix.Timeval) (int, error) {
	if e.real.Select == nil {
		return 0, platform.Unresolved("select")
	}
	e.trace("select")

	if !e.enabled(hooks.Select) || timeout == nil {
		return e.real.Select(nfd, r, w, ex, timeout)
	}

	requested := timeconv.FromTimeval(*timeout)
	if requested <= 0 {
		return e.real.Select(nfd, r, w, ex, timeout)
	}

	scaled := timeconv.ToTimeval(e.scaleIn(requested))
	n, err := e.real.Select(nfd, r, w, ex, &scaled)
	*timeout = timeconv.ToTimeval(e.scaleOut(timeconv.FromTimeval(scaled)))

	return n, err
}

// Pselect waits on descriptor sets for up to the requested virtual timeout.
// Unlike Select, the timeout is never written back.
func (e *Engine) Pselect(nfd int, r, w, ex *unix.FdSet, timeout *unix.Timespec, sigmask *unix.Sigset_t) (int, error) {
	if e.real.Pselect == nil {
		return 0, platform.Unresolved("pselect")
	}
	e.trace("pselect")

	if !e.enabled(hooks.Pselect) || timeout == nil {
		return e.real.Pselect(nfd, r, w, ex, timeout, sigmask)
	}

	requested := timeconv.FromTimespec(*timeout)
	if requested <= 0 {
		return e.real.Pselect(nfd, r, w, ex, timeout, sigmask)
	}

	scaled := timeconv.ToTimespec(e.scaleIn(requested))

	return e.real.Pselect(nfd, r, w, ex, &scaled, sigmask)
}

// Poll waits on a descriptor list for up to the requested virtual timeout
// in milliseconds. A negative timeout waits forever and passes through.
func (e *Engine) Poll(fds []unix.PollFd, timeoutMsec int) (int, error) {
	if e.real.Poll == nil {
		return 0, platform.Unresolved("poll")
	}
	e.trace("poll")

	if !e.enabled(hooks.Poll) {
		return e.real.Poll(fds, timeoutMsec)
	}

	return e.real.Poll(fds, timeconv.ScaleMillis(timeoutMsec, e.cfg.Scale))
}

// Ppoll waits on a descriptor list for up to the requested virtual timeout.
// A nil timeout waits forever and passes through.
func (e *Engine) Ppoll(fds []unix.PollFd, timeout *unix.Timespec, sigmask *unix.Sigset_t) (int, error) {
	if e.real.Ppoll == nil {
		return 0, platform.Unresolved("ppoll")
	}
	e.trace("ppoll")

	if !e.enabled(hooks.Ppoll) || timeout == nil {
		return e.real.Ppoll(fds, timeout, sigmask)
	}

	requested := timeconv.FromTimespec(*timeout)
	if requested <= 0 {
		return e.real.Ppoll(fds, timeout, sigmask)
	}

	scaled := timeconv.ToTimespec(e.scaleIn(requested))

	return e.real.Ppoll(fds, &scaled, sigmask)
}

// EpollWait waits on a multiplexed event set for up to the requested
// virtual timeout in milliseconds.
func (e *Engine) EpollWait(epfd int, events []unix.EpollEvent, msec int) (int, error) {
	if e.real.EpollWait == nil {
		return 0, platform.Unresolved("epoll_wait")
	}
	e.trace("epoll_wait")

	if !e.enabled(hooks.EpollWait) {
		return e.real.EpollWait(epfd, events, msec)
	}

	return e.real.EpollWait(epfd, events, timeconv.ScaleMillis(msec, e.cfg.Scale))
}

// EpollPwait waits on a multiplexed event set with a signal mask for up to
// the requested virtual timeout in milliseconds.
func (e *Engine) EpollPwait(epfd int, events []unix.EpollEvent, msec int, sigmask *unix.Sigset_t) (int, error) {
	if e.real.EpollPwait == nil {
		return 0, platform.Unresolved("epoll_pwait")
	}
	e.trace("epoll_pwait")

	if !e.enabled(hooks.EpollPwait) {
		return e.real.EpollPwait(epfd, events, msec, sigmask)
	}

	return e.real.EpollPwait(epfd, events, timeconv.ScaleMillis(msec, e.cfg.Scale), sigmask)
}
