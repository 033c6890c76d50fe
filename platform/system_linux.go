package platform

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	microsPerSecond = 1_000_000

	// Size in bytes of the kernel sigset_t (_NSIG / 8), passed to syscalls
	// that take a signal mask.
	kernelSigsetSize = 8
)

// System resolves every catalog entry against the running kernel. Entries
// without a dedicated wrapper in x/sys/unix (futex, epoll_pwait) are bound
// to raw syscalls; entries the kernel only offers through richer primitives
// (sleep, usleep, ualarm) are synthesized from those primitives the same
// way libc does.
func System() Table {
	return Table{
		Alarm:          unix.Alarm,
		Clock:          systemClock,
		ClockGettime:   unix.ClockGettime,
		ClockNanosleep: unix.ClockNanosleep,
		EpollPwait:     systemEpollPwait,
		EpollWait:      unix.EpollWait,
		Futex:          systemFutex,
		Getitimer:      systemGetitimer,
		Gettimeofday:   unix.Gettimeofday,
		Nanosleep:      unix.Nanosleep,
		Poll:           unix.Poll,
		Ppoll:          unix.Ppoll,
		Pselect:        unix.Pselect,
		Select:         unix.Select,
		Setitimer:      systemSetitimer,
		Sleep:          systemSleep,
		Time:           systemTime,
		Ualarm:         systemUalarm,
		Usleep:         systemUsleep,
	}
}

func systemTime() (int64, error) {
	var t unix.Time_t
	now, err := unix.Time(&t)

	return int64(now), err
}

// systemClock reads the elapsed-CPU tick counter: user plus system time of
// the calling process, in CLK_TCK ticks.
func systemClock() (int64, error) {
	var tms unix.Tms
	if _, err := unix.Times(&tms); err != nil {
		return 0, err
	}

	return int64(tms.Utime) + int64(tms.Stime), nil
}

func systemGetitimer(which int, value *unix.Itimerval) error {
	it, err := unix.Getitimer(unix.ItimerWhich(which))
	if err != nil {
		return err
	}
	if value != nil {
		*value = it
	}

	return nil
}

func systemSetitimer(which int, value unix.Itimerval) (unix.Itimerval, error) {
	return unix.Setitimer(unix.ItimerWhich(which), value)
}

func systemSleep(seconds uint) (uint, error) {
	req := unix.Timespec{Sec: int64(seconds)}

	var rem unix.Timespec
	if err := unix.Nanosleep(&req, &rem); err != nil {
		if err == unix.EINTR {
			return uint(rem.Sec), nil
		}

		return 0, err
	}

	return 0, nil
}

func systemUsleep(usec uint32) error {
	req := unix.Timespec{
		Sec:  int64(usec / microsPerSecond),
		Nsec: int64(usec%microsPerSecond) * 1000,
	}

	return unix.Nanosleep(&req, nil)
}

func systemUalarm(usecs, interval uint32) (uint32, error) {
	value := unix.Itimerval{
		Value:    usecToTimeval(usecs),
		Interval: usecToTimeval(interval),
	}
	old, err := unix.Setitimer(unix.ItimerReal, value)
	if err != nil {
		return 0, err
	}

	return uint32(old.Value.Sec*microsPerSecond + old.Value.Usec), nil
}

func usecToTimeval(usec uint32) unix.Timeval {
	return unix.Timeval{
		Sec:  int64(usec / microsPerSecond),
		Usec: int64(usec % microsPerSecond),
	}
}

func systemFutex(uaddr *int32, op int, val int32, timeout *unix.Timespec, uaddr2 *int32, val3 int32) (int, error) {
	ret, _, errno := unix.Syscall6(unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(uaddr)),
		uintptr(op),
		uintptr(val),
		uintptr(unsafe.Pointer(timeout)),
		uintptr(unsafe.Pointer(uaddr2)),
		uintptr(val3),
	)
	if errno != 0 {
		return int(ret), errno
	}

	return int(ret), nil
}

func systemEpollPwait(epfd int, events []unix.EpollEvent, msec int, sigmask *unix.Sigset_t) (int, error) {
	var evp unsafe.Pointer
	if len(events) > 0 {
		evp = unsafe.Pointer(&events[0])
	}

	ret, _, errno := unix.Syscall6(unix.SYS_EPOLL_PWAIT,
		uintptr(epfd),
		uintptr(evp),
		uintptr(len(events)),
		uintptr(msec),
		uintptr(unsafe.Pointer(sigmask)),
		kernelSigsetSize,
	)
	if errno != 0 {
		return int(ret), errno
	}

	return int(ret), nil
}
