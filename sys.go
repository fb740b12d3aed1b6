package timerfd

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Thin wrappers around the three timerfd syscalls. They never panic;
// failure surfaces the errno captured at the call site, untranslated.

// TimerfdCreate creates a new timer descriptor on the given clock.
// man 2 timerfd_create
func TimerfdCreate(clockID ClockID, flags Flags) (int, error) {
	fd, _, errno := unix.Syscall(unix.SYS_TIMERFD_CREATE, uintptr(clockID), uintptr(flags), 0)
	if errno != 0 {
		return -1, errno
	}
	return int(fd), nil
}

// TimerfdSettime atomically replaces fd's schedule with newVal. If
// oldVal is not nil it receives the previously armed schedule. A
// newVal whose Value is all-zero disarms the timer.
// man 2 timerfd_settime
func TimerfdSettime(fd int, flags TimerFlags, newVal, oldVal *ItimerSpec) error {
	_, _, errno := unix.Syscall6(unix.SYS_TIMERFD_SETTIME, uintptr(fd), uintptr(flags),
		uintptr(unsafe.Pointer(newVal)), uintptr(unsafe.Pointer(oldVal)), 0, 0)
	if errno != 0 {
		return errno
	}
	return nil
}

// TimerfdGettime stores fd's currently armed schedule in curr without
// modifying it. man 2 timerfd_gettime
func TimerfdGettime(fd int, curr *ItimerSpec) error {
	_, _, errno := unix.Syscall(unix.SYS_TIMERFD_GETTIME, uintptr(fd),
		uintptr(unsafe.Pointer(curr)), 0)
	if errno != 0 {
		return errno
	}
	return nil
}
