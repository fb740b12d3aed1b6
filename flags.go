package timerfd

import "golang.org/x/sys/unix"

// ClockID selects the clock that drives a timer.
type ClockID int

const (
	// ClockRealtime is the settable system-wide wall clock
	ClockRealtime ClockID = unix.CLOCK_REALTIME

	// ClockMonotonic is not affected by discontinuous changes in the
	// system clock
	ClockMonotonic ClockID = unix.CLOCK_MONOTONIC
)

// Flags for TimerfdCreate. The zero value is the default: blocking
// reads, descriptor inherited across exec.
type Flags int

const (
	// Cloexec sets close-on-exec on the new descriptor
	Cloexec Flags = unix.TFD_CLOEXEC

	// Nonblock puts the descriptor in non-blocking mode
	Nonblock Flags = unix.TFD_NONBLOCK
)

// Has reports whether every bit of x is set in f.
func (f Flags) Has(x Flags) bool { return f&x == x }

// TimerFlags for TimerfdSettime. The zero value arms a relative timer.
type TimerFlags int

const (
	// Abstime interprets the schedule's initial expiration as an
	// absolute time on the timer's clock
	Abstime TimerFlags = unix.TFD_TIMER_ABSTIME
)

// Has reports whether every bit of x is set in f.
func (f TimerFlags) Has(x TimerFlags) bool { return f&x == x }
