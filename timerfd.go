// Package timerfd exposes the Linux timerfd facility: kernel timers
// whose expirations are delivered as a counter readable from a file
// descriptor, so they plug into epoll like any other fd.
package timerfd

import (
	"runtime"
	"sync/atomic"
	"syscall"
	"unsafe"
)

// Expiration counter width, man 2 timerfd_create
const timerfdDataSize = 8

// TimerFd owns exactly one live timer descriptor. It must not be
// copied (go vet flags copies); pass it by pointer. If several owners
// are needed, wrap it externally, the handle itself does no reference
// counting and no locking.
type TimerFd struct {
	noCopy

	fd        int
	closeOnce atomic.Int32 // used to avoid duplicate close
}

// Detecting illegal struct copies using `go vet`
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// New creates a timer on clockID with default (empty) creation flags.
func New(clockID ClockID) (*TimerFd, error) {
	return NewWithFlags(clockID, 0)
}

// NewWithFlags creates a timer with explicit creation flags. On
// failure the OS error is returned unmodified.
func NewWithFlags(clockID ClockID, flags Flags) (*TimerFd, error) {
	fd, err := TimerfdCreate(clockID, flags)
	if err != nil {
		return nil, err
	}
	t := &TimerFd{fd: fd}
	// last-resort release for handles dropped without Close
	runtime.SetFinalizer(t, (*TimerFd).finalize)
	return t, nil
}

// SetTime arms the timer with a relative deadline, or disarms it if
// newVal.Value is all-zero. If oldVal is not nil it receives the
// previously armed schedule.
func (t *TimerFd) SetTime(newVal, oldVal *ItimerSpec) error {
	return t.SetTimeWithFlags(0, newVal, oldVal)
}

// SetTimeWithFlags arms the timer with explicit arm flags, e.g.
// Abstime for an absolute deadline.
func (t *TimerFd) SetTimeWithFlags(flags TimerFlags, newVal, oldVal *ItimerSpec) error {
	return TimerfdSettime(t.fd, flags, newVal, oldVal)
}

// GetTime stores the currently armed schedule in curr. The timer is
// not modified.
func (t *TimerFd) GetTime(curr *ItimerSpec) error {
	return TimerfdGettime(t.fd, curr)
}

// Read returns the number of expirations since the schedule was last
// set or read, and resets the kernel-side counter.
//
// ok reports whether a count was delivered this call: on a descriptor
// created with Nonblock, (0, false, nil) means nothing has expired
// yet. Without Nonblock, Read blocks the calling goroutine until the
// next expiration. Any other OS error is returned unchanged.
//
// Drive a handle as a sequence by looping:
//
//	for {
//		n, ok, err := t.Read()
//		...
//	}
func (t *TimerFd) Read() (uint64, bool, error) {
	var buf [timerfdDataSize]byte // zeroed, nothing depends on the kernel filling it
	for {
		n, err := syscall.Read(t.fd, buf[:])
		if err != nil {
			if err == syscall.EINTR {
				continue
			}
			if err == syscall.EAGAIN {
				return 0, false, nil
			}
			return 0, false, err
		}
		if n != timerfdDataSize {
			// the kernel always delivers the full counter
			panic("timerfd: short read")
		}
		return *(*uint64)(unsafe.Pointer(&buf[0])), true, nil
	}
}

// Fd returns the underlying descriptor, for registration with epoll
// or any other readiness facility. Ownership stays with the TimerFd.
func (t *TimerFd) Fd() int {
	return t.fd
}

// Close releases the descriptor. Only the first call closes; later
// calls return nil, the descriptor is never closed twice.
func (t *TimerFd) Close() error {
	if !t.closeOnce.CompareAndSwap(0, 1) {
		return nil
	}
	runtime.SetFinalizer(t, nil)
	err := syscall.Close(t.fd)
	t.fd = -1
	return err
}

func (t *TimerFd) finalize() {
	_ = t.Close()
}
