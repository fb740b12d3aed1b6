package timerfd

import (
	"syscall"
	"time"
	"unsafe"
)

// ItimerSpec is the schedule armed on a timer descriptor, laid out
// exactly as the kernel's struct itimerspec: the recurrence interval
// first, then the initial expiration. Refer to man 2 timerfd_settime
//
// An all-zero Interval means fire once; an all-zero Value disarms.
// ItimerSpec is a plain value, copy it freely.
type ItimerSpec struct {
	Interval syscall.Timespec
	Value    syscall.Timespec
}

// The kernel reads the struct positionally, 32 bytes / 8-byte aligned
// on 64-bit linux. Compile fails here if the layout drifts.
var (
	_ [unsafe.Sizeof(ItimerSpec{}) - 32]byte
	_ [32 - unsafe.Sizeof(ItimerSpec{})]byte
	_ [unsafe.Alignof(ItimerSpec{}) - 8]byte
	_ [8 - unsafe.Alignof(ItimerSpec{})]byte
)

// NewItimerSpec builds a schedule from two durations: fire after
// value, then every interval.
func NewItimerSpec(interval, value time.Duration) ItimerSpec {
	return ItimerSpec{
		Interval: syscall.NsecToTimespec(interval.Nanoseconds()),
		Value:    syscall.NsecToTimespec(value.Nanoseconds()),
	}
}

// Seconds is a one-shot schedule expiring after v seconds.
func Seconds(v int64) ItimerSpec {
	return ItimerSpec{Value: syscall.Timespec{Sec: v}}
}

// Nanoseconds is a one-shot schedule expiring after v nanoseconds.
// v may exceed one second, it is folded into the (sec, nsec) split.
func Nanoseconds(v int64) ItimerSpec {
	return ItimerSpec{Value: syscall.NsecToTimespec(v)}
}

// FromDuration is a one-shot schedule expiring after d.
func FromDuration(d time.Duration) ItimerSpec {
	return Nanoseconds(d.Nanoseconds())
}

// WithIntervalSeconds returns a copy that keeps the first deadline and
// repeats every v seconds after it.
func (its ItimerSpec) WithIntervalSeconds(v int64) ItimerSpec {
	its.Interval = syscall.Timespec{Sec: v}
	return its
}

// WithIntervalNanoseconds returns a copy that keeps the first deadline
// and repeats every v nanoseconds after it.
func (its ItimerSpec) WithIntervalNanoseconds(v int64) ItimerSpec {
	its.Interval = syscall.NsecToTimespec(v)
	return its
}
