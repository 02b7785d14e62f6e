package utils

import "time"

// Timer is the handle returned by Scheduler.AfterFunc.
type Timer interface {
	Stop() bool
}

// Scheduler abstracts the wall clock so notification lifetimes and delayed
// navigations can be driven deterministically in tests.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemScheduler is backed by the time package.
type SystemScheduler struct{}

func (SystemScheduler) Now() time.Time {
	return time.Now()
}

func (SystemScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
