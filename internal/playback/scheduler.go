package playback

import "time"

// Timer is a cancellable fire-once timer handle.
type Timer interface {
	// Stop prevents the timer from firing, reporting whether it was stopped
	// before it fired.
	Stop() bool
}

// Scheduler creates fire-once timers. The production implementation wraps
// [time.AfterFunc]; tests substitute a manually advanced fake.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// NewScheduler returns the wall-clock [Scheduler].
func NewScheduler() Scheduler {
	return realScheduler{}
}
