package testing

import (
	"sort"
	"sync"
	"time"

	"github.com/desertthunder/playaxis/internal/playback"
)

// FakeScheduler is a manually advanced [playback.Scheduler].
//
// Timers fire only inside [FakeScheduler.Advance], in deadline order, on the
// caller's goroutine, which makes controller tests fully deterministic.
type FakeScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	entries []*fakeTimer
	delays  []time.Duration
}

type fakeTimer struct {
	sched   *FakeScheduler
	at      time.Duration
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

// NewFakeScheduler creates a FakeScheduler at time zero.
func NewFakeScheduler() *FakeScheduler {
	return &FakeScheduler{}
}

// AfterFunc registers fn to fire d past the current fake time.
func (f *FakeScheduler) AfterFunc(d time.Duration, fn func()) playback.Timer {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	t := &fakeTimer{sched: f, at: f.now + d, seq: f.seq, fn: fn}
	f.entries = append(f.entries, t)
	f.delays = append(f.delays, d)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()

	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves the fake clock forward by d, firing due timers in deadline
// order. Callbacks run unlocked so they may schedule new timers (loop
// restarts do exactly that); timers scheduled during Advance fire in the
// same call if they fall due before the target time.
func (f *FakeScheduler) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now + d

	for {
		next := f.nextDueLocked(target)
		if next == nil {
			break
		}

		f.now = next.at
		next.fired = true
		f.mu.Unlock()
		next.fn()
		f.mu.Lock()
	}

	f.now = target
	f.mu.Unlock()
}

// nextDueLocked returns the earliest live timer with a deadline at or before
// target, ties broken by scheduling order.
func (f *FakeScheduler) nextDueLocked(target time.Duration) *fakeTimer {
	var due []*fakeTimer
	for _, t := range f.entries {
		if !t.fired && !t.stopped && t.at <= target {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	return due[0]
}

// Pending returns the number of live timers.
func (f *FakeScheduler) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	count := 0
	for _, t := range f.entries {
		if !t.fired && !t.stopped {
			count++
		}
	}
	return count
}

// ScheduledDelays returns the delay of every AfterFunc call ever made, in
// call order, fired or not.
func (f *FakeScheduler) ScheduledDelays() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Duration(nil), f.delays...)
}

// Now returns the current fake time.
func (f *FakeScheduler) Now() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}
