package model

import "time"

// Scheduler defers a step of a running simulation.
type Scheduler interface {
	// After runs fn once delay has elapsed, or immediately when delay <= 0.
	After(delay time.Duration, fn func())
}

// TimerScheduler runs deferred steps on runtime timers.
type TimerScheduler struct{}

func (TimerScheduler) After(delay time.Duration, fn func()) {
	if delay <= 0 {
		fn()
		return
	}
	time.AfterFunc(delay, fn)
}
