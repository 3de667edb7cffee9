// Package timing provides debounce and throttle wrappers for UI event handlers.
//
// Every wrapper owns its own timer and lock; wrappers never share state.
// Wrapped functions run on the clock's goroutine, so they must be safe to
// call from a goroutine other than the one that called Call.
package timing

import "time"

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	// Stop reports whether the callback was prevented from running.
	Stop() bool
}

// Clock schedules deferred calls.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealClock schedules with the time package.
type RealClock struct{}

// AfterFunc wraps time.AfterFunc.
func (RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type options struct {
	clock Clock
}

// Option configures a Debouncer or Throttler.
type Option func(*options)

// WithClock replaces the real clock, mainly for tests.
func WithClock(c Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

func buildOptions(opts []Option) options {
	o := options{clock: RealClock{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
