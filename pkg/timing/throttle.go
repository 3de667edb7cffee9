package timing

import (
	"sync"
	"time"

	"github.com/fruitsalade/fruitsalade/webutil/internal/metrics"
)

// Throttler lets at most one call through per interval. The first call of
// each interval runs immediately; calls during the cooldown are dropped.
type Throttler[T any] struct {
	fn    func(T)
	limit time.Duration
	clock Clock

	mu      sync.Mutex
	cooling bool
	timer   Timer
}

// Throttle wraps fn.
func Throttle[T any](fn func(T), limit time.Duration, opts ...Option) *Throttler[T] {
	o := buildOptions(opts)
	return &Throttler[T]{fn: fn, limit: limit, clock: o.clock}
}

// Call runs fn(arg) unless the throttler is cooling down. It reports whether
// fn ran.
func (t *Throttler[T]) Call(arg T) bool {
	t.mu.Lock()
	if t.cooling {
		t.mu.Unlock()
		metrics.RecordTiming("throttle", "dropped")
		return false
	}
	t.cooling = true
	t.timer = t.clock.AfterFunc(t.limit, t.release)
	t.mu.Unlock()

	metrics.RecordTiming("throttle", "passed")
	t.fn(arg)
	return true
}

// Cooling reports whether calls are currently being dropped.
func (t *Throttler[T]) Cooling() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cooling
}

func (t *Throttler[T]) release() {
	t.mu.Lock()
	t.cooling = false
	t.timer = nil
	t.mu.Unlock()
}
