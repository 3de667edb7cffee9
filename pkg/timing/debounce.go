package timing

import (
	"sync"
	"time"

	"github.com/fruitsalade/fruitsalade/webutil/internal/metrics"
)

// Debouncer delays calls to fn until wait has passed with no new call.
// Only the most recent argument reaches fn.
type Debouncer[T any] struct {
	fn    func(T)
	wait  time.Duration
	clock Clock

	mu      sync.Mutex
	timer   Timer
	pending bool
	arg     T
	gen     uint64
}

// Debounce wraps fn.
func Debounce[T any](fn func(T), wait time.Duration, opts ...Option) *Debouncer[T] {
	o := buildOptions(opts)
	return &Debouncer[T]{fn: fn, wait: wait, clock: o.clock}
}

// Call supersedes any pending call and schedules fn(arg) after the wait.
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.arg = arg
	d.pending = true
	d.gen++
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.wait, func() { d.fire(gen) })
}

// Pending reports whether a call is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Cancel drops the pending call, if any.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.pending {
		return
	}
	d.reset()
	metrics.RecordTiming("debounce", "cancelled")
}

// Flush runs the pending call now instead of waiting.
func (d *Debouncer[T]) Flush() {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return
	}
	arg := d.arg
	d.reset()
	d.mu.Unlock()

	metrics.RecordTiming("debounce", "fired")
	d.fn(arg)
}

func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	// A timer that lost the race with Stop must not run a superseded call.
	if gen != d.gen || !d.pending {
		d.mu.Unlock()
		return
	}
	arg := d.arg
	d.pending = false
	d.timer = nil
	var zero T
	d.arg = zero
	d.mu.Unlock()

	metrics.RecordTiming("debounce", "fired")
	d.fn(arg)
}

// reset must be called with d.mu held.
func (d *Debouncer[T]) reset() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	var zero T
	d.arg = zero
	d.pending = false
	d.gen++
}
