package timing

import (
	"testing"
	"time"
)

func TestThrottleFirstCallPerWindow(t *testing.T) {
	clock := &manualClock{}
	var at []time.Duration
	var args []int
	th := Throttle(func(n int) {
		at = append(at, clock.Now())
		args = append(args, n)
	}, 100*time.Millisecond, WithClock(clock))

	if !th.Call(1) {
		t.Error("first call should pass")
	}
	clock.Advance(50 * time.Millisecond)
	if th.Call(2) {
		t.Error("call during cooldown should be dropped")
	}
	clock.Advance(100 * time.Millisecond)
	if !th.Call(3) {
		t.Error("call after the interval should pass")
	}

	if len(at) != 2 || at[0] != 0 || at[1] != 150*time.Millisecond {
		t.Errorf("expected calls at [0 150ms], got %v", at)
	}
	if len(args) != 2 || args[0] != 1 || args[1] != 3 {
		t.Errorf("expected args [1 3], got %v", args)
	}
}

func TestThrottleCooling(t *testing.T) {
	clock := &manualClock{}
	th := Throttle(func(string) {}, time.Second, WithClock(clock))

	if th.Cooling() {
		t.Fatal("new throttler should not be cooling")
	}
	th.Call("x")
	if !th.Cooling() {
		t.Error("expected cooldown after a call")
	}
	clock.Advance(999 * time.Millisecond)
	if !th.Cooling() {
		t.Error("expected cooldown to last the full interval")
	}
	clock.Advance(time.Millisecond)
	if th.Cooling() {
		t.Error("expected cooldown to end after the interval")
	}
}

func TestThrottleDropsAreNotQueued(t *testing.T) {
	clock := &manualClock{}
	calls := 0
	th := Throttle(func(int) { calls++ }, 10*time.Millisecond, WithClock(clock))

	for i := 0; i < 5; i++ {
		th.Call(i)
	}
	clock.Advance(time.Second)

	if calls != 1 {
		t.Errorf("expected dropped calls not to run later, got %d calls", calls)
	}
}
