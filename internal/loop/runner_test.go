package loop

import (
	"context"
	"testing"
	"time"
)

func TestRunnerDeliversRequestedTicks(t *testing.T) {
	r := NewRunner(1000)

	count := 0
	var tick func()
	tick = func() {
		count++
		if count == 5 {
			r.Stop()
			return
		}
		r.RequestTick(tick)
	}
	r.RequestTick(tick)

	errc := make(chan error, 1)
	go func() { errc <- r.Run(context.Background()) }()

	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not stop")
	}

	if count != 5 {
		t.Errorf("ticks = %d, want 5", count)
	}
	if r.Frames() != 5 {
		t.Errorf("frames = %d, want 5", r.Frames())
	}
}

func TestRunnerIdleWithoutRequest(t *testing.T) {
	r := NewRunner(1000)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := r.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if r.Frames() != 0 {
		t.Errorf("frames = %d, want 0 without a request", r.Frames())
	}
	if r.Do(func() {}) {
		t.Error("Do should fail after the runner stopped")
	}
}

func TestRunnerDoRunsOnLoop(t *testing.T) {
	r := NewRunner(1000)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- r.Run(ctx) }()

	ran := make(chan struct{})
	if !r.Do(func() { close(ran) }) {
		t.Fatal("Do rejected while running")
	}
	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("queued function never ran")
	}

	cancel()
	select {
	case <-errc:
	case <-time.After(time.Second):
		t.Fatal("runner ignored context cancellation")
	}
	select {
	case <-r.Done():
	default:
		t.Error("Done should be closed")
	}
}

func TestRunnerDefaultRate(t *testing.T) {
	if r := NewRunner(0); r.interval != time.Second/60 {
		t.Errorf("interval = %v, want 1/60s", r.interval)
	}
}
