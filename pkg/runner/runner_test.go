package runner

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeDrainer struct {
	delay time.Duration
	err   error
	calls int
}

func (d *fakeDrainer) Drain() error {
	d.calls++
	time.Sleep(d.delay)
	return d.err
}

func TestRunDrainsOnCancel(t *testing.T) {
	drainer := &fakeDrainer{}
	var started, stopped bool
	r := NewLifecycleRunner(drainer, Hooks{
		OnStart: func() { started = true },
		OnStop:  func() { stopped = true },
	}, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	deadline := time.Now().Add(time.Second)
	for r.State() != StateRunning {
		if time.Now().After(deadline) {
			t.Fatal("runner never reached running state")
		}
		time.Sleep(time.Millisecond)
	}
	cancel()

	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !started || !stopped {
		t.Fatalf("hooks: started=%v stopped=%v", started, stopped)
	}
	if drainer.calls != 1 {
		t.Fatalf("drain calls = %d, want 1", drainer.calls)
	}
	if r.State() != StateStopped {
		t.Fatalf("state = %v, want stopped", r.State())
	}
}

func TestRunSurfacesDrainError(t *testing.T) {
	drainer := &fakeDrainer{err: errors.New("flush failed")}
	r := NewLifecycleRunner(drainer, Hooks{}, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.Run(ctx); err == nil || !errors.Is(err, drainer.err) {
		t.Fatalf("Run = %v, want wrapped drain error", err)
	}
}

func TestRunReportsDrainTimeout(t *testing.T) {
	drainer := &fakeDrainer{delay: 200 * time.Millisecond}
	r := NewLifecycleRunner(drainer, Hooks{}, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.Run(ctx); err == nil {
		t.Fatal("Run should report drain timeout")
	}
}

func TestRunTwiceFails(t *testing.T) {
	r := NewLifecycleRunner(nil, Hooks{}, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.Run(ctx); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	if err := r.Run(context.Background()); err == nil {
		t.Fatal("second Run should fail")
	}
}
