// Package runner owns process lifecycle: startup banner, run-until-
// signalled, and bounded draining of in-flight work on shutdown.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dimiro1/banner"
)

type State int32

const (
	StateNew State = iota
	StateStarting
	StateRunning
	StateDraining
	StateStopped
)

// Drainer flushes buffered work before the process exits. Observers
// with async buffers are the typical implementation.
type Drainer interface {
	Drain() error
}

type Hooks struct {
	OnStart func()
	OnStop  func()
}

const Version = "dev"

func PrintBanner() {
	tpl := "{{ .Title \"LEDGERKIT\" \"\" 0 }}\nVersion: " + Version + "\n"
	banner.Init(os.Stdout, true, true, bytes.NewBufferString(tpl))
}

// LifecycleRunner runs until its context is cancelled, then drains
// within the configured timeout. Run may be called once.
type LifecycleRunner struct {
	state        atomic.Int32
	drainer      Drainer
	hooks        Hooks
	drainTimeout time.Duration
	stopOnce     sync.Once
	stopErr      error
}

func NewLifecycleRunner(drainer Drainer, hooks Hooks, drainTimeout time.Duration) *LifecycleRunner {
	if drainTimeout <= 0 {
		drainTimeout = 10 * time.Second
	}
	return &LifecycleRunner{
		drainer:      drainer,
		hooks:        hooks,
		drainTimeout: drainTimeout,
	}
}

func (r *LifecycleRunner) Run(ctx context.Context) error {
	if !r.state.CompareAndSwap(int32(StateNew), int32(StateStarting)) {
		return errors.New("runner already started")
	}
	PrintBanner()
	if r.hooks.OnStart != nil {
		r.hooks.OnStart()
	}
	r.state.Store(int32(StateRunning))
	<-ctx.Done()
	return r.stop()
}

func (r *LifecycleRunner) State() State {
	return State(r.state.Load())
}

func (r *LifecycleRunner) stop() error {
	r.stopOnce.Do(func() {
		r.state.Store(int32(StateDraining))
		r.stopErr = r.drain()
		if r.hooks.OnStop != nil {
			r.hooks.OnStop()
		}
		r.state.Store(int32(StateStopped))
	})
	return r.stopErr
}

func (r *LifecycleRunner) drain() error {
	if r.drainer == nil {
		return nil
	}
	done := make(chan error, 1)
	go func() { done <- r.drainer.Drain() }()
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("drain: %w", err)
		}
		return nil
	case <-time.After(r.drainTimeout):
		return errors.New("drain timed out")
	}
}
