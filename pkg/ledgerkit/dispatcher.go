package ledgerkit

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/hashgraph-labs/ledgerkit/pkg/ledger"
	"github.com/hashgraph-labs/ledgerkit/pkg/logging"
	"github.com/hashgraph-labs/ledgerkit/pkg/metrics"
	"github.com/hashgraph-labs/ledgerkit/pkg/operr"
	"github.com/hashgraph-labs/ledgerkit/pkg/registry"
	"github.com/hashgraph-labs/ledgerkit/pkg/schema"
)

// CallResult is the normalized success envelope every operation
// resolves to, regardless of backend.
type CallResult struct {
	Operation string
	Mode      Mode
	Summary   string
	Fields    map[string]any
	Duration  time.Duration
}

type DispatcherOptions struct {
	Concurrency int
	Timeout     time.Duration
	Observer    metrics.Observer
	Logger      *slog.Logger
}

// Dispatcher routes named calls through the registry to the resolved
// backend. Lookup and validation failures never reach a handler; every
// handler failure is normalized to an operr kind.
type Dispatcher struct {
	registry *registry.Registry
	backend  *Backend
	timeout  time.Duration
	sem      chan struct{}
	observer metrics.Observer
	logger   *slog.Logger
}

func NewDispatcher(reg *registry.Registry, backend *Backend, opts DispatcherOptions) *Dispatcher {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	if opts.Observer == nil {
		opts.Observer = metrics.NoopObserver{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		registry: reg,
		backend:  backend,
		timeout:  opts.Timeout,
		sem:      make(chan struct{}, opts.Concurrency),
		observer: opts.Observer,
		logger:   logging.NewComponentLogger(logger, "dispatcher"),
	}
}

func (d *Dispatcher) Backend() *Backend { return d.backend }

func (d *Dispatcher) Registry() *registry.Registry { return d.registry }

// Call executes one named operation. The returned error, when non-nil,
// is always an *operr.Error carrying one of the fixed kinds.
func (d *Dispatcher) Call(ctx context.Context, operation string, args map[string]any) (CallResult, *operr.Error) {
	start := time.Now()
	res, cerr := d.call(ctx, operation, args)
	elapsed := time.Since(start)

	outcome := "ok"
	if cerr != nil {
		outcome = string(cerr.Kind)
	}
	d.observer.RecordCall(metrics.CallEvent{
		Operation: operation,
		Mode:      string(d.backend.Mode()),
		Outcome:   outcome,
		Duration:  elapsed,
		Time:      start,
	})

	if cerr != nil {
		d.logger.Warn("call_failed",
			slog.String("operation", operation),
			slog.String("mode", string(d.backend.Mode())),
			slog.String("kind", string(cerr.Kind)),
			slog.String("error", cerr.Error()),
			slog.Duration("duration", elapsed))
		return CallResult{}, cerr
	}
	d.logger.Info("call_ok",
		slog.String("operation", operation),
		slog.String("mode", string(d.backend.Mode())),
		slog.Duration("duration", elapsed))
	res.Duration = elapsed
	return res, nil
}

func (d *Dispatcher) call(ctx context.Context, operation string, args map[string]any) (CallResult, *operr.Error) {
	entry, ok := d.registry.Lookup(operation)
	if !ok {
		return CallResult{}, operr.New(operr.KindUnknownOperation, operation,
			"unknown operation %q", operation).
			WithDetail("known_operations", d.registry.Names())
	}

	if args == nil {
		args = map[string]any{}
	}
	values, err := entry.Schema.Validate(args)
	if err != nil {
		verr := operr.New(operr.KindInvalidInput, operation, "invalid input: %v", err)
		var fe *schema.FieldError
		if errors.As(err, &fe) && fe.Field != "" {
			verr = verr.WithDetail("field", fe.Field)
		}
		return CallResult{}, verr
	}

	select {
	case d.sem <- struct{}{}:
		defer func() { <-d.sem }()
	case <-ctx.Done():
		return CallResult{}, d.normalize(operation, ctx.Err())
	}

	out, err := d.invoke(ctx, entry, values)
	if err != nil {
		return CallResult{}, d.normalize(operation, err)
	}
	return CallResult{
		Operation: operation,
		Mode:      d.backend.Mode(),
		Summary:   out.Summary,
		Fields:    out.Fields,
	}, nil
}

var errHandlerPanic = errors.New("handler panic")

// invoke runs the handler with the configured timeout. The handler goroutine
// keeps the backend client's context so a timed-out call cannot commit
// later: the clients check cancellation before any state change.
func (d *Dispatcher) invoke(ctx context.Context, entry registry.Entry, values schema.Values) (registry.Result, error) {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	type outcome struct {
		res registry.Result
		err error
	}
	ch := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				d.logger.Error("handler_panic",
					slog.String("operation", entry.Name),
					slog.Any("panic", r))
				ch <- outcome{err: errHandlerPanic}
			}
		}()
		res, err := entry.Handler(ctx, values, d.backend.Client())
		ch <- outcome{res: res, err: err}
	}()

	select {
	case out := <-ch:
		return out.res, out.err
	case <-ctx.Done():
		return registry.Result{}, ctx.Err()
	}
}

// normalize maps a raw handler or context error onto the error taxonomy.
// Handlers may return kinded errors directly; those pass through as-is.
func (d *Dispatcher) normalize(operation string, err error) *operr.Error {
	if oe, ok := operr.As(err); ok {
		return oe
	}
	kind := operr.KindBackendUnavailable
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		kind = operr.KindTimeout
	case ledger.IsRejection(err):
		kind = operr.KindBackendRejected
	}
	return &operr.Error{Kind: kind, Op: operation, Err: err}
}
