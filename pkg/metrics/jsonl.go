package metrics

import (
	"context"
	"io"
	"log/slog"
)

// JSONLObserver writes one JSON line per call, giving operators an
// append-only audit trail of ledger operations.
type JSONLObserver struct {
	logger *slog.Logger
}

func NewJSONLObserver(w io.Writer) *JSONLObserver {
	if w == nil {
		return &JSONLObserver{logger: slog.New(slog.NewJSONHandler(io.Discard, nil))}
	}
	return &JSONLObserver{logger: slog.New(slog.NewJSONHandler(w, nil))}
}

func (o *JSONLObserver) RecordCall(ev CallEvent) {
	o.logger.LogAttrs(context.TODO(), slog.LevelInfo, "ledger_call",
		slog.String("operation", ev.Operation),
		slog.String("mode", ev.Mode),
		slog.String("outcome", ev.Outcome),
		slog.Time("time", ev.Time),
		slog.Duration("duration", ev.Duration),
	)
}
