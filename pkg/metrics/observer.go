package metrics

import "time"

// CallEvent describes one completed dispatch: the operation, the backend
// mode it ran under, the outcome ("ok" on success, otherwise the error
// kind), and how long the handler took.
type CallEvent struct {
	Operation string
	Mode      string
	Outcome   string
	Duration  time.Duration
	Time      time.Time
}

type Observer interface {
	RecordCall(ev CallEvent)
}

type Flusher interface {
	Flush() error
}

type NoopObserver struct{}

func (NoopObserver) RecordCall(CallEvent) {}
