package metrics

import "sync"

// MemoryObserver collects events in memory for tests.
type MemoryObserver struct {
	mu     sync.Mutex
	events []CallEvent
}

func NewMemoryObserver() *MemoryObserver {
	return &MemoryObserver{}
}

func (m *MemoryObserver) RecordCall(ev CallEvent) {
	m.mu.Lock()
	m.events = append(m.events, ev)
	m.mu.Unlock()
}

// Events returns a snapshot of recorded events.
func (m *MemoryObserver) Events() []CallEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]CallEvent, len(m.events))
	copy(out, m.events)
	return out
}

// Count returns the number of recorded events matching outcome; an empty
// outcome matches everything.
func (m *MemoryObserver) Count(outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if outcome == "" {
		return len(m.events)
	}
	n := 0
	for _, ev := range m.events {
		if ev.Outcome == outcome {
			n++
		}
	}
	return n
}
