package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashgraph-labs/ledgerkit/pkg/ledger"
	"github.com/hashgraph-labs/ledgerkit/pkg/operr"
	"github.com/hashgraph-labs/ledgerkit/pkg/schema"
)

// Result is the success payload of one operation: named result fields
// plus a summary string suitable for direct display.
type Result struct {
	Summary string         `json:"summary"`
	Fields  map[string]any `json:"fields,omitempty"`
}

// Handler implements one operation against whichever backend is active.
type Handler func(ctx context.Context, in schema.Values, client ledger.Client) (Result, error)

// Entry pairs an operation name with its schema and handler. Entries are
// created at startup registration and never mutated.
type Entry struct {
	Name        string
	Description string
	Schema      *schema.Schema
	Handler     Handler
}

// Registry owns the name to entry mapping. It is an explicitly
// constructed value injected into the dispatcher, so independent
// registries can coexist in tests.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
	order   []string
}

func New() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds an entry, rejecting duplicates: registering the same
// operation name twice is a startup bug, not an override request. Use
// Replace for a deliberate override.
func (r *Registry) Register(e Entry) error {
	if err := validateEntry(e); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[e.Name]; exists {
		return operr.New(operr.KindDuplicateOperation, e.Name, "operation already registered")
	}
	r.entries[e.Name] = e
	r.order = append(r.order, e.Name)
	return nil
}

// Replace is the explicit override opt-in. It swaps the entry in place,
// keeping the original registration-order position, and fails if the
// name was never registered.
func (r *Registry) Replace(e Entry) error {
	if err := validateEntry(e); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[e.Name]; !exists {
		return operr.New(operr.KindUnknownOperation, e.Name, "cannot replace unregistered operation")
	}
	r.entries[e.Name] = e
	return nil
}

// Lookup returns the entry for an operation name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e, ok
}

// List returns all entries in registration order. Repeated calls yield
// the same sequence.
func (r *Registry) List() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entries[name])
	}
	return out
}

// Names returns the registered operation names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered operations.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

func validateEntry(e Entry) error {
	if e.Name == "" {
		return fmt.Errorf("operation name must not be empty")
	}
	if e.Schema == nil || e.Handler == nil {
		return fmt.Errorf("%s: entry needs both schema and handler", e.Name)
	}
	if e.Schema.Operation() != e.Name {
		return fmt.Errorf("%s: schema defined for %q does not match entry name", e.Name, e.Schema.Operation())
	}
	return nil
}
