// Package tools defines the operation catalog: one schema and one
// handler per ledger operation, registered against the shared registry
// at startup.
package tools

import (
	"fmt"

	"github.com/hashgraph-labs/ledgerkit/pkg/ledger"
	"github.com/hashgraph-labs/ledgerkit/pkg/registry"
	"github.com/hashgraph-labs/ledgerkit/pkg/schema"
)

// RegisterAll installs the full catalog in a stable order: accounts,
// then tokens, then consensus. Registration failures are startup-fatal
// for the caller.
func RegisterAll(reg *registry.Registry) error {
	groups := [][]registry.Entry{
		accountEntries(),
		tokenEntries(),
		consensusEntries(),
	}
	for _, group := range groups {
		for _, e := range group {
			if err := reg.Register(e); err != nil {
				return err
			}
		}
	}
	return nil
}

// entityArg reads a field already validated as a well-formed entity id.
func entityArg(in schema.Values, name string) ledger.EntityID {
	return ledger.MustEntityID(in.String(name))
}

// optionalEntity returns the zero id when the field is absent, which
// clients interpret as "use the operator".
func optionalEntity(in schema.Values, name string) ledger.EntityID {
	if !in.Has(name) {
		return ledger.EntityID{}
	}
	return ledger.MustEntityID(in.String(name))
}

func hbarArg(in schema.Values, name string) (ledger.Hbar, error) {
	amount, err := ledger.HbarFromFloat(in.Float(name))
	if err != nil {
		return 0, fmt.Errorf("field %q: %w", name, err)
	}
	return amount, nil
}

func entityField(name, description string, required bool) schema.FieldSpec {
	return schema.FieldSpec{
		Name:        name,
		Type:        schema.TypeString,
		Description: description,
		Required:    required,
		EntityID:    true,
	}
}
