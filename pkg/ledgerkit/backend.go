package ledgerkit

import (
	"fmt"
	"strings"
	"time"

	"github.com/hashgraph-labs/ledgerkit/pkg/ledger"
	"github.com/hashgraph-labs/ledgerkit/pkg/providers/hiero"
	"github.com/hashgraph-labs/ledgerkit/pkg/providers/mock"
)

type Mode string

const (
	ModeMock Mode = "mock"
	ModeLive Mode = "live"
)

var knownNetworks = map[string]bool{
	"mainnet":    true,
	"testnet":    true,
	"previewnet": true,
}

// Backend is the resolved execution target. The mode is decided once,
// when the backend is built, and never changes afterwards.
type Backend struct {
	mode     Mode
	client   ledger.Client
	network  string
	operator ledger.EntityID
	reasons  []string
}

// ResolveBackend picks live when the network, operator id and operator
// key are all well formed, and the mock otherwise. Partial or malformed
// credentials are recorded as fallback reasons, not errors: a missing
// key must degrade to the mock, never crash.
func ResolveBackend(cfg Config) (*Backend, error) {
	var reasons []string

	network := strings.ToLower(strings.TrimSpace(cfg.Network))
	if network == "" {
		reasons = append(reasons, "network not set")
	} else if !knownNetworks[network] {
		reasons = append(reasons, fmt.Sprintf("unknown network %q", network))
	}

	var operator ledger.EntityID
	operatorID := strings.TrimSpace(cfg.OperatorID)
	if operatorID == "" {
		reasons = append(reasons, "operator id not set")
	} else {
		var err error
		operator, err = ledger.ParseEntityID(operatorID)
		if err != nil {
			reasons = append(reasons, fmt.Sprintf("malformed operator id %q", operatorID))
		}
	}

	if strings.TrimSpace(cfg.OperatorKey) == "" {
		reasons = append(reasons, "operator key not set")
	}

	if len(reasons) > 0 {
		balance := ledger.Hbar(0)
		if cfg.Mock.OperatorBalanceHbar > 0 {
			var err error
			balance, err = ledger.HbarFromFloat(cfg.Mock.OperatorBalanceHbar)
			if err != nil {
				return nil, fmt.Errorf("mock operator balance: %w", err)
			}
		}
		client := mock.NewClient(mock.Config{
			OperatorBalance: balance,
			FirstEntityNum:  cfg.Mock.FirstEntityNum,
		})
		return &Backend{
			mode:     ModeMock,
			client:   client,
			operator: client.Operator(),
			reasons:  reasons,
		}, nil
	}

	client, err := hiero.NewClient(hiero.Config{
		Network:           network,
		Operator:          operator,
		OperatorKey:       strings.TrimSpace(cfg.OperatorKey),
		RequestTimeout:    time.Duration(cfg.Gateway.RequestTimeoutMS) * time.Millisecond,
		MaxRetries:        cfg.Gateway.MaxRetries,
		RetryBackoff:      time.Duration(cfg.Gateway.RetryBackoffMS) * time.Millisecond,
		RequestsPerSecond: cfg.Gateway.RequestsPerSecond,
	})
	if err != nil {
		return nil, fmt.Errorf("gateway client: %w", err)
	}
	return &Backend{
		mode:     ModeLive,
		client:   client,
		network:  network,
		operator: operator,
	}, nil
}

func (b *Backend) Mode() Mode             { return b.mode }
func (b *Backend) Client() ledger.Client  { return b.client }
func (b *Backend) Network() string        { return b.network }
func (b *Backend) Operator() ledger.EntityID { return b.operator }

// Reasons lists why the mock was selected. Empty in live mode.
func (b *Backend) Reasons() []string {
	out := make([]string, len(b.reasons))
	copy(out, b.reasons)
	return out
}

// Describe renders a one-line status for logs and the backend endpoint.
func (b *Backend) Describe() string {
	if b.mode == ModeLive {
		return fmt.Sprintf("live backend on %s (operator %s)", b.network, b.operator)
	}
	return fmt.Sprintf("mock backend (operator %s): %s", b.operator, strings.Join(b.reasons, "; "))
}
