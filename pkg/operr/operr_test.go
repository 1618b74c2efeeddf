package operr

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrapAndKindOf(t *testing.T) {
	err := Wrap(errors.New("boom"), KindBackendRejected, "transfer_hbar")
	if KindOf(err) != KindBackendRejected {
		t.Fatalf("expected kind %s, got %s", KindBackendRejected, KindOf(err))
	}
	if !HasKind(err, KindBackendRejected) {
		t.Fatalf("expected HasKind true")
	}
}

func TestWrapPreservesExistingKind(t *testing.T) {
	first := Wrap(errors.New("boom"), KindTimeout, "mint_token")
	second := Wrap(first, KindBackendRejected, "mint_token")
	if KindOf(second) != KindTimeout {
		t.Fatalf("expected kind preserved, got %s", KindOf(second))
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, KindInvalidInput, "create_account") != nil {
		t.Fatalf("expected nil for nil error")
	}
}

func TestWrapSurvivesFmtChain(t *testing.T) {
	inner := New(KindInvalidInput, "create_account", "field %q: %s", "initial_balance", "must be non-negative")
	wrapped := fmt.Errorf("dispatch: %w", inner)
	oe, ok := As(wrapped)
	if !ok {
		t.Fatalf("expected *Error through %%w chain")
	}
	if oe.Kind != KindInvalidInput || oe.Op != "create_account" {
		t.Fatalf("unexpected error: %+v", oe)
	}
}

func TestRetryable(t *testing.T) {
	cases := []struct {
		kind Kind
		want bool
	}{
		{KindBackendUnavailable, true},
		{KindTimeout, true},
		{KindBackendRejected, false},
		{KindInvalidInput, false},
		{KindUnknownOperation, false},
		{KindDuplicateOperation, false},
	}
	for _, tc := range cases {
		if tc.kind.Retryable() != tc.want {
			t.Fatalf("kind %s: expected retryable=%v", tc.kind, tc.want)
		}
	}
}
