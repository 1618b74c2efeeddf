package ledger

import (
	"math"
	"testing"
)

func TestHbarFromFloatExact(t *testing.T) {
	h, err := HbarFromFloat(8.5)
	if err != nil {
		t.Fatalf("convert error: %v", err)
	}
	if h.Tinybar() != 850_000_000 {
		t.Fatalf("expected 850000000 tinybar, got %d", h.Tinybar())
	}
	if h.Float() != 8.5 {
		t.Fatalf("round trip mismatch: %g", h.Float())
	}
}

func TestHbarArithmeticConserves(t *testing.T) {
	a, _ := HbarFromFloat(8.5)
	b, _ := HbarFromFloat(2)
	if (a - b).Float() != 6.5 {
		t.Fatalf("expected 6.5, got %g", (a - b).Float())
	}
}

func TestHbarFromFloatRejectsNaN(t *testing.T) {
	if _, err := HbarFromFloat(math.NaN()); err == nil {
		t.Fatalf("expected error for NaN")
	}
	if _, err := HbarFromFloat(math.Inf(1)); err == nil {
		t.Fatalf("expected error for +Inf")
	}
}

func TestHbarString(t *testing.T) {
	h, _ := HbarFromFloat(10.5)
	if h.String() != "10.5 HBAR" {
		t.Fatalf("unexpected string: %s", h.String())
	}
}
