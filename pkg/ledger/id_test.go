package ledger

import "testing"

func TestParseEntityID(t *testing.T) {
	id, err := ParseEntityID("0.0.12345")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if id.Shard != 0 || id.Realm != 0 || id.Num != 12345 {
		t.Fatalf("unexpected id: %+v", id)
	}
	if id.String() != "0.0.12345" {
		t.Fatalf("round trip mismatch: %s", id.String())
	}
}

func TestParseEntityIDRejectsMalformed(t *testing.T) {
	bad := []string{"", "0.0", "0.0.12345.6", "a.b.c", "0.0.-5", "0,0,5", "0.0."}
	for _, s := range bad {
		if _, err := ParseEntityID(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if IsValidEntityID(s) {
			t.Fatalf("expected invalid for %q", s)
		}
	}
}

func TestParseEntityIDTrimsSpace(t *testing.T) {
	id, err := ParseEntityID("  0.0.7  ")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if id.Num != 7 {
		t.Fatalf("unexpected num: %d", id.Num)
	}
}

func TestEntityIDIsZero(t *testing.T) {
	if !(EntityID{}).IsZero() {
		t.Fatalf("zero value should be zero")
	}
	if MustEntityID("0.0.1").IsZero() {
		t.Fatalf("0.0.1 should not be zero")
	}
}
