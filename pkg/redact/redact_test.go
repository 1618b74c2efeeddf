package redact

import (
	"strings"
	"testing"
)

const sampleKey = "302e020100300506032b657004220420aaaabbbbccccddddeeeeffff0000111122223333444455556666777788889999"

func TestRedactDisabled(t *testing.T) {
	SetEnabled(false)
	in := "loaded OPERATOR_KEY=" + sampleKey
	if got := Text(in); got != in {
		t.Fatalf("expected no redaction, got %q", got)
	}
}

func TestRedactEnabled(t *testing.T) {
	SetEnabled(true)
	defer SetEnabled(false)
	in := "loaded OPERATOR_KEY=" + sampleKey
	got := Text(in)
	if strings.Contains(got, sampleKey) {
		t.Fatalf("credential leaked: %q", got)
	}
	if !strings.Contains(got, "[REDACTED_KEY]") {
		t.Fatalf("expected redaction marker, got %q", got)
	}
}

func TestRedactLeavesEntityIDsAlone(t *testing.T) {
	SetEnabled(true)
	defer SetEnabled(false)
	in := "transfer to 0.0.1002 complete"
	if got := Text(in); got != in {
		t.Fatalf("entity ids should survive: %q", got)
	}
}

func TestKeyMasksAlways(t *testing.T) {
	got := Key(sampleKey)
	if strings.Contains(got, sampleKey[10:]) {
		t.Fatalf("key leaked: %q", got)
	}
	if !strings.HasPrefix(got, sampleKey[:6]) {
		t.Fatalf("expected identifying prefix, got %q", got)
	}
	if Key("short") != "[REDACTED_KEY]" {
		t.Fatalf("short keys must be fully masked")
	}
}
