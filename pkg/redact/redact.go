package redact

import (
	"regexp"
	"strings"
	"sync/atomic"
)

var enabled atomic.Bool

// Private keys for ledger operators are long hex blobs, frequently with
// a DER prefix; treat any 64+ char hex run as a credential.
var (
	hexKeyRe   = regexp.MustCompile(`(?i)\b(?:0x)?[0-9a-f]{64,}\b`)
	envAssignRe = regexp.MustCompile(`(?i)(OPERATOR_KEY\s*[=:]\s*)\S+`)
)

// SetEnabled toggles credential redaction.
func SetEnabled(v bool) {
	enabled.Store(v)
}

// Enabled returns true when redaction is active.
func Enabled() bool {
	return enabled.Load()
}

// Text masks operator credentials in free-form text when enabled.
func Text(in string) string {
	if !enabled.Load() || strings.TrimSpace(in) == "" {
		return in
	}
	out := envAssignRe.ReplaceAllString(in, "${1}[REDACTED_KEY]")
	out = hexKeyRe.ReplaceAllString(out, "[REDACTED_KEY]")
	return out
}

// Key masks a credential unconditionally, keeping a short prefix so an
// operator can tell which key was loaded.
func Key(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return "[REDACTED_KEY]"
	}
	return key[:6] + "...[REDACTED]"
}
