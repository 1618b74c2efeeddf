package operr

// Kind is a short machine-readable failure category.
type Kind string

const (
	KindUnknown Kind = "unknown"

	// KindUnknownOperation: the requested operation name is not registered.
	KindUnknownOperation Kind = "unknown_operation"
	// KindInvalidInput: the argument bundle failed schema validation.
	KindInvalidInput Kind = "invalid_input"
	// KindBackendRejected: the backend refused the operation for a business
	// reason (insufficient funds, missing association, frozen token, ...).
	KindBackendRejected Kind = "backend_rejected"
	// KindBackendUnavailable: the backend could not be reached. Safe to retry
	// with backoff; the dispatcher itself never retries.
	KindBackendUnavailable Kind = "backend_unavailable"
	// KindTimeout: the handler exceeded its per-call bound. Retry semantics
	// match KindBackendUnavailable.
	KindTimeout Kind = "timeout"
	// KindDuplicateOperation: registration-time only, fatal at startup.
	KindDuplicateOperation Kind = "duplicate_operation"
)

// Retryable reports whether a caller may reasonably retry the call.
func (k Kind) Retryable() bool {
	return k == KindBackendUnavailable || k == KindTimeout
}
