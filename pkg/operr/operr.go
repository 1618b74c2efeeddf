package operr

import (
	"errors"
	"fmt"
)

// Error is the only failure shape that crosses the dispatcher boundary.
type Error struct {
	Kind   Kind
	Op     string
	Err    error
	Detail map[string]any
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return string(KindUnknown)
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Err.Error())
	case e.Err != nil:
		return fmt.Sprintf("%s: %s", e.Kind, e.Err.Error())
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	default:
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds a kinded error from a message.
func New(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// Wrap attaches a kind to an error. A nil err stays nil and an already
// kinded error keeps its original kind, mirroring wrap-once semantics.
func Wrap(err error, kind Kind, op string) error {
	if err == nil {
		return nil
	}
	var oe *Error
	if errors.As(err, &oe) {
		return err
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf extracts the kind from an error, if present.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var oe *Error
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return KindUnknown
}

// HasKind returns true if err carries the given kind.
func HasKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// As extracts the *Error from err, if present.
func As(err error) (*Error, bool) {
	var oe *Error
	if errors.As(err, &oe) {
		return oe, true
	}
	return nil, false
}

// WithDetail attaches structured context to a kinded error in place.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Detail == nil {
		e.Detail = make(map[string]any, 2)
	}
	e.Detail[key] = value
	return e
}
