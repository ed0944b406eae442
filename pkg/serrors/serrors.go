// Package serrors classifies errors by semantic kind so that transports can
// map business failures to their own representation without inspecting
// messages.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a sentinel describing a failure category. Only NewKind creates kinds.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind declares a new failure category. The name doubles as the machine
// readable code exposed by transports, e.g. "NOT_FOUND".
func NewKind(name string) Kind { return kind{s: name} }

// Generic kinds shared across packages. Domain-specific kinds live next to the
// domain they describe.
var (
	ErrNotFound     = NewKind("NOT_FOUND")
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	ErrForbidden    = NewKind("FORBIDDEN")
	ErrBadRequest   = NewKind("BAD_REQUEST")
	// ErrConflict reports a concurrent modification that could not be reconciled.
	ErrConflict    = NewKind("CONFLICT")
	ErrInternal    = NewKind("INTERNAL")
	ErrTimeout     = NewKind("TIMEOUT")
	ErrUnavailable = NewKind("UNAVAILABLE")
	ErrRateLimited = NewKind("RATE_LIMITED")
)

// Error couples a Kind with an optional cause and message.
//
// errors.Is and errors.As match either the kind or anything in the cause
// chain. Error() renders "<msg>: <cause>", falling back to whichever part is
// set and finally to the kind name.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With creates an error of kind k with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap creates an error of kind k around cause err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates an error that only carries its kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// KindOf returns the kind of the first *Error in err's chain, or the kind
// itself when err is a bare Kind. It returns nil for unclassified errors.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) && se.kind != nil {
		return se.kind
	}

	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return nil
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() error { return e.err }

// Is matches target against the kind first and then the cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}

	return (e.kind != nil && errors.Is(e.kind, target)) ||
		(e.err != nil && errors.Is(e.err, target))
}

// As extracts target from the kind first and then the cause chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}

	return (e.kind != nil && errors.As(e.kind, target)) ||
		(e.err != nil && errors.As(e.err, target))
}

func (e *Error) Kind() Kind      { return e.kind }
func (e *Error) Message() string { return e.msg }
func (e *Error) Cause() error    { return e.err }
