package ai

import (
	"errors"
	"fmt"
)

// Kind tags a backend failure at the point it occurs, so callers never have
// to sniff error message text to find out what went wrong.
type Kind int

const (
	// KindGeneric covers failures with no more specific classification.
	KindGeneric Kind = iota
	// KindTimeout means the call exceeded its wall-clock budget.
	KindTimeout
	// KindUnavailable means the backend could not be reached or reported a
	// transport/service level error.
	KindUnavailable
	// KindMalformed means the backend answered but the payload could not be
	// interpreted as a verdict.
	KindMalformed
)

// Error is the typed failure returned by the backend judge.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ai %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("ai %s", e.Op)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrDisabled is returned when the client cannot be constructed because no
// credentials were supplied.
var ErrDisabled = errors.New("ai judge disabled")

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}
