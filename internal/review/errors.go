package review

import (
	"errors"
	"strings"

	"product-approval-ai/backend/internal/ai"
)

// FailureClass is the taxonomy the caller maps onto externally visible
// error semantics.
type FailureClass int

const (
	FailureGeneric FailureClass = iota
	FailureTimeout
	FailureUnavailable
)

// String names the failure class for logging.
func (f FailureClass) String() string {
	switch f {
	case FailureTimeout:
		return "timeout"
	case FailureUnavailable:
		return "unavailable"
	default:
		return "generic"
	}
}

// Failure is the classified error the engine raises for backend problems.
// Message carries a generic, non-leaking description; the original cause is
// retained for logging only.
type Failure struct {
	Class   FailureClass
	Message string
	Err     error
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// ClassifyFailure maps an invocation error into a failure class. Typed
// backend errors carry their class directly; for foreign errors the legacy
// message sniff is kept as a last resort so wrapped transport errors still
// map sanely.
func ClassifyFailure(err error) FailureClass {
	var backendErr *ai.Error
	if errors.As(err, &backendErr) {
		switch backendErr.Kind {
		case ai.KindTimeout:
			return FailureTimeout
		case ai.KindUnavailable:
			return FailureUnavailable
		default:
			return FailureGeneric
		}
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "timeout") {
		return FailureTimeout
	}
	if strings.Contains(msg, "unavailable") {
		return FailureUnavailable
	}
	return FailureGeneric
}

func failureMessage(class FailureClass) string {
	switch class {
	case FailureTimeout:
		return "Review service timeout - please try again"
	case FailureUnavailable:
		return "AI service temporarily unavailable"
	default:
		return "Review service error - please try again"
	}
}

func newFailure(err error) *Failure {
	class := ClassifyFailure(err)
	return &Failure{Class: class, Message: failureMessage(class), Err: err}
}
