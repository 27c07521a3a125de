package result

import (
	"context"
	"errors"
	"fmt"
)

// Kind classifies a Failure by where in the execution it was produced.
type Kind uint8

const (
	// KindUnexpected covers foreign errors and recovered panics.
	KindUnexpected Kind = iota
	// KindPresence means a required input was missing.
	KindPresence
	// KindType means an input was present but of the wrong kind.
	KindType
	// KindPolicy means an input violated a configured policy (range, sign, length, ...).
	KindPolicy
	// KindConstraint means a parameter relationship specific to an operation was violated.
	KindConstraint
	// KindMagnitude means the result would not be representable.
	KindMagnitude
	// KindCollaborator means a formatting or network dependency rejected the input.
	KindCollaborator
	// KindCanceled means the caller's context ended before the computation finished.
	KindCanceled
)

var kindNames = [...]string{
	KindUnexpected:   "unexpected",
	KindPresence:     "presence",
	KindType:         "type",
	KindPolicy:       "policy",
	KindConstraint:   "constraint",
	KindMagnitude:    "magnitude",
	KindCollaborator: "collaborator",
	KindCanceled:     "canceled",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// MarshalText renders the kind by name so it reads well in JSON and logs.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// defaultMessage replaces empty messages; a Failure always carries text.
const defaultMessage = "operation failed"

// Failure describes why an operation did not produce a value.
// It implements error and unwraps to its Cause.
type Failure struct {
	Kind    Kind
	Message string
	Cause   error
}

// NewFailure builds a Failure, substituting a generic message for an empty one.
func NewFailure(kind Kind, message string, cause error) *Failure {
	if message == "" {
		if cause != nil && cause.Error() != "" {
			message = cause.Error()
		} else {
			message = defaultMessage
		}
	}
	return &Failure{Kind: kind, Message: message, Cause: cause}
}

func (f *Failure) Error() string {
	if f == nil {
		return defaultMessage
	}
	return f.Message
}

func (f *Failure) Unwrap() error {
	if f == nil {
		return nil
	}
	return f.Cause
}

// Is reports whether target is a Failure of the same kind and message, so
// errors.Is works against expected failures built in tests and callers.
func (f *Failure) Is(target error) bool {
	t, ok := target.(*Failure)
	if !ok {
		return false
	}
	return f.Kind == t.Kind && f.Message == t.Message
}

func Presence(message string) *Failure { return NewFailure(KindPresence, message, nil) }

func TypeMismatch(message string) *Failure { return NewFailure(KindType, message, nil) }

func Policy(message string) *Failure { return NewFailure(KindPolicy, message, nil) }

func Constraint(message string) *Failure { return NewFailure(KindConstraint, message, nil) }

func Magnitude(message string) *Failure { return NewFailure(KindMagnitude, message, nil) }

// Collaborator wraps a fault raised by an external dependency, keeping its message.
func Collaborator(cause error) *Failure {
	return NewFailure(KindCollaborator, "", cause)
}

// FromError converts any error into a Failure. Errors that already are, or
// wrap, a *Failure keep their kind and message. Context errors become
// KindCanceled; everything else is KindUnexpected.
func FromError(err error) *Failure {
	if err == nil {
		return nil
	}

	var f *Failure
	if errors.As(err, &f) && f != nil {
		return f
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return NewFailure(KindCanceled, err.Error(), err)
	}

	return NewFailure(KindUnexpected, err.Error(), err)
}

// fromPanic turns a recovered panic value into a Failure.
func fromPanic(v any) *Failure {
	if err, ok := v.(error); ok {
		return NewFailure(KindUnexpected, err.Error(), errors.Join(ErrPanic, err))
	}
	return NewFailure(KindUnexpected, fmt.Sprint(v), ErrPanic)
}
