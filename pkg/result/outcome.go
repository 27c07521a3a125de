package result

import "encoding/json"

// Outcome holds either a success value or a Failure, never both.
// Inspect it with OK or Failed; a zero or false value is a legitimate success.
type Outcome[T any] struct {
	value   T
	failure *Failure
}

// Success returns an Outcome carrying v.
func Success[T any](v T) Outcome[T] {
	return Outcome[T]{value: v}
}

// Fail returns an Outcome carrying f. A nil f is replaced by a generic
// unexpected failure so the failure slot is never empty on a failed Outcome.
func Fail[T any](f *Failure) Outcome[T] {
	if f == nil {
		f = NewFailure(KindUnexpected, "", nil)
	}
	return Outcome[T]{failure: f}
}

// OK reports whether the Outcome carries a value.
func (o Outcome[T]) OK() bool { return o.failure == nil }

// Failed reports whether the Outcome carries a Failure.
func (o Outcome[T]) Failed() bool { return o.failure != nil }

// Value returns the success value and true, or the zero value and false.
func (o Outcome[T]) Value() (T, bool) {
	if o.failure != nil {
		var zero T
		return zero, false
	}
	return o.value, true
}

// ValueOr returns the success value or def when the Outcome failed.
func (o Outcome[T]) ValueOr(def T) T {
	if o.failure != nil {
		return def
	}
	return o.value
}

// Failure returns the failure descriptor, or nil on success.
func (o Outcome[T]) Failure() *Failure { return o.failure }

// Err returns the Failure as an error, or a nil interface on success.
func (o Outcome[T]) Err() error {
	if o.failure == nil {
		return nil
	}
	return o.failure
}

// Unwrap converts back to Go's (value, error) convention.
func (o Outcome[T]) Unwrap() (T, error) {
	v, _ := o.Value()
	return v, o.Err()
}

// Map applies fn to a success value; a failure passes through untouched.
func Map[T, U any](o Outcome[T], fn func(T) U) Outcome[U] {
	if o.failure != nil {
		return Outcome[U]{failure: o.failure}
	}
	return Success(fn(o.value))
}

// Any erases the value type, for registries that dispatch over mixed operations.
func Any[T any](o Outcome[T]) Outcome[any] {
	if o.failure != nil {
		return Outcome[any]{failure: o.failure}
	}
	return Outcome[any]{value: o.value}
}

type failureJSON struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

type outcomeJSON struct {
	OK    bool         `json:"ok"`
	Value any          `json:"value,omitempty"`
	Error *failureJSON `json:"error,omitempty"`
}

// MarshalJSON encodes the tag explicitly as "ok" so consumers never have to
// infer success from the value.
func (o Outcome[T]) MarshalJSON() ([]byte, error) {
	if o.failure != nil {
		return json.Marshal(outcomeJSON{
			Error: &failureJSON{Kind: o.failure.Kind, Message: o.failure.Message},
		})
	}
	return json.Marshal(struct {
		OK    bool `json:"ok"`
		Value T    `json:"value"`
	}{OK: true, Value: o.value})
}
