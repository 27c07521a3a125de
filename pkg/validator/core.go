package validator

import (
	"github.com/dmitrymomot/safeop/pkg/result"
)

// Verdict is the outcome of a single Check: continue, accept early, or reject.
type Verdict struct {
	failure *result.Failure
	accept  bool
}

// Next lets the pipeline move on to the following check.
func Next() Verdict { return Verdict{} }

// Accept passes the value and skips every remaining check.
func Accept() Verdict { return Verdict{accept: true} }

// Reject stops the pipeline with f.
func Reject(f *result.Failure) Verdict {
	if f == nil {
		f = result.NewFailure(result.KindPolicy, "", ErrValidationFailed)
	}
	return Verdict{failure: f}
}

// Failure returns the rejection, or nil when the check passed.
func (v Verdict) Failure() *result.Failure { return v.failure }

// Accepted reports whether the check ended validation successfully.
func (v Verdict) Accepted() bool { return v.accept }

// Check is one named, deterministic precondition evaluated against the merged
// configuration C. Checks must not keep state between calls.
type Check[C any] struct {
	Name string
	Run  func(value any, cfg C) Verdict
}

// Pipeline is an ordered list of checks. Order is part of the contract.
type Pipeline[C any] []Check[C]

// Validate runs the checks in order and returns the first rejection as a
// *result.Failure. Checks after the first rejection or acceptance never run.
func (p Pipeline[C]) Validate(value any, cfg C) error {
	for _, c := range p {
		v := c.Run(value, cfg)
		if v.failure != nil {
			return v.failure
		}
		if v.accept {
			return nil
		}
	}
	return nil
}

// Names lists the check names in evaluation order.
func (p Pipeline[C]) Names() []string {
	names := make([]string, len(p))
	for i, c := range p {
		names[i] = c.Name
	}
	return names
}

// Constraint is an operation-specific precondition evaluated after the
// generic pipeline has passed for every parameter.
type Constraint func() error

// Constraints runs cs in order and returns the first error.
func Constraints(cs ...Constraint) error {
	for _, c := range cs {
		if c == nil {
			continue
		}
		if err := c(); err != nil {
			return err
		}
	}
	return nil
}

// When returns a Constraint failing with f whenever cond is true.
func When(cond bool, f *result.Failure) Constraint {
	return func() error {
		if cond {
			return f
		}
		return nil
	}
}
