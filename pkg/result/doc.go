// Package result turns fallible computations into inspectable values.
//
// An Outcome carries exactly one of a success value or a *Failure. Run is the
// single boundary where Go's (value, error) returns and panics are captured:
// whatever happens inside the wrapped function, the caller receives an
// Outcome and nothing escapes.
//
// # Usage
//
//	out := result.Run(func() (float64, error) {
//	    if d == 0 {
//	        return 0, result.Constraint("Cannot divide by zero")
//	    }
//	    return n / d, nil
//	})
//	if out.Failed() {
//	    log.Println(out.Failure().Kind, out.Failure().Message)
//	}
//
// Always branch on OK or Failed. Zero and false are legitimate values.
//
// # Suspending form
//
// RunContext runs the computation on its own goroutine and waits for it or for
// the context to end. Go and Future expose the same machinery when the caller
// wants to do other work before waiting.
//
// # Failure kinds
//
// Failures carry a Kind: presence, type, policy, constraint, magnitude,
// collaborator, canceled or unexpected. Errors that already wrap a *Failure
// keep their kind when captured; any other error is unexpected, and context
// errors are canceled.
package result
