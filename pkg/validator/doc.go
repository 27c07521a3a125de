// Package validator provides the configurable, ordered precondition checks that
// every numeric and textual operation runs before computing.
//
// Each domain has a typed configuration with a total default
// (DefaultNumberConfig, DefaultTextConfig) and a partial override
// (NumberOverride, TextOverride) built from Setting values. MergeNumber and
// MergeText overlay overrides flat, key by key, last write wins. A Setting
// is unset (inherit), set, or cleared; a cleared key replaces the default
// with "absent", which means unbounded for limits and false for policy flags.
//
// # Architecture
//
// A Pipeline is an ordered slice of named Check values. Every check returns
// a Verdict: Next to continue, Accept to pass and stop (the NaN and
// infinity bypass), or Reject with a *result.Failure. Validate stops at the
// first Reject or Accept; later checks never run.
//
// The numeric order is presence, type, NaN, infinity, zero, sign, minimum,
// maximum. The textual order is presence, type, empty, whitespace-only,
// maximum length, control characters.
//
// Operation-specific rules run afterwards through Constraints, which also
// stops at the first error.
//
// # Usage
//
//	cfg := validator.MergeNumber(validator.NumberOverride{
//	    AllowNegative: validator.Set(false),
//	    Max:           validator.Clear[float64](),
//	})
//	n, err := validator.ValidateNumber(input, cfg)
//	if err != nil {
//	    // err is a *result.Failure
//	}
//
// # Error Handling
//
// Checks never panic and never return bare errors: a rejection always
// carries a *result.Failure with its kind (presence, type or policy) and a
// human-readable message.
//
// The package keeps no global state and is safe for concurrent use.
package validator
