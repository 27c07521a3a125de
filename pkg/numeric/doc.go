// Package numeric is the catalog of validated numeric operations.
//
// Every operation accepts its inputs as any (Go numeric types or
// json.Number), validates each operand through the numeric pipeline with the
// merged configuration, applies its own constraints, computes, and returns a
// result.Outcome. Nothing here panics or returns a bare error.
//
//	out := numeric.Clamp(15, 0, 10)            // success: 10
//	out = numeric.Clamp(5, 10, 0)              // constraint failure
//	out = numeric.Factorial(171)               // magnitude failure
//	ok := numeric.IsInteger(math.NaN(), numeric.Override{
//	    AllowNaN: validator.Set(true),
//	})                                         // success: false
//
// Overrides apply to operands. Auxiliary parameters such as decimal counts
// are validated against the default configuration.
//
// Formatting operations delegate to a locale.Formatter; FormatWith accepts a
// custom one.
package numeric
