package numeric

import (
	"math"

	"github.com/dmitrymomot/safeop/pkg/result"
	"github.com/dmitrymomot/safeop/pkg/validator"
)

// Override is the per-call numeric configuration accepted by every operation.
type Override = validator.NumberOverride

// operands validates each value against cfg, in parameter order.
func operands(cfg validator.NumberConfig, values ...any) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		n, err := validator.ValidateNumber(v, cfg)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// parameter validates an auxiliary parameter (decimal counts and the like)
// against the default configuration; overrides apply to operands only.
func parameter(v any) (float64, error) {
	return validator.ValidateNumber(v, validator.DefaultNumberConfig())
}

func isInteger(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0) && n == math.Trunc(n)
}

// finite rejects results that overflowed to infinity, or collapsed to NaN,
// from operands that were neither.
func finite(r float64, in ...float64) (float64, error) {
	if math.IsNaN(r) {
		for _, n := range in {
			if math.IsNaN(n) {
				return r, nil
			}
		}
		return 0, result.Magnitude(MsgUndefinedResult)
	}
	if !math.IsInf(r, 0) {
		return r, nil
	}
	for _, n := range in {
		if math.IsInf(n, 0) {
			return r, nil
		}
	}
	return 0, result.Magnitude(MsgNotRepresentable)
}
