package numeric

import (
	"math"

	"github.com/dmitrymomot/safeop/pkg/result"
	"github.com/dmitrymomot/safeop/pkg/validator"
)

func classify(value any, overrides []Override, pred func(float64) bool) result.Outcome[bool] {
	return result.Run(func() (bool, error) {
		n, err := validator.ValidateNumber(value, validator.MergeNumber(overrides...))
		if err != nil {
			return false, err
		}
		return pred(n), nil
	})
}

// IsInteger reports whether value has no fractional part. NaN and infinities
// are never integers, even when the configuration lets them through.
func IsInteger(value any, overrides ...Override) result.Outcome[bool] {
	return classify(value, overrides, isInteger)
}

func IsPositive(value any, overrides ...Override) result.Outcome[bool] {
	return classify(value, overrides, func(n float64) bool { return n > 0 })
}

func IsNegative(value any, overrides ...Override) result.Outcome[bool] {
	return classify(value, overrides, func(n float64) bool { return n < 0 })
}

// IsEven tests the remainder against two. It is only meaningful for integers
// and does not check integrality itself.
func IsEven(value any, overrides ...Override) result.Outcome[bool] {
	return classify(value, overrides, func(n float64) bool { return math.Mod(n, 2) == 0 })
}

// IsOdd tests the remainder against two; see IsEven.
func IsOdd(value any, overrides ...Override) result.Outcome[bool] {
	return classify(value, overrides, func(n float64) bool { return math.Abs(math.Mod(n, 2)) == 1 })
}
