package numeric

import (
	"math"
	"strconv"

	"github.com/dmitrymomot/safeop/pkg/result"
	"github.com/dmitrymomot/safeop/pkg/validator"
)

// Clamp constrains value to [min, max]. min greater than max is a constraint
// failure, checked after all three inputs pass validation.
func Clamp(value, min, max any, overrides ...Override) result.Outcome[float64] {
	return result.Run(func() (float64, error) {
		ns, err := operands(validator.MergeNumber(overrides...), value, min, max)
		if err != nil {
			return 0, err
		}
		v, lo, hi := ns[0], ns[1], ns[2]

		if err := validator.Constraints(
			validator.When(lo > hi, result.Constraint(MsgMinGreaterThanMax)),
		); err != nil {
			return 0, err
		}

		if v < lo {
			return lo, nil
		}
		if v > hi {
			return hi, nil
		}
		return v, nil
	})
}

// Round rounds value to the given number of decimal places, half away from zero.
func Round(value, decimals any, overrides ...Override) result.Outcome[float64] {
	return result.Run(func() (float64, error) {
		ns, err := operands(validator.MergeNumber(overrides...), value)
		if err != nil {
			return 0, err
		}
		d, err := parameter(decimals)
		if err != nil {
			return 0, err
		}
		if err := validator.Constraints(
			validator.When(!isInteger(d) || d < 0, result.Constraint(MsgDecimalsNonNegative)),
		); err != nil {
			return 0, err
		}

		n := ns[0]
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return n, nil
		}
		multiplier := math.Pow(10, d)
		if n == 0 || math.IsInf(multiplier, 0) || math.IsInf(n*multiplier, 0) {
			return n, nil
		}
		return math.Round(n*multiplier) / multiplier, nil
	})
}

// ToFixed renders value with exactly decimals fractional digits, 0 to 20.
func ToFixed(value, decimals any, overrides ...Override) result.Outcome[string] {
	return result.Run(func() (string, error) {
		ns, err := operands(validator.MergeNumber(overrides...), value)
		if err != nil {
			return "", err
		}
		d, err := parameter(decimals)
		if err != nil {
			return "", err
		}
		if err := validator.Constraints(
			validator.When(!isInteger(d) || d < 0 || d > MaxFixedDecimals, result.Constraint(MsgDecimalsRange)),
		); err != nil {
			return "", err
		}
		return strconv.FormatFloat(ns[0], 'f', int(d), 64), nil
	})
}

func Abs(value any, overrides ...Override) result.Outcome[float64] {
	return result.Run(func() (float64, error) {
		ns, err := operands(validator.MergeNumber(overrides...), value)
		if err != nil {
			return 0, err
		}
		return math.Abs(ns[0]), nil
	})
}

func binary(a, b any, overrides []Override, fn func(x, y float64) (float64, error)) result.Outcome[float64] {
	return result.Run(func() (float64, error) {
		ns, err := operands(validator.MergeNumber(overrides...), a, b)
		if err != nil {
			return 0, err
		}
		r, err := fn(ns[0], ns[1])
		if err != nil {
			return 0, err
		}
		return finite(r, ns...)
	})
}

func Add(a, b any, overrides ...Override) result.Outcome[float64] {
	return binary(a, b, overrides, func(x, y float64) (float64, error) { return x + y, nil })
}

func Subtract(a, b any, overrides ...Override) result.Outcome[float64] {
	return binary(a, b, overrides, func(x, y float64) (float64, error) { return x - y, nil })
}

func Multiply(a, b any, overrides ...Override) result.Outcome[float64] {
	return binary(a, b, overrides, func(x, y float64) (float64, error) { return x * y, nil })
}

// Divide fails with a constraint failure when the divisor is zero.
func Divide(a, b any, overrides ...Override) result.Outcome[float64] {
	return binary(a, b, overrides, func(x, y float64) (float64, error) {
		if err := validator.Constraints(validator.When(y == 0, result.Constraint(MsgDivideByZero))); err != nil {
			return 0, err
		}
		return x / y, nil
	})
}

// Percentage returns part as a percentage of total.
func Percentage(part, total any, overrides ...Override) result.Outcome[float64] {
	return binary(part, total, overrides, func(x, y float64) (float64, error) {
		if err := validator.Constraints(validator.When(y == 0, result.Constraint(MsgTotalZero))); err != nil {
			return 0, err
		}
		return x / y * 100, nil
	})
}
