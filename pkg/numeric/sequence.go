package numeric

import (
	"math"

	"github.com/dmitrymomot/safeop/pkg/result"
	"github.com/dmitrymomot/safeop/pkg/validator"
)

// Factorial returns n! for integers in [0, 170]. Larger inputs overflow
// float64 and fail with a magnitude failure rather than returning +Inf.
func Factorial(n any, overrides ...Override) result.Outcome[float64] {
	return result.Run(func() (float64, error) {
		ns, err := operands(validator.MergeNumber(overrides...), n)
		if err != nil {
			return 0, err
		}
		v := ns[0]
		if err := validator.Constraints(
			validator.When(!isInteger(v) || v < 0, result.Constraint(MsgNonNegativeInteger)),
			validator.When(v > MaxFactorialInput, result.Magnitude(MsgFactorialCap)),
		); err != nil {
			return 0, err
		}

		acc := 1.0
		for i := 2.0; i <= v; i++ {
			acc *= i
		}
		return acc, nil
	})
}

// Fibonacci returns the n-th Fibonacci number (F(0) = 0, F(1) = 1) for n in
// [0, 78]; F(79) is past the safe integer range.
func Fibonacci(n any, overrides ...Override) result.Outcome[int64] {
	return result.Run(func() (int64, error) {
		ns, err := operands(validator.MergeNumber(overrides...), n)
		if err != nil {
			return 0, err
		}
		v := ns[0]
		if err := validator.Constraints(
			validator.When(!isInteger(v) || v < 0, result.Constraint(MsgNonNegativeInteger)),
			validator.When(v > MaxFibonacciInput, result.Magnitude(MsgFibonacciCap)),
		); err != nil {
			return 0, err
		}

		var a, b int64 = 0, 1
		for range int(v) {
			a, b = b, a+b
		}
		return a, nil
	})
}

// IsPrime tests primality by trial division with odd divisors up to the
// integer square root. 1 is not prime; zero and negatives are rejected.
func IsPrime(n any, overrides ...Override) result.Outcome[bool] {
	return result.Run(func() (bool, error) {
		ns, err := operands(validator.MergeNumber(overrides...), n)
		if err != nil {
			return false, err
		}
		v := ns[0]
		if err := validator.Constraints(
			validator.When(!isInteger(v) || v <= 0, result.Constraint(MsgPositiveInteger)),
			validator.When(v > validator.MaxSafeInteger, result.Magnitude(MsgNotRepresentable)),
		); err != nil {
			return false, err
		}

		p := int64(v)
		switch {
		case p == 1:
			return false, nil
		case p == 2:
			return true, nil
		case p%2 == 0:
			return false, nil
		}
		limit := int64(math.Sqrt(float64(p)))
		for d := int64(3); d <= limit; d += 2 {
			if p%d == 0 {
				return false, nil
			}
		}
		return true, nil
	})
}

// GCD returns the greatest common divisor of two integers; GCD(0, 0) is 0.
func GCD(a, b any, overrides ...Override) result.Outcome[int64] {
	return result.Run(func() (int64, error) {
		x, y, err := integerPair(a, b, overrides)
		if err != nil {
			return 0, err
		}
		return gcd(x, y), nil
	})
}

// LCM returns the least common multiple of two non-zero integers.
func LCM(a, b any, overrides ...Override) result.Outcome[int64] {
	return result.Run(func() (int64, error) {
		x, y, err := integerPair(a, b, overrides)
		if err != nil {
			return 0, err
		}
		if err := validator.Constraints(
			validator.When(x == 0 || y == 0, result.Constraint(MsgLCMZero)),
		); err != nil {
			return 0, err
		}

		g := gcd(x, y)
		ax, ay := abs64(x), abs64(y)
		if float64(ax/g)*float64(ay) > validator.MaxSafeInteger {
			return 0, result.Magnitude(MsgNotRepresentable)
		}
		return ax / g * ay, nil
	})
}

func integerPair(a, b any, overrides []Override) (int64, int64, error) {
	ns, err := operands(validator.MergeNumber(overrides...), a, b)
	if err != nil {
		return 0, 0, err
	}
	if err := validator.Constraints(
		validator.When(!isInteger(ns[0]) || !isInteger(ns[1]), result.Constraint(MsgIntegersRequired)),
		validator.When(math.Abs(ns[0]) > validator.MaxSafeInteger || math.Abs(ns[1]) > validator.MaxSafeInteger,
			result.Magnitude(MsgNotRepresentable)),
	); err != nil {
		return 0, 0, err
	}
	return int64(ns[0]), int64(ns[1]), nil
}

func gcd(a, b int64) int64 {
	a, b = abs64(a), abs64(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
