package api

import (
	"maps"
	"slices"

	"github.com/dmitrymomot/safeop/pkg/locale"
	"github.com/dmitrymomot/safeop/pkg/numeric"
	"github.com/dmitrymomot/safeop/pkg/result"
	"github.com/dmitrymomot/safeop/pkg/text"
	"github.com/dmitrymomot/safeop/pkg/validator"
)

// MsgSuffixNotString is reported when a truncate suffix is not a string.
const MsgSuffixNotString = "Suffix must be a string"

// op is a catalog entry. params is the positional argument count; missing
// trailing arguments are passed as nil so presence checks report them.
type op[O any] struct {
	params int
	call   func(args []any, overrides []O) result.Outcome[any]
}

type (
	numericOp = op[numeric.Override]
	textOp    = op[text.Override]
)

func unary[O, T any](fn func(any, ...O) result.Outcome[T]) op[O] {
	return op[O]{params: 1, call: func(a []any, o []O) result.Outcome[any] {
		return result.Any(fn(a[0], o...))
	}}
}

func binary[O, T any](fn func(any, any, ...O) result.Outcome[T]) op[O] {
	return op[O]{params: 2, call: func(a []any, o []O) result.Outcome[any] {
		return result.Any(fn(a[0], a[1], o...))
	}}
}

func failed(err error) result.Outcome[any] {
	return result.Fail[any](result.FromError(err))
}

// textParam validates an auxiliary string argument, such as a locale, with
// the default text configuration.
func textParam(v any) (string, error) {
	return validator.ValidateText(v, validator.DefaultTextConfig())
}

// numericOperand validates the primary operand before auxiliary arguments
// are looked at, so operand failures are reported first.
func numericOperand(v any, o []numeric.Override) error {
	_, err := validator.ValidateNumber(v, validator.MergeNumber(o...))
	return err
}

func fractionDigits(v any) (int, error) {
	if v == nil {
		return 0, nil
	}
	n, err := validator.ValidateNumber(v, validator.DefaultNumberConfig())
	if err != nil {
		return 0, err
	}
	if n != float64(int(n)) || n < 0 || n > locale.MaxFractionDigits {
		return 0, result.Constraint(numeric.MsgDecimalsRange)
	}
	return int(n), nil
}

func numericCatalog() map[string]numericOp {
	return map[string]numericOp{
		"isInteger":  unary(numeric.IsInteger),
		"isPositive": unary(numeric.IsPositive),
		"isNegative": unary(numeric.IsNegative),
		"isEven":     unary(numeric.IsEven),
		"isOdd":      unary(numeric.IsOdd),
		"clamp": {params: 3, call: func(a []any, o []numeric.Override) result.Outcome[any] {
			return result.Any(numeric.Clamp(a[0], a[1], a[2], o...))
		}},
		"round":      binary(numeric.Round),
		"toFixed":    binary(numeric.ToFixed),
		"abs":        unary(numeric.Abs),
		"add":        binary(numeric.Add),
		"subtract":   binary(numeric.Subtract),
		"multiply":   binary(numeric.Multiply),
		"divide":     binary(numeric.Divide),
		"percentage": binary(numeric.Percentage),
		"factorial":  unary(numeric.Factorial),
		"fibonacci":  unary(numeric.Fibonacci),
		"isPrime":    unary(numeric.IsPrime),
		"gcd":        binary(numeric.GCD),
		"lcm":        binary(numeric.LCM),
		"sum":        unary(numeric.Sum),
		"average":    unary(numeric.Average),
		"min":        unary(numeric.Minimum),
		"max":        unary(numeric.Maximum),
		"toText":     unary(numeric.ToText),
		"parse":      unary(numeric.Parse),
		"formatNumber": {params: 2, call: func(a []any, o []numeric.Override) result.Outcome[any] {
			if err := numericOperand(a[0], o); err != nil {
				return failed(err)
			}
			loc, err := textParam(a[1])
			if err != nil {
				return failed(err)
			}
			return result.Any(numeric.FormatNumber(a[0], loc, o...))
		}},
		"formatCurrency": {params: 3, call: func(a []any, o []numeric.Override) result.Outcome[any] {
			if err := numericOperand(a[0], o); err != nil {
				return failed(err)
			}
			loc, err := textParam(a[1])
			if err != nil {
				return failed(err)
			}
			code, err := textParam(a[2])
			if err != nil {
				return failed(err)
			}
			return result.Any(numeric.FormatCurrency(a[0], loc, code, o...))
		}},
		"formatPercent": {params: 3, call: func(a []any, o []numeric.Override) result.Outcome[any] {
			if err := numericOperand(a[0], o); err != nil {
				return failed(err)
			}
			loc, err := textParam(a[1])
			if err != nil {
				return failed(err)
			}
			digits, err := fractionDigits(a[2])
			if err != nil {
				return failed(err)
			}
			return result.Any(numeric.FormatPercent(a[0], loc, digits, o...))
		}},
	}
}

func textCatalog() map[string]textOp {
	return map[string]textOp{
		"camelCase":  unary(text.CamelCase),
		"snakeCase":  unary(text.SnakeCase),
		"kebabCase":  unary(text.KebabCase),
		"pascalCase": unary(text.PascalCase),
		"titleCase":  unary(text.TitleCase),
		"truncate": {params: 3, call: func(a []any, o []text.Override) result.Outcome[any] {
			if a[2] == nil {
				return result.Any(text.Truncate(a[0], a[1], o...))
			}
			suffix, ok := a[2].(string)
			if !ok {
				return failed(result.TypeMismatch(MsgSuffixNotString))
			}
			return result.Any(text.TruncateWith(a[0], a[1], suffix, o...))
		}},
		"isPalindrome":        unary(text.IsPalindrome),
		"capitalize":          unary(text.Capitalize),
		"reverse":             unary(text.Reverse),
		"wordCount":           unary(text.WordCount),
		"slugify":             unary(text.Slugify),
		"normalizeWhitespace": unary(text.NormalizeWhitespace),
	}
}

func sortedNames[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
