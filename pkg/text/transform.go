package text

import (
	"slices"
	"strings"
	"unicode"

	"github.com/dmitrymomot/safeop/pkg/result"
	"github.com/dmitrymomot/safeop/pkg/validator"
)

// Truncate shortens value to maxLength runes using DefaultSuffix.
func Truncate(value, maxLength any, overrides ...Override) result.Outcome[string] {
	return TruncateWith(value, maxLength, DefaultSuffix, overrides...)
}

// TruncateWith returns value unchanged when it fits in maxLength runes;
// otherwise the head of value followed by suffix, maxLength runes in total.
// maxLength must be a positive integer greater than the suffix length.
func TruncateWith(value, maxLength any, suffix string, overrides ...Override) result.Outcome[string] {
	return transform(value, overrides, func(s string) (string, error) {
		n, err := validator.ValidateNumber(maxLength, validator.DefaultNumberConfig())
		if err != nil {
			return "", err
		}
		suffixLen := len([]rune(suffix))
		if err := validator.Constraints(
			validator.When(n <= 0 || n != float64(int(n)), result.Constraint(MsgMaxLengthPositive)),
			validator.When(n <= float64(suffixLen), result.Constraint(MsgMaxLengthSuffix)),
		); err != nil {
			return "", err
		}

		rs := []rune(s)
		limit := int(n)
		if len(rs) <= limit {
			return s, nil
		}
		return string(rs[:limit-suffixLen]) + suffix, nil
	})
}

// IsPalindrome compares the lowercased alphanumeric runes of value with their
// reverse. Input with no letters or digits is a constraint failure.
func IsPalindrome(value any, overrides ...Override) result.Outcome[bool] {
	return transform(value, overrides, func(s string) (bool, error) {
		var rs []rune
		for _, r := range s {
			if isAlnum(r) {
				rs = append(rs, unicode.ToLower(r))
			}
		}
		if err := validator.Constraints(
			validator.When(len(rs) == 0, result.Constraint(MsgNoAlphanumeric)),
		); err != nil {
			return false, err
		}

		rev := slices.Clone(rs)
		slices.Reverse(rev)
		return slices.Equal(rs, rev), nil
	})
}

// Capitalize upper-cases the first rune and leaves the rest untouched.
func Capitalize(value any, overrides ...Override) result.Outcome[string] {
	return transform(value, overrides, func(s string) (string, error) {
		return mapFirst(s, unicode.ToUpper), nil
	})
}

// Reverse reverses value rune by rune.
func Reverse(value any, overrides ...Override) result.Outcome[string] {
	return transform(value, overrides, func(s string) (string, error) {
		rs := []rune(s)
		slices.Reverse(rs)
		return string(rs), nil
	})
}

// WordCount counts whitespace-separated words.
func WordCount(value any, overrides ...Override) result.Outcome[int] {
	return transform(value, overrides, func(s string) (int, error) {
		return len(strings.Fields(s)), nil
	})
}

// NormalizeWhitespace collapses every whitespace run to one space and trims
// both ends.
func NormalizeWhitespace(value any, overrides ...Override) result.Outcome[string] {
	return transform(value, overrides, func(s string) (string, error) {
		return strings.Join(strings.Fields(s), " "), nil
	})
}
