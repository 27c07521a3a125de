package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrymomot/safeop/pkg/result"
	"github.com/dmitrymomot/safeop/pkg/validator"
)

// Override is the per-call text configuration accepted by every operation.
type Override = validator.TextOverride

// transform validates value with the merged overrides and applies fn to it.
func transform[T any](value any, overrides []Override, fn func(s string) (T, error)) result.Outcome[T] {
	return result.Run(func() (T, error) {
		s, err := validator.ValidateText(value, validator.MergeText(overrides...))
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(s)
	})
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// splitWords breaks s into alphanumeric runs. With humps set, a run is also
// broken where lower case or a digit meets upper case ("helloWorld") and
// before the last capital of an acronym ("HTMLParser" gives HTML, Parser).
func splitWords(s string, humps bool) []string {
	rs := []rune(s)
	var words []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}

	for i, r := range rs {
		if !isAlnum(r) {
			flush()
			continue
		}
		if humps && i > 0 && unicode.IsUpper(r) {
			prev := rs[i-1]
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur.WriteRune(r)
	}
	flush()
	return words
}

// mapFirst applies fn to the first rune of s.
func mapFirst(s string, fn func(rune) rune) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(fn(r)) + s[size:]
}
