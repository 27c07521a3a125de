package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/safeop/pkg/result"
	"github.com/dmitrymomot/safeop/pkg/validator"
)

// humped joins the words of s after stripping leading underscores, mapping
// the first rune of the first word with first and of every later word with
// rest. Interior case is kept so the output is a fixed point.
func humped(s string, first, rest func(rune) rune) (string, error) {
	trimmed := strings.TrimLeft(s, "_")
	if err := validator.Constraints(
		validator.When(trimmed == "", result.Constraint(MsgOnlyUnderscores)),
	); err != nil {
		return "", err
	}

	words := splitWords(trimmed, false)
	if err := validator.Constraints(
		validator.When(len(words) == 0, result.Constraint(MsgNoAlphanumeric)),
	); err != nil {
		return "", err
	}

	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(mapFirst(w, first))
			continue
		}
		b.WriteString(mapFirst(w, rest))
	}
	return b.String(), nil
}

// CamelCase joins the words of value as camelCase: "hello world" becomes
// "helloWorld". Input made only of underscores, or with no letters or
// digits at all, is a constraint failure.
func CamelCase(value any, overrides ...Override) result.Outcome[string] {
	return transform(value, overrides, func(s string) (string, error) {
		return humped(s, unicode.ToLower, unicode.ToUpper)
	})
}

// PascalCase is CamelCase with the first word capitalized too.
func PascalCase(value any, overrides ...Override) result.Outcome[string] {
	return transform(value, overrides, func(s string) (string, error) {
		return humped(s, unicode.ToUpper, unicode.ToUpper)
	})
}

func delimited(s, sep string) string {
	words := splitWords(s, true)
	lower := cases.Lower(language.Und)
	for i, w := range words {
		words[i] = lower.String(w)
	}
	return strings.Join(words, sep)
}

// SnakeCase lowercases the words of value and joins them with underscores.
func SnakeCase(value any, overrides ...Override) result.Outcome[string] {
	return transform(value, overrides, func(s string) (string, error) {
		return delimited(s, "_"), nil
	})
}

// KebabCase lowercases the words of value and joins them with hyphens.
func KebabCase(value any, overrides ...Override) result.Outcome[string] {
	return transform(value, overrides, func(s string) (string, error) {
		return delimited(s, "-"), nil
	})
}

// TitleCase capitalizes every word and joins them with single spaces.
func TitleCase(value any, overrides ...Override) result.Outcome[string] {
	return transform(value, overrides, func(s string) (string, error) {
		words := splitWords(s, true)
		title := cases.Title(language.Und)
		for i, w := range words {
			words[i] = title.String(w)
		}
		return strings.Join(words, " "), nil
	})
}
