package numeric

import (
	"github.com/dmitrymomot/safeop/pkg/locale"
	"github.com/dmitrymomot/safeop/pkg/result"
	"github.com/dmitrymomot/safeop/pkg/validator"
)

// FormatWith validates value and delegates rendering to f. Any error from f
// is reported as a collaborator failure carrying f's message.
func FormatWith(f locale.Formatter, value any, loc string, style locale.Style, opts locale.Options, overrides ...Override) result.Outcome[string] {
	return result.Run(func() (string, error) {
		ns, err := operands(validator.MergeNumber(overrides...), value)
		if err != nil {
			return "", err
		}
		s, err := f.Format(ns[0], loc, style, opts)
		if err != nil {
			return "", result.Collaborator(err)
		}
		return s, nil
	})
}

// FormatNumber renders value as a locale-aware decimal.
func FormatNumber(value any, loc string, overrides ...Override) result.Outcome[string] {
	return FormatWith(locale.New(), value, loc, locale.StylePlain, locale.Options{}, overrides...)
}

// FormatCurrency renders value as an amount of the ISO 4217 currency code.
func FormatCurrency(value any, loc, code string, overrides ...Override) result.Outcome[string] {
	return FormatWith(locale.New(), value, loc, locale.StyleCurrency, locale.Options{Currency: code}, overrides...)
}

// FormatPercent renders value (0.25 is 25%) with a fixed number of fractional digits.
func FormatPercent(value any, loc string, decimals int, overrides ...Override) result.Outcome[string] {
	return FormatWith(locale.New(), value, loc, locale.StylePercent, locale.Options{FractionDigits: &decimals}, overrides...)
}
