// Package locale formats numbers for a locale, as plain decimals, currency
// amounts or percentages, using golang.org/x/text.
//
// The numeric operations depend on the Formatter interface rather than on
// this implementation, so tests and callers can substitute their own.
//
//	f := locale.New()
//	s, err := f.Format(1234.5, "de-DE", locale.StylePlain, locale.Options{})
//	// s == "1.234,5"
//
// Invalid locales, currencies and options are reported with errors wrapping
// ErrInvalidLocale, ErrInvalidCurrency and ErrInvalidOption. Each message
// names the offending value.
package locale
