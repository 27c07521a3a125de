package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// MaxFractionDigits is the largest fractional digit count accepted in Options.
const MaxFractionDigits = 20

// Style selects how a number is rendered.
type Style uint8

const (
	StylePlain Style = iota
	StyleCurrency
	StylePercent
)

func (s Style) String() string {
	switch s {
	case StylePlain:
		return "plain"
	case StyleCurrency:
		return "currency"
	case StylePercent:
		return "percent"
	default:
		return fmt.Sprintf("style(%d)", uint8(s))
	}
}

// Options carries style-specific settings.
type Options struct {
	// Currency is an ISO 4217 code, required for StyleCurrency.
	Currency string
	// FractionDigits fixes the number of fractional digits when non-nil.
	FractionDigits *int
}

// Formatter renders numbers for a locale.
type Formatter interface {
	Format(value float64, locale string, style Style, opts Options) (string, error)
}

// TextFormatter implements Formatter on top of golang.org/x/text.
type TextFormatter struct{}

// New returns the x/text backed formatter.
func New() *TextFormatter {
	return &TextFormatter{}
}

// Format renders value in the given locale and style.
// Currency amounts use the currency's standard scale unless FractionDigits is set.
func (TextFormatter) Format(value float64, locale string, style Style, opts Options) (string, error) {
	tag, err := parseLocale(locale)
	if err != nil {
		return "", err
	}

	var numOpts []number.Option
	if opts.FractionDigits != nil {
		d := *opts.FractionDigits
		if d < 0 || d > MaxFractionDigits {
			return "", fmt.Errorf("%w: fraction digits must be between 0 and %d, got %d", ErrInvalidOption, MaxFractionDigits, d)
		}
		numOpts = append(numOpts, number.MinFractionDigits(d), number.MaxFractionDigits(d))
	}

	p := message.NewPrinter(tag)

	switch style {
	case StylePlain:
		return p.Sprint(number.Decimal(value, numOpts...)), nil

	case StylePercent:
		return p.Sprint(number.Percent(value, numOpts...)), nil

	case StyleCurrency:
		unit, err := parseCurrency(opts.Currency)
		if err != nil {
			return "", err
		}
		if opts.FractionDigits == nil {
			scale, _ := currency.Standard.Rounding(unit)
			numOpts = append(numOpts, number.MinFractionDigits(scale), number.MaxFractionDigits(scale))
		}
		return unit.String() + " " + p.Sprint(number.Decimal(value, numOpts...)), nil

	default:
		return "", fmt.Errorf("%w: unsupported style %s", ErrInvalidOption, style)
	}
}

func parseLocale(id string) (language.Tag, error) {
	if strings.TrimSpace(id) == "" {
		return language.Und, fmt.Errorf("%w: locale is required", ErrInvalidLocale)
	}
	tag, err := language.Parse(id)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q", ErrInvalidLocale, id)
	}
	return tag, nil
}

func parseCurrency(code string) (currency.Unit, error) {
	if strings.TrimSpace(code) == "" {
		return currency.Unit{}, fmt.Errorf("%w: currency code is required", ErrInvalidCurrency)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
	}
	return unit, nil
}
