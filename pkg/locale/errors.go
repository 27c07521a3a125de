package locale

import "errors"

var (
	// ErrInvalidLocale is returned when the locale identifier is not a valid BCP 47 tag.
	ErrInvalidLocale = errors.New("invalid locale")

	// ErrInvalidCurrency is returned when the currency code is missing or not a known ISO 4217 code.
	ErrInvalidCurrency = errors.New("invalid currency")

	// ErrInvalidOption is returned for out-of-range or unsupported formatting options.
	ErrInvalidOption = errors.New("invalid formatting option")
)
