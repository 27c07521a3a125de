package numeric

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dmitrymomot/safeop/pkg/result"
	"github.com/dmitrymomot/safeop/pkg/validator"
)

// ToText renders value as the shortest decimal string that parses back to it.
func ToText(value any, overrides ...Override) result.Outcome[string] {
	return result.Run(func() (string, error) {
		ns, err := operands(validator.MergeNumber(overrides...), value)
		if err != nil {
			return "", err
		}
		return validator.FormatFloat(ns[0]), nil
	})
}

// Parse reads a number from text. The text runs through the default text
// pipeline first; the parsed number then runs through the numeric pipeline
// with the given overrides.
func Parse(text any, overrides ...Override) result.Outcome[float64] {
	return result.Run(func() (float64, error) {
		s, err := validator.ValidateText(text, validator.DefaultTextConfig())
		if err != nil {
			return 0, err
		}

		n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return 0, result.NewFailure(result.KindMagnitude, MsgNumberTextRange, err)
			}
			return 0, result.NewFailure(result.KindType, MsgInvalidNumberText, err)
		}

		return validator.ValidateNumber(n, validator.MergeNumber(overrides...))
	})
}
