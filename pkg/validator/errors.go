package validator

import "errors"

var (
	// ErrValidationFailed is the cause used when a check rejects without a descriptor.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidSetting is returned when an override value cannot be decoded.
	ErrInvalidSetting = errors.New("invalid setting value")
)
