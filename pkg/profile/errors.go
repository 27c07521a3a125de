package profile

import "errors"

var (
	ErrParse          = errors.New("profile: failed to parse YAML")
	ErrInvalidProfile = errors.New("profile: invalid profile")
	ErrReadFile       = errors.New("profile: failed to read file")
)
