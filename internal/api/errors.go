package api

import (
	"errors"
	"net/http"
)

var (
	ErrUnknownOperation     = errors.New("unknown operation")
	ErrUnknownProfile       = errors.New("unknown profile")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrInvalidConfig        = errors.New("invalid config")
	ErrTooManyArguments     = errors.New("too many arguments")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
)

// httpError pairs an error code with the status it is served with.
type httpError struct {
	status int
	code   string
}

// classify maps request errors to their HTTP status and error code.
func classify(err error) httpError {
	switch {
	case errors.Is(err, ErrUnknownOperation):
		return httpError{http.StatusNotFound, "unknown_operation"}
	case errors.Is(err, ErrUnknownProfile):
		return httpError{http.StatusNotFound, "unknown_profile"}
	case errors.Is(err, ErrUnsupportedMediaType):
		return httpError{http.StatusUnsupportedMediaType, "unsupported_media_type"}
	case errors.Is(err, ErrInvalidJSON):
		return httpError{http.StatusBadRequest, "invalid_json"}
	case errors.Is(err, ErrInvalidConfig):
		return httpError{http.StatusBadRequest, "invalid_config"}
	case errors.Is(err, ErrTooManyArguments):
		return httpError{http.StatusBadRequest, "too_many_arguments"}
	default:
		return httpError{http.StatusInternalServerError, "internal_error"}
	}
}
