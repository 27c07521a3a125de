package fetch

import "errors"

var (
	ErrRequest = errors.New("fetch: invalid request")
	ErrDecode  = errors.New("fetch: response body is not valid JSON")

	ErrTrailingData = errors.New("fetch: unexpected data after JSON body")
)
