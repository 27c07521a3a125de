package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// maxBodyBytes bounds request bodies; the largest useful payload is a
// maximum-length string plus a config object.
const maxBodyBytes = 1 << 20

// Request is the body of an operation call.
type Request struct {
	Args    []any           `json:"args"`
	Config  json.RawMessage `json:"config,omitempty"`
	Profile string          `json:"profile,omitempty"`
}

// bindRequest decodes a strict JSON Request. Numbers stay json.Number so
// integers keep full precision. A missing Content-Type is treated as JSON.
func bindRequest(w http.ResponseWriter, r *http.Request) (Request, error) {
	var req Request

	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || mediaType != "application/json" {
			return req, fmt.Errorf("%w: got %q, expected application/json", ErrUnsupportedMediaType, ct)
		}
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return req, fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}
		return req, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return req, fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
	}
	return req, nil
}

// decodeConfig decodes a raw override object into dst. null and an absent
// config leave dst untouched.
func decodeConfig(raw json.RawMessage, dst any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
