package api

import (
	"encoding/json"
	"net/http"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a request that could not be served. Operation
// failures are not errors at this level; they travel in Data.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes body before writing the status. Values JSON cannot
// represent (an allowed NaN result, for one) turn into a 500.
func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	buf, err := json.Marshal(body)
	if err != nil {
		status = http.StatusInternalServerError
		buf, _ = json.Marshal(Envelope{Error: &ErrorDetail{Code: "encoding_error", Message: err.Error()}})
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(append(buf, '\n'))
}

func writeError(w http.ResponseWriter, err error) {
	he := classify(err)
	writeJSON(w, he.status, Envelope{Error: &ErrorDetail{Code: he.code, Message: err.Error()}})
}
