package fetch

import (
	"log/slog"
	"net/http"
)

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets the transport client. Nil keeps http.DefaultClient.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger for request events. Nil keeps the no-op logger.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// Option configures a single Fetch call.
type Option func(*request)

type request struct {
	method string
	header http.Header
	body   any
	raw    bool
}

// WithMethod sets the HTTP method. Default is GET.
func WithMethod(method string) Option {
	return func(r *request) { r.method = method }
}

// WithHeader adds a request header.
func WithHeader(key, value string) Option {
	return func(r *request) { r.header.Add(key, value) }
}

// WithJSONBody encodes v as the JSON request body.
func WithJSONBody(v any) Option {
	return func(r *request) { r.body = v }
}

// WithRaw returns the response undecoded; the caller closes its body.
func WithRaw() Option {
	return func(r *request) { r.raw = true }
}
