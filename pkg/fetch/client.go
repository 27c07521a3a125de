package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/safeop/pkg/logger"
	"github.com/dmitrymomot/safeop/pkg/result"
)

// Reply is the result of a Fetch.
//
// For a 2xx response decoded as JSON, Data holds the value (numbers as
// json.Number) and Response.Body is already closed. For a non-2xx response,
// or with WithRaw, Data is nil and the caller must close Response.Body.
type Reply struct {
	Response *http.Response
	Data     any
}

// Success reports whether the status code is 2xx.
func (r *Reply) Success() bool {
	return r != nil && r.Response != nil && r.Response.StatusCode >= 200 && r.Response.StatusCode < 300
}

// Client performs single-attempt JSON requests.
type Client struct {
	http *http.Client
	log  *slog.Logger
}

// NewClient returns a Client using http.DefaultClient and no logging unless
// options say otherwise.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		http: http.DefaultClient,
		log:  logger.Noop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch sends one request to url. Transport faults are returned as errors,
// as is a 2xx body that is not valid JSON (wrapping ErrDecode). Fetch does
// not retry and sets no timeout beyond ctx.
func (c *Client) Fetch(ctx context.Context, url string, opts ...Option) (*Reply, error) {
	req := &request{method: http.MethodGet, header: make(http.Header)}
	for _, opt := range opts {
		opt(req)
	}

	var body io.Reader
	if req.body != nil {
		buf, err := json.Marshal(req.body)
		if err != nil {
			return nil, errors.Join(ErrRequest, err)
		}
		body = bytes.NewReader(buf)
		if req.header.Get("Content-Type") == "" {
			req.header.Set("Content-Type", "application/json")
		}
	}

	hreq, err := http.NewRequestWithContext(ctx, req.method, url, body)
	if err != nil {
		return nil, errors.Join(ErrRequest, err)
	}
	for k, vs := range req.header {
		hreq.Header[k] = vs
	}
	if !req.raw && hreq.Header.Get("Accept") == "" {
		hreq.Header.Set("Accept", "application/json")
	}

	started := time.Now()
	resp, err := c.http.Do(hreq)
	if err != nil {
		c.log.DebugContext(ctx, "fetch failed",
			logger.Component("fetch"), slog.String("url", url), logger.Error(err))
		return nil, err
	}
	c.log.DebugContext(ctx, "fetch completed",
		logger.Component("fetch"),
		slog.String("method", req.method),
		slog.String("url", url),
		logger.Status(resp.StatusCode),
		logger.Duration(time.Since(started)),
	)

	reply := &Reply{Response: resp}
	if req.raw || !reply.Success() {
		return reply, nil
	}

	defer resp.Body.Close()
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&reply.Data); err != nil {
		if errors.Is(err, io.EOF) {
			return reply, nil
		}
		return nil, errors.Join(ErrDecode, err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrDecode, ErrTrailingData, err)
	}
	return reply, nil
}

// Safe runs Fetch through the suspending adapter: it never returns an error
// or panics. Transport and decode faults become collaborator failures and a
// context that ends first becomes a canceled failure. A reply that arrives
// after the caller gave up has its body closed.
func Safe(ctx context.Context, c *Client, url string, opts ...Option) result.Outcome[*Reply] {
	fut := result.Go(ctx, func(ctx context.Context) (*Reply, error) {
		reply, err := c.Fetch(ctx, url, opts...)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, result.Collaborator(err)
		}
		return reply, nil
	})

	select {
	case <-fut.Done():
		return fut.Await()
	case <-ctx.Done():
		go discard(fut)
		return result.Fail[*Reply](result.FromError(ctx.Err()))
	}
}

func discard(fut *result.Future[*Reply]) {
	if reply, ok := fut.Await().Value(); ok && reply != nil && reply.Response != nil {
		reply.Response.Body.Close()
	}
}
