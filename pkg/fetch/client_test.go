package fetch_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/safeop/pkg/fetch"
	"github.com/dmitrymomot/safeop/pkg/logger"
	"github.com/dmitrymomot/safeop/pkg/numeric"
	"github.com/dmitrymomot/safeop/pkg/result"
)

func jsonServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch(t *testing.T) {
	t.Parallel()

	t.Run("decodes JSON on success", func(t *testing.T) {
		t.Parallel()
		srv := jsonServer(t, http.StatusOK, `{"values":[1,2,3.5]}`)

		reply, err := fetch.NewClient().Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		require.True(t, reply.Success())

		data, ok := reply.Data.(map[string]any)
		require.True(t, ok)
		values, ok := data["values"].([]any)
		require.True(t, ok)
		assert.Equal(t, json.Number("3.5"), values[2])

		sum := numeric.Sum(values)
		assert.Equal(t, 6.5, sum.ValueOr(0))
	})

	t.Run("empty success body", func(t *testing.T) {
		t.Parallel()
		srv := jsonServer(t, http.StatusNoContent, "")
		reply, err := fetch.NewClient().Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Nil(t, reply.Data)
	})

	t.Run("non-2xx returns the raw response", func(t *testing.T) {
		t.Parallel()
		srv := jsonServer(t, http.StatusNotFound, `not json`)

		reply, err := fetch.NewClient().Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.False(t, reply.Success())
		assert.Nil(t, reply.Data)
		require.NotNil(t, reply.Response)
		defer reply.Response.Body.Close()
		assert.Equal(t, http.StatusNotFound, reply.Response.StatusCode)

		body, err := io.ReadAll(reply.Response.Body)
		require.NoError(t, err)
		assert.Equal(t, "not json", string(body))
	})

	t.Run("raw skips decoding", func(t *testing.T) {
		t.Parallel()
		srv := jsonServer(t, http.StatusOK, `plain text`)

		reply, err := fetch.NewClient().Fetch(context.Background(), srv.URL, fetch.WithRaw())
		require.NoError(t, err)
		defer reply.Response.Body.Close()
		assert.Nil(t, reply.Data)
		body, _ := io.ReadAll(reply.Response.Body)
		assert.Equal(t, "plain text", string(body))
	})

	t.Run("invalid JSON on success", func(t *testing.T) {
		t.Parallel()
		srv := jsonServer(t, http.StatusOK, `{"broken":`)

		_, err := fetch.NewClient().Fetch(context.Background(), srv.URL)
		assert.ErrorIs(t, err, fetch.ErrDecode)
	})

	t.Run("trailing data after the JSON value", func(t *testing.T) {
		t.Parallel()
		srv := jsonServer(t, http.StatusOK, `{"a":1} this is not json`)

		_, err := fetch.NewClient().Fetch(context.Background(), srv.URL)
		assert.ErrorIs(t, err, fetch.ErrDecode)
		assert.ErrorIs(t, err, fetch.ErrTrailingData)
	})

	t.Run("second JSON value is trailing data", func(t *testing.T) {
		t.Parallel()
		srv := jsonServer(t, http.StatusOK, `{"a":1}{"b":2}`)

		_, err := fetch.NewClient().Fetch(context.Background(), srv.URL)
		assert.ErrorIs(t, err, fetch.ErrTrailingData)
	})

	t.Run("trailing whitespace is fine", func(t *testing.T) {
		t.Parallel()
		srv := jsonServer(t, http.StatusOK, "{\"a\":1}\n\n")

		reply, err := fetch.NewClient().Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": json.Number("1")}, reply.Data)
	})

	t.Run("transport fault is returned", func(t *testing.T) {
		t.Parallel()
		srv := jsonServer(t, http.StatusOK, `{}`)
		url := srv.URL
		srv.Close()

		_, err := fetch.NewClient().Fetch(context.Background(), url)
		assert.Error(t, err)
	})

	t.Run("bad url", func(t *testing.T) {
		t.Parallel()
		_, err := fetch.NewClient().Fetch(context.Background(), "http://[::1")
		assert.ErrorIs(t, err, fetch.ErrRequest)
	})

	t.Run("method, headers and JSON body", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			assert.Equal(t, "token", r.Header.Get("X-Api-Key"))
			_, _ = io.Copy(w, r.Body)
		}))
		t.Cleanup(srv.Close)

		buf := &bytes.Buffer{}
		client := fetch.NewClient(
			fetch.WithHTTPClient(srv.Client()),
			fetch.WithLogger(logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))),
		)
		reply, err := client.Fetch(context.Background(), srv.URL,
			fetch.WithMethod(http.MethodPost),
			fetch.WithHeader("X-Api-Key", "token"),
			fetch.WithJSONBody(map[string]any{"n": 1}),
		)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"n": json.Number("1")}, reply.Data)
		assert.Contains(t, buf.String(), "fetch completed")
	})
}

func TestSafe(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		srv := jsonServer(t, http.StatusOK, `[1,2]`)

		out := fetch.Safe(context.Background(), fetch.NewClient(), srv.URL)
		require.True(t, out.OK())
		reply, _ := out.Value()
		assert.Equal(t, []any{json.Number("1"), json.Number("2")}, reply.Data)
	})

	t.Run("decode fault is a collaborator failure", func(t *testing.T) {
		t.Parallel()
		srv := jsonServer(t, http.StatusOK, `{`)

		out := fetch.Safe(context.Background(), fetch.NewClient(), srv.URL)
		require.True(t, out.Failed())
		assert.Equal(t, result.KindCollaborator, out.Failure().Kind)
		assert.ErrorIs(t, out.Err(), fetch.ErrDecode)
	})

	t.Run("transport fault is a collaborator failure", func(t *testing.T) {
		t.Parallel()
		srv := jsonServer(t, http.StatusOK, `{}`)
		url := srv.URL
		srv.Close()

		out := fetch.Safe(context.Background(), fetch.NewClient(), url)
		require.True(t, out.Failed())
		assert.Equal(t, result.KindCollaborator, out.Failure().Kind)
	})

	t.Run("cancellation is captured, not orphaned", func(t *testing.T) {
		t.Parallel()
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		t.Cleanup(func() {
			close(release)
			srv.Close()
		})

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		out := fetch.Safe(ctx, fetch.NewClient(), srv.URL)
		require.True(t, out.Failed())
		assert.Equal(t, result.KindCanceled, out.Failure().Kind)
	})

	t.Run("late reply body is closed", func(t *testing.T) {
		t.Parallel()
		release := make(chan struct{})
		body := &trackedBody{Reader: strings.NewReader("late"), closed: make(chan struct{})}
		client := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			<-release
			return &http.Response{StatusCode: http.StatusOK, Body: body, Header: http.Header{}, Request: r}, nil
		})}

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(20 * time.Millisecond)
			cancel()
		}()

		out := fetch.Safe(ctx, fetch.NewClient(fetch.WithHTTPClient(client)), "http://example.test", fetch.WithRaw())
		require.True(t, out.Failed())
		assert.Equal(t, result.KindCanceled, out.Failure().Kind)

		close(release)
		select {
		case <-body.closed:
		case <-time.After(time.Second):
			t.Fatal("response body was not closed")
		}
	})
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

type trackedBody struct {
	io.Reader
	once   sync.Once
	closed chan struct{}
}

func (b *trackedBody) Close() error {
	b.once.Do(func() { close(b.closed) })
	return nil
}
