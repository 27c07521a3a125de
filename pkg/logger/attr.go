package logger

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/safeop/pkg/result"
)

// Error records err under "error". A nil err yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Failure records the kind and message of f as a group under "failure".
// A nil f yields an empty Attr.
func Failure(f *result.Failure) slog.Attr {
	if f == nil {
		return slog.Attr{}
	}
	return slog.Group("failure",
		slog.String("kind", f.Kind.String()),
		slog.String("message", f.Message),
	)
}

// Operation records an operation name, such as "numeric.clamp".
func Operation(name string) slog.Attr {
	return slog.String("operation", name)
}

// RequestID records the request identifier. An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Status records an HTTP status code.
func Status(code int) slog.Attr {
	return slog.Int("status", code)
}
