package result_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/safeop/pkg/result"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("captures success value", func(t *testing.T) {
		t.Parallel()
		out := result.Run(func() (int, error) { return 42, nil })
		require.True(t, out.OK())
		v, ok := out.Value()
		assert.True(t, ok)
		assert.Equal(t, 42, v)
		assert.Nil(t, out.Failure())
		assert.NoError(t, out.Err())
	})

	t.Run("zero and false are successes", func(t *testing.T) {
		t.Parallel()
		zero := result.Run(func() (float64, error) { return 0, nil })
		assert.True(t, zero.OK())
		assert.False(t, zero.Failed())

		no := result.Run(func() (bool, error) { return false, nil })
		assert.True(t, no.OK())
		assert.False(t, no.ValueOr(true))
	})

	t.Run("keeps kind and message of a returned failure", func(t *testing.T) {
		t.Parallel()
		out := result.Run(func() (int, error) {
			return 0, result.Constraint("Minimum value cannot be greater than maximum value")
		})
		require.True(t, out.Failed())
		assert.Equal(t, result.KindConstraint, out.Failure().Kind)
		assert.Equal(t, "Minimum value cannot be greater than maximum value", out.Failure().Message)
	})

	t.Run("keeps a failure wrapped by another error", func(t *testing.T) {
		t.Parallel()
		out := result.Run(func() (int, error) {
			return 0, fmt.Errorf("outer: %w", result.Magnitude("too large"))
		})
		require.True(t, out.Failed())
		assert.Equal(t, result.KindMagnitude, out.Failure().Kind)
		assert.Equal(t, "too large", out.Failure().Message)
	})

	t.Run("foreign error becomes unexpected with cause", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		out := result.Run(func() (string, error) { return "ignored", boom })
		require.True(t, out.Failed())
		assert.Equal(t, result.KindUnexpected, out.Failure().Kind)
		assert.Equal(t, "boom", out.Failure().Message)
		assert.ErrorIs(t, out.Err(), boom)

		v, ok := out.Value()
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("recovers panics", func(t *testing.T) {
		t.Parallel()
		out := result.Run(func() (int, error) { panic("kaboom") })
		require.True(t, out.Failed())
		assert.Equal(t, result.KindUnexpected, out.Failure().Kind)
		assert.Equal(t, "kaboom", out.Failure().Message)
		assert.ErrorIs(t, out.Err(), result.ErrPanic)
	})

	t.Run("recovers panics with error values", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("index out of range")
		out := result.Run(func() (int, error) { panic(cause) })
		require.True(t, out.Failed())
		assert.ErrorIs(t, out.Err(), cause)
		assert.ErrorIs(t, out.Err(), result.ErrPanic)
	})
}

func TestFailure(t *testing.T) {
	t.Parallel()

	t.Run("never has an empty message", func(t *testing.T) {
		t.Parallel()
		f := result.NewFailure(result.KindPolicy, "", nil)
		assert.NotEmpty(t, f.Message)

		g := result.NewFailure(result.KindCollaborator, "", errors.New("invalid locale"))
		assert.Equal(t, "invalid locale", g.Message)
	})

	t.Run("Fail with nil still fails", func(t *testing.T) {
		t.Parallel()
		out := result.Fail[int](nil)
		require.True(t, out.Failed())
		assert.NotEmpty(t, out.Failure().Message)
	})

	t.Run("errors.Is matches kind and message", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("wrapped: %w", result.Policy("Value cannot be negative"))
		assert.ErrorIs(t, err, result.Policy("Value cannot be negative"))
		assert.NotErrorIs(t, err, result.Constraint("Value cannot be negative"))
	})

	t.Run("kind names", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "presence", result.KindPresence.String())
		assert.Equal(t, "magnitude", result.KindMagnitude.String())
		assert.Equal(t, "kind(200)", result.Kind(200).String())
	})
}

func TestMapAndAny(t *testing.T) {
	t.Parallel()

	doubled := result.Map(result.Success(21), func(v int) int { return v * 2 })
	assert.Equal(t, 42, doubled.ValueOr(0))

	failed := result.Map(result.Fail[int](result.Presence("Value is required")), func(v int) string {
		t.Fatal("must not be called")
		return ""
	})
	assert.Equal(t, "Value is required", failed.Failure().Message)

	erased := result.Any(result.Success(3.5))
	v, ok := erased.Value()
	require.True(t, ok)
	assert.Equal(t, 3.5, v)
}

func TestOutcome_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("success keeps zero value", func(t *testing.T) {
		t.Parallel()
		data, err := json.Marshal(result.Success(0))
		require.NoError(t, err)
		assert.JSONEq(t, `{"ok":true,"value":0}`, string(data))
	})

	t.Run("failure carries kind and message", func(t *testing.T) {
		t.Parallel()
		data, err := json.Marshal(result.Fail[int](result.Policy("Array cannot be empty")))
		require.NoError(t, err)
		assert.JSONEq(t, `{"ok":false,"error":{"kind":"policy","message":"Array cannot be empty"}}`, string(data))
	})
}

func TestRunContext(t *testing.T) {
	t.Parallel()

	t.Run("returns the computation outcome", func(t *testing.T) {
		t.Parallel()
		out := result.RunContext(context.Background(), func(ctx context.Context) (string, error) {
			time.Sleep(10 * time.Millisecond)
			return "done", nil
		})
		assert.Equal(t, "done", out.ValueOr(""))
	})

	t.Run("captures errors", func(t *testing.T) {
		t.Parallel()
		out := result.RunContext(context.Background(), func(ctx context.Context) (int, error) {
			return 0, errors.New("connection refused")
		})
		require.True(t, out.Failed())
		assert.Equal(t, "connection refused", out.Failure().Message)
	})

	t.Run("cancellation becomes a captured failure", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		stopped := make(chan struct{})
		out := result.RunContext(ctx, func(ctx context.Context) (int, error) {
			defer close(stopped)
			<-ctx.Done()
			return 0, ctx.Err()
		})
		require.True(t, out.Failed())
		assert.Equal(t, result.KindCanceled, out.Failure().Kind)
		assert.ErrorIs(t, out.Err(), context.DeadlineExceeded)

		select {
		case <-stopped:
		case <-time.After(time.Second):
			t.Fatal("suspended computation was orphaned")
		}
	})

	t.Run("pre-canceled context skips the work", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		called := make(chan struct{}, 1)
		f := result.Go(ctx, func(ctx context.Context) (int, error) {
			called <- struct{}{}
			return 1, nil
		})
		out := f.Await()
		require.True(t, out.Failed())
		assert.Equal(t, result.KindCanceled, out.Failure().Kind)
		assert.Empty(t, called)
	})
}

func TestFuture(t *testing.T) {
	t.Parallel()

	t.Run("IsComplete flips after completion", func(t *testing.T) {
		t.Parallel()
		release := make(chan struct{})
		f := result.Go(context.Background(), func(ctx context.Context) (bool, error) {
			<-release
			return true, nil
		})
		assert.False(t, f.IsComplete())
		close(release)
		out := f.Await()
		assert.True(t, out.ValueOr(false))
		assert.True(t, f.IsComplete())
	})

	t.Run("AwaitTimeout gives up", func(t *testing.T) {
		t.Parallel()
		release := make(chan struct{})
		defer close(release)
		f := result.Go(context.Background(), func(ctx context.Context) (int, error) {
			<-release
			return 1, nil
		})
		out := f.AwaitTimeout(10 * time.Millisecond)
		require.True(t, out.Failed())
		assert.ErrorIs(t, out.Err(), result.ErrTimeout)
	})

	t.Run("panic in goroutine is captured", func(t *testing.T) {
		t.Parallel()
		f := result.Go(context.Background(), func(ctx context.Context) (int, error) {
			var m map[string]int
			m["x"] = 1
			return 0, nil
		})
		out := f.Await()
		require.True(t, out.Failed())
		assert.ErrorIs(t, out.Err(), result.ErrPanic)
	})
}
