package result

import (
	"context"
	"time"
)

// Future is the pending Outcome of a computation started with Go.
type Future[T any] struct {
	outcome Outcome[T]
	done    chan struct{}
}

// Go starts fn in its own goroutine and returns immediately.
// The computation is wrapped by Run, so a panic inside fn becomes a Failure.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		// Skip the work entirely when ctx is already done.
		if err := ctx.Err(); err != nil {
			f.outcome = Fail[T](FromError(err))
			return
		}

		f.outcome = Run(func() (T, error) { return fn(ctx) })
	}()

	return f
}

// Await blocks until the computation completes.
func (f *Future[T]) Await() Outcome[T] {
	<-f.done
	return f.outcome
}

// AwaitTimeout waits at most d. When d elapses first the Outcome is a
// KindCanceled failure wrapping ErrTimeout; the computation keeps running.
func (f *Future[T]) AwaitTimeout(d time.Duration) Outcome[T] {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.outcome
	case <-timer.C:
		return Fail[T](NewFailure(KindCanceled, "", ErrTimeout))
	}
}

// Done is closed once the computation has finished.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// IsComplete reports whether the computation has finished, without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
