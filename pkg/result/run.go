package result

import "context"

// Run executes fn and captures its outcome. A returned error or a panic is
// converted into a Failure; Run itself never panics.
func Run[T any](fn func() (T, error)) (out Outcome[T]) {
	defer func() {
		if r := recover(); r != nil {
			out = Fail[T](fromPanic(r))
		}
	}()

	v, err := fn()
	if err != nil {
		return Fail[T](FromError(err))
	}
	return Success(v)
}

// RunContext is the suspending form of Run. fn runs on its own goroutine and
// receives ctx; the caller waits for it or for ctx to end, whichever is first.
// When ctx ends first the Outcome is a KindCanceled failure, and fn is
// expected to observe the same cancellation and return.
func RunContext[T any](ctx context.Context, fn func(context.Context) (T, error)) Outcome[T] {
	f := Go(ctx, fn)

	select {
	case <-f.Done():
		return f.Await()
	case <-ctx.Done():
		return Fail[T](FromError(ctx.Err()))
	}
}
