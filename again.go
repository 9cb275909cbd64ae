package again

import (
	"context"
	"errors"
	"runtime"
	"time"

	"github.com/benbjohnson/clock"

	"andy.dev/again/backoff"
)

// Operation is one attempt of the work being retried. It is called afresh for
// every attempt, so it must not depend on state left over from a previous
// call unless it means to.
type Operation[T any] func(ctx context.Context) (T, error)

// Run is a retrier for operations that only return an error. See [Do].
func Run(
	ctx context.Context,
	fn func(context.Context) error,
	options ...Option,
) error {
	_, err := Do(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	}, options...)
	return err
}

// Do calls op until it succeeds or the configured retries are used up,
// sleeping with exponential backoff in between.
//
// It returns the value of the first successful attempt, or the error of the
// final attempt exactly as op returned it. Errors from earlier attempts are
// only visible through [OnRetry]. For the other ways the loop can end, see
// the package documentation.
func Do[T any](
	ctx context.Context,
	op Operation[T],
	options ...Option,
) (T, error) {
	var zero T
	o := newOpts(options)
	if err := o.Validate(); err != nil {
		return zero, err
	}
	next := backoff.Exponential(o.InitialDelay, o.Factor)
	var lastErr error
	for try := 0; try <= o.Retries; try++ {
		final := try == o.Retries
		status := Status{
			Attempt:     try + 1,
			MaxAttempts: o.Retries + 1,
			Err:         lastErr,
		}
		// prefetch the next delay so that the operation can see it in its status.
		delay := next()
		if !final {
			status.NextDelay = delay
		}
		val, err := attempt(withStatus(ctx, status), op, o, try+1)
		if err == nil {
			return val, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return zero, context.Cause(ctx)
		}
		var he *haltErr
		if errors.As(err, &he) {
			if err == error(he) {
				return zero, he.err
			}
			// wrapped halt marker is transparent; keep the caller's context
			return zero, err
		}
		if final {
			return zero, err
		}
		if o.OnRetry != nil {
			if oerr := o.OnRetry(err, try+1); oerr != nil {
				return zero, errObserver(oerr, err)
			}
		}
		if err := sleep(ctx, o.clock, delay); err != nil {
			return zero, err
		}
	}
	return zero, ErrNoAttempts
}

type result[T any] struct {
	val      T
	err      error
	panicked bool
	panicVal any
	goexit   bool
}

// attempt runs op once. With a timeout configured, op runs on its own
// goroutine and races a timer; the loser is abandoned.
func attempt[T any](ctx context.Context, op Operation[T], o *opts, n int) (T, error) {
	if o.Timeout <= 0 {
		return op(ctx)
	}
	var zero T
	actx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)
	timer := o.clock.Timer(o.Timeout)
	defer timer.Stop()

	// Buffered so an abandoned attempt can always deliver and exit.
	done := make(chan result[T], 1)
	go func() {
		var (
			r         result[T]
			completed bool
		)
		defer func() {
			if p := recover(); p != nil {
				r = result[T]{panicked: true, panicVal: p}
			} else if !completed {
				// op called runtime.Goexit
				r = result[T]{goexit: true}
			}
			done <- r
		}()
		r.val, r.err = op(actx)
		completed = true
	}()

	select {
	case r := <-done:
		switch {
		case r.panicked:
			panic(r.panicVal)
		case r.goexit:
			runtime.Goexit()
		}
		return r.val, r.err
	case <-timer.C:
		terr := &TimeoutError{Attempt: n, After: o.Timeout}
		cancel(terr)
		return zero, terr
	case <-ctx.Done():
		cause := context.Cause(ctx)
		cancel(cause)
		return zero, cause
	}
}

// sleep waits for d, returning early with the context's cause if ctx is
// done first.
func sleep(ctx context.Context, clk clock.Clock, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := clk.Timer(d)
	select {
	case <-ctx.Done():
		t.Stop()
		return context.Cause(ctx)
	case <-t.C:
		return nil
	}
}
