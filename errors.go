package again

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrTimeout matches every [*TimeoutError] when used with [errors.Is].
	ErrTimeout = errors.New("attempt timed out")

	// ErrInvalidConfig is wrapped by every error returned from [Config.Validate].
	ErrInvalidConfig = errors.New("invalid retry config")

	// ErrNoAttempts is returned if the retry loop ends without producing a
	// result or an error. It should never be seen in practice.
	ErrNoAttempts = errors.New("retry loop ended without an attempt result")
)

// TimeoutError is returned when a single attempt runs longer than the
// configured [Timeout]. It is produced by the retrier, never by the
// operation, so it can be told apart from the operation's own errors with
// [errors.As] or [IsTimeout].
type TimeoutError struct {
	// Attempt is the 1-based number of the attempt that timed out.
	Attempt int
	// After is the per-attempt bound that was exceeded.
	After time.Duration
}

// Error implements the error interface.
func (te *TimeoutError) Error() string {
	return fmt.Sprintf("attempt %d timed out after %v", te.Attempt, te.After)
}

// Is reports whether target is [ErrTimeout].
func (te *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

// Timeout always returns true. It lets a *TimeoutError satisfy the same
// informal interface as net.Error.
func (te *TimeoutError) Timeout() bool {
	return true
}

// IsTimeout returns true if err is, or wraps, a [*TimeoutError].
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// ObserverError is returned when an [OnRetryFunc] returns an error. The
// error from the observer is combined with the attempt error that caused the
// retry, so both can be inspected with [errors.Is] and [errors.As].
// To get just the attempt error, use [errors.As] to get the *ObserverError
// value and call the [ObserverError.RetryErr] method.
type ObserverError struct {
	err      error
	retryErr error
}

// Error implements the error interface.
func (oe *ObserverError) Error() string {
	return fmt.Sprintf("retry observer: %s (retrying: %s)", oe.err, oe.retryErr)
}

// Unwrap allows an *ObserverError to work with [errors.Is] and [errors.As].
func (oe *ObserverError) Unwrap() []error {
	return []error{oe.err, oe.retryErr}
}

// RetryErr returns the attempt error that the observer was called with.
func (oe *ObserverError) RetryErr() error {
	return oe.retryErr
}

func errObserver(observerErr, retryErr error) *ObserverError {
	return &ObserverError{
		err:      observerErr,
		retryErr: retryErr,
	}
}

type haltErr struct {
	err error
}

func (he *haltErr) Error() string {
	return he.err.Error()
}

func (he *haltErr) Unwrap() error {
	return he.err
}

// Halt allows you to stop the retry loop from within the operation itself.
// Simply:
//
//	return zero, again.Halt(err)
//
// The loop ends immediately and no observer is called. When Halt is the
// outermost wrap, err is returned to the caller as-is. When the halt is
// itself wrapped, as in fmt.Errorf("fetch: %w", again.Halt(err)), the whole
// chain is returned; the marker adds nothing to its message and err is still
// reachable with [errors.Is] and [errors.As]. Halt(nil) returns nil.
func Halt(err error) error {
	if err == nil {
		return nil
	}
	return &haltErr{err}
}
