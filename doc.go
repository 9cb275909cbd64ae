/*
Package again re-runs a fallible operation with exponential backoff, an
optional per-attempt timeout and an observer called on each failed attempt.

# Usage

Wrap the operation in a function that performs one attempt and pass it to [Do]
or, when there is no result value, [Run]:

	body, err := again.Do(ctx, func(ctx context.Context) ([]byte, error) {
		return fetch(ctx, url)
	}, again.Retries(5), again.Timeout(2*time.Second))

With no options, an operation is tried up to 4 times (3 retries) with delays
of 100ms, 200ms and 400ms between attempts. See [DefaultConfig].

Settings can be given as functional options or predeclared as a [Config] and
applied with [WithConfig]. A Config can also be decoded from YAML:

	retries: 5
	initial_delay: 250ms
	factor: 1.5
	timeout: 2s

# Retry Workflow

The operation is called until one of the following occurs:
  - It returns a nil error. Its value is returned.
  - The final attempt fails. Its error is returned unchanged.
  - It returns an error wrapped with [Halt]. The wrapped error is returned.
  - The [OnRetry] observer returns an error. An [*ObserverError] is returned.
  - The context is cancelled. [context.Cause] of the context is returned.

The delay before retry i is InitialDelay * Factor^(i-1), rounded down at each
step. There is no jitter.

# Timeouts

If [Timeout] is set, each attempt runs on its own goroutine and races a timer.
When the timer wins, the attempt fails with a [*TimeoutError] and its context
is cancelled with that error as the cause. The retrier does not wait for the
abandoned attempt to return; its eventual result is discarded.

# Observers

The observer package provides [OnRetryFunc] implementations that log retries
with zap, zerolog or slog, or count them with Prometheus.
*/
package again
