package again

import (
	"time"

	"github.com/benbjohnson/clock"
)

// Option represents an optional retry setting.
type Option func(o *opts)

// WithConfig applies the settings in a [Config] to a run, allowing you to
// reuse a set of options for multiple operations. Every field is copied,
// including zero values.
func WithConfig(c Config) Option {
	return func(o *opts) {
		o.Config = c
	}
}

// Retries sets the number of retries after the first attempt. Zero makes a
// single attempt. Defaults to DefaultRetries (3).
func Retries(n int) Option {
	return func(o *opts) {
		o.Retries = n
	}
}

// InitialDelay sets the delay before the first retry. Defaults to
// DefaultInitialDelay (100 * time.Millisecond).
func InitialDelay(duration time.Duration) Option {
	return func(o *opts) {
		o.InitialDelay = duration
	}
}

// Factor sets the multiplier applied to the delay after each failed
// attempt. Defaults to DefaultFactor (2).
func Factor(f float64) Option {
	return func(o *opts) {
		o.Factor = f
	}
}

// OnRetry allows you to set a function to be called after each failed
// attempt that will be retried, before the backoff delay. It is never called
// for the final attempt. Defaults to nil, which will take no action.
//
// See the observer package for logging and metrics implementations.
func OnRetry(fn OnRetryFunc) Option {
	return func(o *opts) {
		o.OnRetry = fn
	}
}

// Timeout bounds each individual attempt. An attempt that runs longer fails
// with a [*TimeoutError] and its context is cancelled with that error as the
// cause. Zero disables the bound, which is the default.
func Timeout(duration time.Duration) Option {
	return func(o *opts) {
		o.Timeout = duration
	}
}

// WithClock sets the clock used for backoff and timeout timers. Defaults to
// the system clock.
func WithClock(c clock.Clock) Option {
	return func(o *opts) {
		o.clock = c
	}
}

type opts struct {
	Config
	clock clock.Clock
}

func newOpts(options []Option) *opts {
	o := &opts{Config: DefaultConfig()}
	for _, opt := range options {
		opt(o)
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	return o
}
