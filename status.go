package again

import (
	"context"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
)

type statusCtxKeyT string

const (
	statusCtxKey statusCtxKeyT = "again"
)

// GetStatus can be used to retrieve information about the current retry loop
// from within the operation being retried.
// It will return Status{} if not called in a retry context.
func GetStatus(ctx context.Context) Status {
	status, ok := ctx.Value(statusCtxKey).(Status)
	if !ok {
		return Status{}
	}
	return status
}

func withStatus(ctx context.Context, s Status) context.Context {
	return context.WithValue(ctx, statusCtxKey, s)
}

// Status represents the state of the current retry loop.
type Status struct {
	// Attempt is the 1-based number of the running attempt.
	Attempt int
	// MaxAttempts is the total number of attempts allowed, Retries+1.
	MaxAttempts int
	// Err is the error from the previous attempt, nil on the first.
	Err error
	// NextDelay is the backoff that follows if this attempt fails. It is
	// zero on the final attempt.
	NextDelay time.Duration
}

// Final reports whether this is the last allowed attempt.
func (s Status) Final() bool {
	return s.Attempt >= s.MaxAttempts
}

// String implements fmt.Stringer
func (s Status) String() string {
	if s.MaxAttempts <= 0 {
		return fmt.Sprintf("attempt %d", s.Attempt)
	}
	return fmt.Sprintf("attempt %d/%d", s.Attempt, s.MaxAttempts)
}

// Format implements fmt.Formatter it supports the %s, %v and %q print verbs.
// Output is flag-dependent:
//
//	%s -  "attempt #/#"
//	%+s - "attempt #/# - next in <duration>"
//
// The delay suffix is omitted on the final attempt.
func (s Status) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'q', 'v':
		str := s.String()
		if state.Flag('+') && !s.Final() {
			str = fmt.Sprintf("%s - next in %v", str, shortNext(s.NextDelay))
		}
		if verb == 'q' {
			str = fmt.Sprintf("%q", str)
		}
		fmt.Fprint(state, str)
	}
}

// Next returns a time.Time value representing the approximate time the next
// attempt will occur, assuming this one has just failed. It reads the system
// clock; use [Status.NextFrom] when the retrier was given [WithClock].
func (s Status) Next() time.Time {
	return time.Now().Add(s.NextDelay)
}

// NextFrom is like [Status.Next] but reads the current time from clk.
func (s Status) NextFrom(clk clock.Clock) time.Time {
	return clk.Now().Add(s.NextDelay)
}

// shortNext trims a delay for display: milliseconds below one second,
// rounded seconds above.
func shortNext(d time.Duration) time.Duration {
	if d < time.Second {
		return d.Truncate(time.Millisecond)
	}
	return d.Round(time.Second)
}
