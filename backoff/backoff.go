package backoff

import (
	"math"
	"time"
)

// maxintf serves as a backstop against float64->int64 overflow.
const maxintf = float64(math.MaxInt64) - 1

// Iterator yields the next delay in a schedule each time it is called.
type Iterator func() time.Duration

// Exponential returns an Iterator whose first value is initial and whose
// every following value is the previous one multiplied by factor and rounded
// down. A factor below 1 shrinks the schedule; a factor of 0 yields initial
// once and zero afterwards.
func Exponential(initial time.Duration, factor float64) Iterator {
	if initial < 0 {
		panic("initial delay must not be negative")
	}
	var (
		cur     = initial
		started bool
	)
	return func() time.Duration {
		if !started {
			started = true
			return cur
		}
		cur = Next(cur, factor)
		return cur
	}
}

// Next returns floor(delay * factor), saturating at the maximum
// time.Duration.
func Next(delay time.Duration, factor float64) time.Duration {
	out := math.Floor(float64(delay) * factor)
	switch {
	case out >= maxintf:
		return time.Duration(math.MaxInt64)
	case out <= 0 || math.IsNaN(out):
		return 0
	default:
		return time.Duration(out)
	}
}

// Schedule returns the first n delays produced by Exponential(initial, factor).
func Schedule(initial time.Duration, factor float64, n int) []time.Duration {
	if n <= 0 {
		return nil
	}
	next := Exponential(initial, factor)
	out := make([]time.Duration, n)
	for i := range out {
		out[i] = next()
	}
	return out
}
