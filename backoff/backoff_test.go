package backoff_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"andy.dev/again/backoff"
)

func TestSchedule(t *testing.T) {
	tests := []struct {
		name    string
		initial time.Duration
		factor  float64
		n       int
		want    []time.Duration
	}{
		{
			name:    "doubling",
			initial: 10 * time.Millisecond,
			factor:  2,
			n:       4,
			want:    []time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 40 * time.Millisecond, 80 * time.Millisecond},
		},
		{
			name:    "defaults",
			initial: 100 * time.Millisecond,
			factor:  2,
			n:       3,
			want:    []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 400 * time.Millisecond},
		},
		{
			name:    "constant",
			initial: 5 * time.Millisecond,
			factor:  1,
			n:       3,
			want:    []time.Duration{5 * time.Millisecond, 5 * time.Millisecond, 5 * time.Millisecond},
		},
		{
			name:    "shrinking",
			initial: 100 * time.Millisecond,
			factor:  0.5,
			n:       3,
			want:    []time.Duration{100 * time.Millisecond, 50 * time.Millisecond, 25 * time.Millisecond},
		},
		{
			name:    "zero factor collapses",
			initial: 100 * time.Millisecond,
			factor:  0,
			n:       3,
			want:    []time.Duration{100 * time.Millisecond, 0, 0},
		},
		{
			name:    "floors fractional nanoseconds",
			initial: 3,
			factor:  1.5,
			n:       4,
			want:    []time.Duration{3, 4, 6, 9},
		},
		{
			name:    "zero initial",
			initial: 0,
			factor:  2,
			n:       2,
			want:    []time.Duration{0, 0},
		},
		{
			name: "empty",
			n:    0,
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, backoff.Schedule(tt.initial, tt.factor, tt.n))
		})
	}
}

func TestScheduleMatchesClosedForm(t *testing.T) {
	d0 := 7 * time.Millisecond
	got := backoff.Schedule(d0, 3, 6)
	for i, d := range got {
		want := time.Duration(math.Floor(float64(d0) * math.Pow(3, float64(i))))
		assert.Equal(t, want, d, "retry %d", i+1)
	}
}

func TestNextSaturates(t *testing.T) {
	assert.Equal(t, time.Duration(math.MaxInt64), backoff.Next(time.Duration(math.MaxInt64/2), 10))
	assert.Equal(t, time.Duration(math.MaxInt64), backoff.Next(time.Hour, math.Inf(1)))
	assert.Equal(t, time.Duration(0), backoff.Next(time.Hour, math.NaN()))
}

func TestExponentialPanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { backoff.Exponential(-1, 2) })
}
