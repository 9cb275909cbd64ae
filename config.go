package again

import (
	"fmt"
	"math"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRetries      = 3
	DefaultInitialDelay = 100 * time.Millisecond
	DefaultFactor       = 2.0
)

// OnRetryFunc observes a failed attempt that is about to be retried. It is
// passed the attempt's error and the 1-based number of the attempt that
// failed. Returning a non-nil error aborts the retry loop with an
// [*ObserverError].
type OnRetryFunc func(err error, attempt int) error

// Config allows you to predefine all of the settings for a retry run ahead of
// time and apply them using [WithConfig]. Start from [DefaultConfig]: a zero
// Config means a single attempt with no delay.
type Config struct {
	// Number of retries after the first attempt. Total attempts is Retries+1.
	// Default: 3
	Retries int `yaml:"retries"`
	// Delay before the first retry.
	// Default: 100ms
	InitialDelay time.Duration `yaml:"initial_delay"`
	// Multiplier applied to the delay after each failed attempt, rounding
	// down. Values below 1 shrink the delay; 0 makes every retry after the
	// first immediate.
	// Default: 2
	Factor float64 `yaml:"factor"`
	// Called after each failure that will be retried -- see [OnRetry]
	OnRetry OnRetryFunc `yaml:"-"`
	// Bound on each individual attempt. Zero means unbounded.
	// Default: 0
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultConfig returns the settings used when no options are given.
func DefaultConfig() Config {
	return Config{
		Retries:      DefaultRetries,
		InitialDelay: DefaultInitialDelay,
		Factor:       DefaultFactor,
	}
}

// Validate reports the first setting that cannot be used. All returned
// errors wrap [ErrInvalidConfig].
func (c Config) Validate() error {
	switch {
	case c.Retries < 0:
		return fmt.Errorf("%w: retries must not be negative, got %d", ErrInvalidConfig, c.Retries)
	case c.Retries == math.MaxInt:
		// Retries+1 attempts must fit in an int.
		return fmt.Errorf("%w: retries must be less than %d", ErrInvalidConfig, math.MaxInt)
	case c.InitialDelay < 0:
		return fmt.Errorf("%w: initial delay must not be negative, got %v", ErrInvalidConfig, c.InitialDelay)
	case c.Timeout < 0:
		return fmt.Errorf("%w: timeout must not be negative, got %v", ErrInvalidConfig, c.Timeout)
	case math.IsNaN(c.Factor) || math.IsInf(c.Factor, 0):
		return fmt.Errorf("%w: factor must be finite, got %v", ErrInvalidConfig, c.Factor)
	case c.Factor < 0:
		return fmt.Errorf("%w: factor must not be negative, got %v", ErrInvalidConfig, c.Factor)
	}
	return nil
}

// yamlConfig mirrors Config with optional fields, so that keys missing from
// the document keep their current value.
type yamlConfig struct {
	Retries      *int     `yaml:"retries"`
	InitialDelay *string  `yaml:"initial_delay"`
	Factor       *float64 `yaml:"factor"`
	Timeout      *string  `yaml:"timeout"`
}

// UnmarshalYAML implements yaml.Unmarshaler. Durations are Go duration
// strings such as "250ms". Keys that are absent leave the receiver's value
// untouched, so decoding into [DefaultConfig] keeps the defaults.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var raw yamlConfig
	if err := value.Decode(&raw); err != nil {
		return err
	}
	out := *c
	if raw.Retries != nil {
		out.Retries = *raw.Retries
	}
	if raw.Factor != nil {
		out.Factor = *raw.Factor
	}
	if raw.InitialDelay != nil {
		d, err := time.ParseDuration(*raw.InitialDelay)
		if err != nil {
			return fmt.Errorf("initial_delay: %w", err)
		}
		out.InitialDelay = d
	}
	if raw.Timeout != nil {
		d, err := time.ParseDuration(*raw.Timeout)
		if err != nil {
			return fmt.Errorf("timeout: %w", err)
		}
		out.Timeout = d
	}
	if err := out.Validate(); err != nil {
		return err
	}
	*c = out
	return nil
}
