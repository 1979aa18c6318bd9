package config

import (
	"fmt"
	"time"
)

// Validate checks duration fields and value relationships. It is called by
// Load; callers constructing a Config by hand should invoke it themselves.
func (c *Config) Validate() error {
	timeout, err := time.ParseDuration(c.Inspect.Timeout)
	if err != nil {
		return fmt.Errorf("invalid inspect.timeout: %s: %w", c.Inspect.Timeout, err)
	}
	if timeout <= 0 {
		return fmt.Errorf("inspect.timeout must be positive: %s", c.Inspect.Timeout)
	}

	debounce, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return fmt.Errorf("invalid watch.debounce: %s: %w", c.Watch.Debounce, err)
	}
	if debounce <= 0 {
		return fmt.Errorf("watch.debounce must be positive: %s", c.Watch.Debounce)
	}

	if c.Watch.Interval != "" {
		interval, err := time.ParseDuration(c.Watch.Interval)
		if err != nil {
			return fmt.Errorf("invalid watch.interval: %s: %w", c.Watch.Interval, err)
		}
		if interval <= 0 {
			return fmt.Errorf("watch.interval must be positive: %s", c.Watch.Interval)
		}
	}

	if c.CMake.Binary == "" {
		return fmt.Errorf("cmake.binary must not be empty")
	}

	return nil
}

// InspectTimeout returns the parsed inspection timeout, falling back to the
// default when the field was never validated.
func (c *Config) InspectTimeout() time.Duration {
	if d, err := time.ParseDuration(c.Inspect.Timeout); err == nil && d > 0 {
		return d
	}
	return 30 * time.Second
}

// WatchDebounce returns the parsed watch debounce window.
func (c *Config) WatchDebounce() time.Duration {
	if d, err := time.ParseDuration(c.Watch.Debounce); err == nil && d > 0 {
		return d
	}
	return 500 * time.Millisecond
}

// WatchInterval returns the periodic re-inspection interval, or zero when
// periodic runs are disabled.
func (c *Config) WatchInterval() time.Duration {
	if c.Watch.Interval == "" {
		return 0
	}
	if d, err := time.ParseDuration(c.Watch.Interval); err == nil && d > 0 {
		return d
	}
	return 0
}
