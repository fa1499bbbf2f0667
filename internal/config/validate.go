package config

import (
	"errors"
	"fmt"

	"linetail/internal/textenc"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTail(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateTail() error {
	if c.Tail.Lines < 0 {
		return errors.New("tail.lines must not be negative")
	}
	if c.Tail.BufferSize < 1 {
		return errors.New("tail.buffer_size must be at least 1")
	}
	if c.Tail.PollIntervalMillis < 10 {
		return errors.New("tail.poll_interval_ms must be at least 10")
	}
	if _, err := textenc.Resolve(c.Tail.Encoding); err != nil {
		return fmt.Errorf("tail.encoding: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
