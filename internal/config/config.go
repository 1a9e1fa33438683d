// Package config defines the ddfmt configuration and how it is loaded.
//
// Values are layered from low to high precedence: built-in defaults, an
// optional YAML file named by DDFMT_CONFIG, then DDFMT_* environment
// variables. Command-line flags are applied on top by the caller.
package config

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KimNorgaard/go-dd"
	"github.com/KimNorgaard/go-dd/pkg/logger"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// UnknownEvents is the policy for unrecognized event codes:
	// drop, preserve or reject.
	UnknownEvents string `koanf:"unknown_events"`

	// Check only validates files instead of printing or rewriting them.
	Check bool `koanf:"check"`
}

// New returns a Config holding the defaults. Unknown events are preserved
// by default so that reformatting a file never loses data.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:      "info",
		UnknownEvents: dd.PreserveUnknownEvents.String(),
		Check:         false,
	}
}

// Level returns the parsed log level.
func (c *Config) Level() (slog.Level, error) {
	l, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return l, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return l, nil
}

// Policy returns the parsed unknown event policy.
func (c *Config) Policy() (dd.UnknownEventPolicy, error) {
	p, err := dd.ParseUnknownEventPolicy(c.UnknownEvents)
	if err != nil {
		return p, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return p, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	return nil
}
