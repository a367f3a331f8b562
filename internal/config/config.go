package config

import (
	"fmt"
	"os"
	"time"

	"github.com/lazypower/tbool/internal/tbool"
)

// Config holds all tbool demo configuration.
type Config struct {
	Demo DemoConfig
}

type DemoConfig struct {
	ShortLife time.Duration
	LongLife  time.Duration
	Poll      time.Duration // 0 busy-waits
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Demo: DemoConfig{
			ShortLife: tbool.DefaultLife,
			LongLife:  5 * time.Second,
			Poll:      0,
		},
	}
}

// Environment overrides, as Go duration strings.
const (
	EnvLongLife = "TBOOL_LONG_LIFE"
	EnvPoll     = "TBOOL_POLL_INTERVAL"
)

// FromEnv applies environment overrides on top of c.
func (c *Config) FromEnv() error {
	for _, o := range []struct {
		name string
		dst  *time.Duration
	}{
		{EnvLongLife, &c.Demo.LongLife},
		{EnvPoll, &c.Demo.Poll},
	} {
		v := os.Getenv(o.name)
		if v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", o.name, err)
		}
		*o.dst = d
	}
	return c.Validate()
}

// Validate rejects a non-positive short life and negative durations.
func (c *Config) Validate() error {
	if c.Demo.ShortLife <= 0 {
		return fmt.Errorf("short life must be positive, got %v", c.Demo.ShortLife)
	}
	if c.Demo.LongLife < 0 {
		return fmt.Errorf("long life must not be negative, got %v", c.Demo.LongLife)
	}
	if c.Demo.Poll < 0 {
		return fmt.Errorf("poll interval must not be negative, got %v", c.Demo.Poll)
	}
	return nil
}
