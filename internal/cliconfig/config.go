package cliconfig

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/bft-labs/primes/internal/domain"
	"github.com/bft-labs/primes/pkg/sieve"
)

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds CLI configuration for primes.
type Config struct {
	LogLevel  string
	LogFormat string

	// MaxCandidates caps the number of candidates one range query may sieve.
	MaxCandidates uint64

	// Separator is written between primes in range output.
	Separator string

	// Count prints only the number of primes found for a range.
	Count bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		LogLevel:      zerolog.LevelWarnValue,
		LogFormat:     FormatConsole,
		MaxCandidates: sieve.DefaultMaxCandidates,
		Separator:     " ",
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.LogLevel == "" {
		c.LogLevel = zerolog.LevelWarnValue
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", domain.ErrInvalidConfig, c.LogLevel)
	}

	switch c.LogFormat {
	case "":
		c.LogFormat = FormatConsole
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("%w: log format %q (want %s or %s)", domain.ErrInvalidConfig, c.LogFormat, FormatConsole, FormatJSON)
	}

	if c.MaxCandidates == 0 {
		return fmt.Errorf("%w: max candidates must be positive", domain.ErrInvalidConfig)
	}

	if c.Separator == "" {
		c.Separator = " "
	}

	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setUint64 sets a uint64 value if positive and flag not changed.
func (s *configSetter) setUint64(flag string, value uint64, dst *uint64) {
	if value == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setUint64FromString parses a base-10 string and sets the destination if positive.
// Used for environment variables that come as strings.
func (s *configSetter) setUint64FromString(flag, value string, dst *uint64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if n == 0 {
		return nil
	}
	*dst = n
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
