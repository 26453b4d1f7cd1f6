package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (PRIMES_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("log-level", os.Getenv("PRIMES_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("log-format", os.Getenv("PRIMES_LOG_FORMAT"), &cfg.LogFormat)
	s.setString("separator", os.Getenv("PRIMES_SEPARATOR"), &cfg.Separator)

	if err := s.setUint64FromString("max-candidates", os.Getenv("PRIMES_MAX_CANDIDATES"), &cfg.MaxCandidates); err != nil {
		return err
	}

	s.setBoolFromString("count", os.Getenv("PRIMES_COUNT"), &cfg.Count)

	return nil
}
