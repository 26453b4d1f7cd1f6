package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bft-labs/primes/internal/app"
)

func TestRun_ExitCodes(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "single value", args: []string{"7"}, want: app.ExitOK},
		{name: "range", args: []string{"1", "10"}, want: app.ExitOK},
		{name: "invalid input is recovered", args: []string{"seven"}, want: app.ExitOK},
		{name: "other arity", args: []string{"1", "2", "3"}, want: app.ExitOK},
		{name: "budget exceeded", args: []string{"--max-candidates", "10", "0", "100"}, want: app.ExitExhausted},
		{name: "full domain", args: []string{"0", "18446744073709551615"}, want: app.ExitExhausted},
		{name: "bad log level", args: []string{"--log-level", "loud", "7"}, want: app.ExitFailure},
		{name: "unknown flag", args: []string{"--nope", "7"}, want: app.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := run(tt.args); got != tt.want {
				t.Errorf("run(%v) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	path := filepath.Join(dir, "primes.toml")
	if err := os.WriteFile(path, []byte("max_candidates = 10\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if got := run([]string{"--config", path, "0", "100"}); got != app.ExitExhausted {
		t.Errorf("file budget: run = %d, want %d", got, app.ExitExhausted)
	}
	if got := run([]string{"--config", path, "--max-candidates", "1000", "0", "100"}); got != app.ExitOK {
		t.Errorf("flag override: run = %d, want %d", got, app.ExitOK)
	}

	t.Setenv("PRIMES_MAX_CANDIDATES", "1000")
	if got := run([]string{"--config", path, "0", "100"}); got != app.ExitOK {
		t.Errorf("env override: run = %d, want %d", got, app.ExitOK)
	}
}

func TestRun_InvalidConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	path := filepath.Join(dir, "broken.toml")
	if err := os.WriteFile(path, []byte("this is not toml"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if got := run([]string{"--config", path, "7"}); got != app.ExitFailure {
		t.Errorf("run = %d, want %d", got, app.ExitFailure)
	}
}
