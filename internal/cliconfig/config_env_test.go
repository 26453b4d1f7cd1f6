package cliconfig

import "testing"

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"PRIMES_LOG_LEVEL":      "debug",
				"PRIMES_LOG_FORMAT":     "json",
				"PRIMES_MAX_CANDIDATES": "4096",
				"PRIMES_SEPARATOR":      ",",
				"PRIMES_COUNT":          "true",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				LogLevel:      "debug",
				LogFormat:     "json",
				MaxCandidates: 4096,
				Separator:     ",",
				Count:         true,
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"PRIMES_LOG_LEVEL":      "debug",
				"PRIMES_MAX_CANDIDATES": "4096",
			},
			changed: map[string]bool{"log-level": true},
			initial: Config{LogLevel: "error"},
			expected: Config{
				LogLevel:      "error",
				MaxCandidates: 4096,
			},
		},
		{
			name: "returns error for invalid uint",
			envVars: map[string]string{
				"PRIMES_MAX_CANDIDATES": "lots",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name: "returns error for negative uint",
			envVars: map[string]string{
				"PRIMES_MAX_CANDIDATES": "-5",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name: "ignores zero max candidates",
			envVars: map[string]string{
				"PRIMES_MAX_CANDIDATES": "0",
			},
			changed:  map[string]bool{},
			initial:  Config{MaxCandidates: 7},
			expected: Config{MaxCandidates: 7},
		},
		{
			name: "handles bool '1' as true",
			envVars: map[string]string{
				"PRIMES_COUNT": "1",
			},
			changed:  map[string]bool{},
			expected: Config{Count: true},
		},
		{
			name: "handles bool 'false' as false",
			envVars: map[string]string{
				"PRIMES_COUNT": "false",
			},
			changed:  map[string]bool{},
			initial:  Config{Count: true},
			expected: Config{Count: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyEnvConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnvConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("ApplyEnvConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}
