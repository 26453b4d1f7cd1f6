package sieve

import "github.com/bft-labs/primes/pkg/log"

// DefaultMaxCandidates is the default candidate budget: 2^30 candidates,
// i.e. a 128 MiB bitmap.
const DefaultMaxCandidates uint64 = 1 << 30

// Option configures a Sieve.
type Option func(*options)

type options struct {
	maxCandidates uint64
	logger        log.Logger
}

func defaultOptions() options {
	return options{
		maxCandidates: DefaultMaxCandidates,
		logger:        log.NoopLogger{},
	}
}

// WithMaxCandidates caps the number of candidates a single range query may
// allocate a sieve bit for. Zero keeps the default.
func WithMaxCandidates(n uint64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxCandidates = n
		}
	}
}

// WithLogger sets the logger used for per-query debug output.
// If not provided, a no-op logger is used.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
