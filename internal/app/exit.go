package app

import (
	"errors"

	"github.com/bft-labs/primes/internal/domain"
)

// Process exit statuses.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitExhausted = 2
)

// ExitCode maps an error returned by Run (or by configuration loading) to
// a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrResourceExhausted):
		return ExitExhausted
	default:
		return ExitFailure
	}
}
