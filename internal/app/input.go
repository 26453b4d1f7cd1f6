package app

import (
	"strconv"

	"github.com/bft-labs/primes/internal/domain"
)

// ParseValue parses a non-negative base-10 integer made only of ASCII
// digits. Signs, spaces, empty strings and values beyond 2^64-1 are
// rejected with a *domain.InvalidInputError.
func ParseValue(arg string) (uint64, error) {
	if arg == "" {
		return 0, &domain.InvalidInputError{Arg: arg}
	}
	for i := 0; i < len(arg); i++ {
		if arg[i] < '0' || arg[i] > '9' {
			return 0, &domain.InvalidInputError{Arg: arg}
		}
	}
	v, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, &domain.InvalidInputError{Arg: arg}
	}
	return v, nil
}
