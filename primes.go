// Package primes decides whether 64-bit unsigned integers are prime and
// lists the primes inside an inclusive range.
//
// Example usage:
//
//	if primes.IsPrime(97) {
//	    fmt.Println("Is prime")
//	}
//	ps, err := primes.InRange(10, 30)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(ps) // [11 13 17 19 23 29]
package primes

import (
	"github.com/bft-labs/primes/internal/domain"
	"github.com/bft-labs/primes/pkg/prime"
	"github.com/bft-labs/primes/pkg/sieve"
)

// Range is an inclusive interval of candidate values.
type Range = domain.Range

// RangeTooLargeError describes a range rejected by the sieve budget.
type RangeTooLargeError = domain.RangeTooLargeError

// Errors returned by InRange can be checked with errors.Is.
var (
	// ErrResourceExhausted is returned when a range is larger than the sieve budget.
	ErrResourceExhausted = domain.ErrResourceExhausted
)

// DefaultMaxCandidates is the largest number of candidates InRange will sieve.
const DefaultMaxCandidates = sieve.DefaultMaxCandidates

// IsPrime reports whether value is prime. 0 and 1 are not prime.
func IsPrime(value uint64) bool {
	return prime.IsPrime(value)
}

// InRange returns the primes between a and b inclusive, in ascending order.
// The bounds may be given in either order.
func InRange(a, b uint64) ([]uint64, error) {
	return sieve.PrimesInRange(a, b)
}

// NewRange returns the normalized range covering a and b.
func NewRange(a, b uint64) Range {
	return domain.NewRange(a, b)
}
