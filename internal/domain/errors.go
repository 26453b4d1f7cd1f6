package domain

import (
	"errors"
	"fmt"
)

// Domain errors can be checked with errors.Is.
var (
	// ErrInvalidInput is returned when an argument is not a non-negative base-10 integer.
	ErrInvalidInput = errors.New("primes: invalid input")

	// ErrResourceExhausted is returned when a range query would need more
	// sieve memory than it is allowed to allocate.
	ErrResourceExhausted = errors.New("primes: resource exhausted")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("primes: invalid configuration")
)

// InvalidInputError reports the offending argument.
type InvalidInputError struct {
	Arg string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s is not a positive integer", e.Arg)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// RangeTooLargeError reports a range whose candidate count exceeds the
// sieve budget. Overflow is set when the count does not fit in 64 bits.
type RangeTooLargeError struct {
	Range    Range
	Span     uint64
	Limit    uint64
	Overflow bool
}

func (e *RangeTooLargeError) Error() string {
	if e.Overflow {
		return fmt.Sprintf("range [%d, %d] spans more than 2^64-1 candidates (limit %d)", e.Range.Start, e.Range.End, e.Limit)
	}
	return fmt.Sprintf("range [%d, %d] spans %d candidates (limit %d)", e.Range.Start, e.Range.End, e.Span, e.Limit)
}

func (e *RangeTooLargeError) Unwrap() error { return ErrResourceExhausted }
