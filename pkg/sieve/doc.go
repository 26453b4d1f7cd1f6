// Package sieve enumerates the primes inside an inclusive range of 64-bit
// unsigned integers with a bitmap Sieve of Eratosthenes.
//
// # Usage
//
//	primes, err := sieve.PrimesInRange(10, 30)
//	if err != nil {
//	    return err
//	}
//	// primes == []uint64{11, 13, 17, 19, 23, 29}
//
// Bounds may be given in either order. The result is always ascending and
// is a non-nil, possibly empty, slice.
//
// # Memory
//
// The sieve keeps one bit per candidate in a fixed-size bitset that lives
// only for the duration of the call. A [Sieve] refuses ranges with more
// candidates than its budget (see [WithMaxCandidates]) and returns an error
// matching domain.ErrResourceExhausted instead of a partial result.
//
// # Base primes
//
// Bases below the start of the range never appear in the sweep, so the
// sieve first collects the primes up to min(sqrt(end), start-1) and strikes
// their multiples from the window. When that base set would be too large to
// hold, every surviving candidate is confirmed with prime.IsPrime instead.
package sieve
