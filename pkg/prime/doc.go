// Package prime decides whether a single 64-bit unsigned integer is prime.
//
// The test is deterministic trial division over the 6k±1 wheel: after
// ruling out multiples of 2 and 3, only divisors congruent to 1 or 5 mod 6
// are tried, up to the integer square root of the value.
//
// # Usage
//
//	if prime.IsPrime(97) {
//	    fmt.Println("Is prime")
//	}
//
// # Square-root bound
//
// The trial-division limit is computed by [Sqrt] entirely in integer
// arithmetic, so no divisor is skipped near 2^63 or 2^64 where float64
// cannot represent the value exactly.
package prime
