package prime

import "math"

// maxRoot is floor(sqrt(2^64-1)); its square is the largest perfect square
// representable as a uint64.
const maxRoot = math.MaxUint32

// IsPrime reports whether value is prime. 0 and 1 are not prime.
func IsPrime(value uint64) bool {
	switch {
	case value < 2:
		return false
	case value < 4:
		return true
	case value%2 == 0 || value%3 == 0:
		return false
	}

	limit := Sqrt(value)

	// i walks 7, 13, 19, ... so i-2 and i cover 6k-1 and 6k+1.
	for i := uint64(7); i-2 <= limit; i += 6 {
		if value%(i-2) == 0 || value%i == 0 {
			return false
		}
	}
	return true
}

// Sqrt returns floor(sqrt(n)).
//
// The float64 estimate can be off by one or more once n exceeds 2^53, so it
// is corrected with exact integer comparisons. The root is clamped to
// maxRoot first, which keeps every square below 2^64.
func Sqrt(n uint64) uint64 {
	if n < 2 {
		return n
	}

	r := uint64(math.Sqrt(float64(n)))
	if r > maxRoot {
		r = maxRoot
	}
	for r*r > n {
		r--
	}
	for r < maxRoot && (r+1)*(r+1) <= n {
		r++
	}
	return r
}
