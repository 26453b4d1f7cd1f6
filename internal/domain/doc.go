// Package domain contains the value types and error kinds shared by the
// primality tester, the range sieve and the command layer.
//
// This package has no dependencies on infrastructure concerns (flags,
// logging, output) and contains only the rules that every caller relies on.
//
// # Types
//
//   - [Range]: an inclusive, normalized interval of candidate values
//
// # Errors
//
// Errors are either sentinels ([ErrInvalidInput], [ErrResourceExhausted],
// [ErrInvalidConfig]) or typed errors that unwrap to one of them, so callers
// can classify failures with errors.Is and inspect details with errors.As.
package domain
