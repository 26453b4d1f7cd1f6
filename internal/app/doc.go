// Package app implements the primes command: it validates positional
// arguments, dispatches on how many there are, runs the primality test or
// the range sieve, and formats the result.
//
//   - one argument: prints "Is prime" or "Not prime"
//   - two arguments: prints the primes in the range, separated and newline-terminated
//   - any other count: prints nothing
//
// Invalid arguments are reported on the error stream and are not an error
// for the caller. Failures that are returned map to a process exit status
// through [ExitCode].
package app
