// Package log provides the logging port used by the prime and sieve packages.
//
// The numeric packages never import a logging library directly. They accept
// a [Logger] and default to [NoopLogger]; the command wires in a
// [ZerologAdapter]:
//
//	logger := log.NewZerologAdapter(zerolog.New(os.Stderr))
//	s := sieve.New(sieve.WithLogger(logger))
package log
