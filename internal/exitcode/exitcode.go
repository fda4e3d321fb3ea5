// Package exitcode defines process exit codes for tada.
package exitcode

const (
	// Success indicates a normal exit.
	Success = 0

	// Failure indicates a runtime error (I/O, terminal, export).
	Failure = 1

	// Usage indicates bad arguments or an invalid configuration.
	Usage = 2
)
