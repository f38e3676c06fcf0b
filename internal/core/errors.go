package core

import "github.com/cockroachdb/errors"

var (
	ErrUsage           = errors.New("usage error")
	ErrNoPatterns      = errors.New("at least one regular expression should be given")
	ErrInvalidPattern  = errors.New("invalid regular expression")
	ErrUnknownEncoding = errors.New("unknown encoding")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Exit codes returned by the myfind binary
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// ExitCode maps an error returned by a search to a process exit code.
// Input validation failures are usage errors; traversal and read failures are not.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.IsAny(err, ErrUsage, ErrNoPatterns, ErrInvalidPattern, ErrUnknownEncoding, ErrInvalidLogLevel):
		return ExitUsage
	default:
		return ExitError
	}
}
