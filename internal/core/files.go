package core

import (
	"regexp"

	"github.com/cockroachdb/errors"
)

// DefaultStart is searched when no starting point is given
const DefaultStart = "."

// StartingPoints returns the starting points to search, in the order given.
// An empty list means the current directory.
func StartingPoints(starts []string) []string {
	if len(starts) == 0 {
		return []string{DefaultStart}
	}
	out := make([]string, len(starts))
	copy(out, starts)
	return out
}

// CompilePatterns compiles each expression once, in order.
// The first expression that fails to compile is reported as ErrInvalidPattern.
func CompilePatterns(exprs []string) ([]*regexp.Regexp, error) {
	if len(exprs) == 0 {
		return nil, ErrNoPatterns
	}

	pats := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		re, err := regexp.Compile(e)
		if err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "invalid regular expression %q", e), ErrInvalidPattern)
		}
		pats = append(pats, re)
	}

	return pats, nil
}
