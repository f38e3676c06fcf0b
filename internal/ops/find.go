package ops

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// Find walks every starting point once per pattern, starting points in the
// outer loop, and returns all matches in discovery order. A file is reported
// once for each (starting point, pattern) pair that reaches and matches it.
//
// The first walk error stops the search. The matches collected up to that
// point are returned with the error but the search as a whole has failed.
func Find(fsys afero.Fs, starts []string, patterns []Matcher) ([]string, error) {
	return find(fsys, starts, patterns, nil)
}

type walkHook func(start string, pattern Matcher, found int)

func find(fsys afero.Fs, starts []string, patterns []Matcher, hook walkHook) ([]string, error) {
	matches := make([]string, 0)
	for _, start := range starts {
		for _, pat := range patterns {
			before := len(matches)
			if err := Walk(fsys, start, pat, &matches); err != nil {
				return matches, err
			}
			if hook != nil {
				hook(start, pat, len(matches)-before)
			}
		}
	}
	return matches, nil
}

// SearchOpts configures a full search
type SearchOpts struct {
	Fs       afero.Fs
	Starts   []string
	Patterns []Matcher
	Unique   bool
	Logger   *log.Logger
}

// Search runs Find and, when Unique is set, reduces the result to its
// distinct paths in sorted order. A nil Fs means the OS filesystem.
func Search(o SearchOpts) ([]string, error) {
	fsys := o.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	var hook walkHook
	if o.Logger != nil {
		hook = func(start string, pat Matcher, found int) {
			o.Logger.Debug("walked", "start", start, "pattern", pat.String(), "matches", found)
		}
	}

	matches, err := find(fsys, o.Starts, o.Patterns, hook)
	if err != nil {
		return nil, err
	}

	if o.Unique {
		n := len(matches)
		matches = SortUnique(matches)
		if o.Logger != nil {
			o.Logger.Debug("deduplicated", "before", n, "after", len(matches))
		}
	}

	return matches, nil
}
