package ops

import "regexp"

// Matcher tests a file's base name. *regexp.Regexp satisfies it.
type Matcher interface {
	MatchString(s string) bool
	String() string
}

// Matchers adapts compiled expressions to Matchers, keeping their order
func Matchers(res []*regexp.Regexp) []Matcher {
	ms := make([]Matcher, len(res))
	for i, re := range res {
		ms[i] = re
	}
	return ms
}
