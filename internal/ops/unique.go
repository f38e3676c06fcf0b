package ops

import "sort"

// Unique collapses runs of equal adjacent elements of an already sorted slice.
// An element is kept when it differs from its successor or is the last one.
func Unique(sorted []string) []string {
	out := make([]string, 0, len(sorted))
	for i, s := range sorted {
		if i == len(sorted)-1 || s != sorted[i+1] {
			out = append(out, s)
		}
	}
	return out
}

// SortUnique returns the distinct elements of matches in ascending byte order.
// Discovery order is not preserved. matches is not modified.
func SortUnique(matches []string) []string {
	sorted := make([]string, len(matches))
	copy(sorted, matches)
	sort.Strings(sorted)
	return Unique(sorted)
}
