package matcher

import "strings"

// IsLooselyEqual reports whether every whitespace-separated word of a occurs
// among the words of b. The relation is asymmetric: "foo bar" is loosely equal
// to "foo baz bar" but not the other way round. Empty arguments never match.
func IsLooselyEqual(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}

	words := make(map[string]struct{})
	for _, w := range strings.Fields(b) {
		words[w] = struct{}{}
	}
	for _, w := range strings.Fields(a) {
		if _, ok := words[w]; !ok {
			return false
		}
	}
	return true
}

// IsLooselyIncluded reports whether a is loosely equal to any item of list.
func IsLooselyIncluded(a string, list []string) bool {
	for _, item := range list {
		if IsLooselyEqual(a, item) {
			return true
		}
	}
	return false
}

// IsLooselyEqualEither reports whether a and b are loosely equal in at least
// one direction.
func IsLooselyEqualEither(a, b string) bool {
	return IsLooselyEqual(a, b) || IsLooselyEqual(b, a)
}
