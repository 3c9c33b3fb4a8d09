// Package matcher compares character names. It provides the loose word-subset
// equality used for identity comparison, and key matchers that filter catalog
// names by exact value, prefix, suffix or loose equality.
package matcher

import (
	"fmt"
	"strings"
)

// PatternType represents the kind of comparison a Matcher performs.
type PatternType int

const (
	// Exact matches inputs identical to the pattern.
	Exact PatternType = iota
	// Prefix matches inputs starting with the pattern.
	Prefix
	// Suffix matches inputs ending with the pattern.
	Suffix
	// Loose matches inputs the pattern is loosely equal to.
	Loose
)

// Matcher is the main interface for name matching operations.
type Matcher interface {
	// Match checks if the input matches the pattern
	Match(input string) bool
	// MatchAll checks multiple inputs and returns matches in input order.
	MatchAll(inputs ...string) []string
	// MatchFirst returns the first matching input or empty string.
	MatchFirst(inputs ...string) string
	// MatchCount returns the number of matching inputs.
	MatchCount(inputs ...string) int
	// Pattern returns the original pattern string.
	Pattern() string
	// Type returns the pattern type being used.
	Type() PatternType
}

// matcher is the concrete implementation of the Matcher interface.
// It holds no mutable state and is safe for concurrent use.
type matcher struct {
	pattern         string
	patternType     PatternType
	caseInsensitive bool
}

// Options configures the matcher behavior.
type Options struct {
	// CaseInsensitive folds case before comparing
	CaseInsensitive bool
}

// DefaultOptions returns the default options.
func DefaultOptions() *Options {
	return &Options{CaseInsensitive: false}
}

// New creates a new Matcher with the specified pattern and type.
func New(patternType PatternType, pattern string, opts ...*Options) (Matcher, error) {
	options := DefaultOptions()
	if len(opts) > 0 && opts[0] != nil {
		options = opts[0]
	}

	switch patternType {
	case Exact, Prefix, Suffix, Loose:
	default:
		return nil, fmt.Errorf("unsupported pattern type: %v", patternType)
	}

	m := &matcher{
		pattern:         pattern,
		patternType:     patternType,
		caseInsensitive: options.CaseInsensitive,
	}
	return m, nil
}

// MustNew creates a new Matcher and panics if there's an error.
func MustNew(patternType PatternType, pattern string, opts ...*Options) Matcher {
	m, err := New(patternType, pattern, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Match checks if the input matches the pattern.
func (m *matcher) Match(input string) bool {
	pattern := m.pattern
	if m.caseInsensitive {
		pattern = strings.ToLower(pattern)
		input = strings.ToLower(input)
	}

	switch m.patternType {
	case Exact:
		return input == pattern
	case Prefix:
		return strings.HasPrefix(input, pattern)
	case Suffix:
		return strings.HasSuffix(input, pattern)
	case Loose:
		return IsLooselyEqual(pattern, input)
	default:
		return false
	}
}

// MatchAll checks multiple inputs and returns matches.
func (m *matcher) MatchAll(inputs ...string) []string {
	results := make([]string, 0)
	for _, input := range inputs {
		if m.Match(input) {
			results = append(results, input)
		}
	}
	return results
}

// MatchFirst returns the first matching input or empty string.
func (m *matcher) MatchFirst(inputs ...string) string {
	for _, input := range inputs {
		if m.Match(input) {
			return input
		}
	}
	return ""
}

// MatchCount returns the number of matching inputs.
func (m *matcher) MatchCount(inputs ...string) int {
	count := 0
	for _, input := range inputs {
		if m.Match(input) {
			count++
		}
	}
	return count
}

// Pattern returns the original pattern string.
func (m *matcher) Pattern() string {
	return m.pattern
}

// Type returns the pattern type being used.
func (m *matcher) Type() PatternType {
	return m.patternType
}

// String returns a string representation of the PatternType.
func (pt PatternType) String() string {
	switch pt {
	case Exact:
		return "exact"
	case Prefix:
		return "prefix"
	case Suffix:
		return "suffix"
	case Loose:
		return "loose"
	default:
		return "unknown"
	}
}

// ParsePatternType converts a name such as "prefix" into a PatternType.
func ParsePatternType(s string) (PatternType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact", "":
		return Exact, nil
	case "prefix":
		return Prefix, nil
	case "suffix":
		return Suffix, nil
	case "loose":
		return Loose, nil
	default:
		return Exact, fmt.Errorf("unknown pattern type %q", s)
	}
}

// FilterStrings filters a slice of strings based on the pattern.
func FilterStrings(patternType PatternType, pattern string, items ...string) ([]string, error) {
	m, err := New(patternType, pattern)
	if err != nil {
		return nil, err
	}
	return m.MatchAll(items...), nil
}
