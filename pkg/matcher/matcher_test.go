package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		patternType PatternType
		wantErr     bool
	}{
		{"exact", Exact, false},
		{"prefix", Prefix, false},
		{"suffix", Suffix, false},
		{"loose", Loose, false},
		{"unknown", PatternType(42), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.patternType, "Thor")
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Thor", m.Pattern())
			assert.Equal(t, tt.patternType, m.Type())
		})
	}
}

func TestMatcher_Match(t *testing.T) {
	tests := []struct {
		name        string
		patternType PatternType
		pattern     string
		opts        *Options
		input       string
		want        bool
	}{
		{"exact match", Exact, "Thor", nil, "Thor", true},
		{"exact mismatch", Exact, "Thor", nil, "Thor (Ultimate)", false},
		{"exact case insensitive", Exact, "thor", &Options{CaseInsensitive: true}, "Thor", true},
		{"prefix match", Prefix, "Baron Zemo (", nil, "Baron Zemo (Helmut Zemo)", true},
		{"prefix needs paren", Prefix, "Baron Zemo (", nil, "Baron Zemo", false},
		{"suffix match", Suffix, "(Emil Blonsky)", nil, "Abomination (Emil Blonsky)", true},
		{"suffix mismatch", Suffix, "(Emil Blonsky)", nil, "Abomination", false},
		{"loose match", Loose, "Peter Parker", nil, "Peter Benjamin Parker", true},
		{"loose asymmetric", Loose, "Peter Benjamin Parker", nil, "Peter Parker", false},
		{"loose case insensitive", Loose, "peter parker", &Options{CaseInsensitive: true}, "Peter Parker", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MustNew(tt.patternType, tt.pattern, tt.opts)
			assert.Equal(t, tt.want, m.Match(tt.input))
		})
	}
}

func TestMatcher_Batch(t *testing.T) {
	keys := []string{
		"Black Widow",
		"Black Widow (Claire Voyant)",
		"Black Widow (Natasha Romanoff)",
		"Black Panther",
	}
	m := MustNew(Prefix, "Black Widow (")

	assert.Equal(t, []string{"Black Widow (Claire Voyant)", "Black Widow (Natasha Romanoff)"}, m.MatchAll(keys...))
	assert.Equal(t, "Black Widow (Claire Voyant)", m.MatchFirst(keys...))
	assert.Equal(t, 2, m.MatchCount(keys...))

	none := MustNew(Exact, "Hulk")
	assert.Empty(t, none.MatchAll(keys...))
	assert.NotNil(t, none.MatchAll(keys...))
	assert.Equal(t, "", none.MatchFirst(keys...))
	assert.Zero(t, none.MatchCount(keys...))
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() { MustNew(PatternType(-1), "x") })
}

func TestParsePatternType(t *testing.T) {
	for _, pt := range []PatternType{Exact, Prefix, Suffix, Loose} {
		got, err := ParsePatternType(pt.String())
		require.NoError(t, err)
		assert.Equal(t, pt, got)
	}

	got, err := ParsePatternType("")
	require.NoError(t, err)
	assert.Equal(t, Exact, got)

	_, err = ParsePatternType("glob")
	assert.Error(t, err)
	assert.Equal(t, "unknown", PatternType(99).String())
}

func TestFilterStrings(t *testing.T) {
	got, err := FilterStrings(Suffix, "(Thor)", "Thor", "Donald Blake (Thor)", "Thor (Ultimate)")
	require.NoError(t, err)
	assert.Equal(t, []string{"Donald Blake (Thor)"}, got)

	_, err = FilterStrings(PatternType(7), "x")
	assert.Error(t, err)
}
