package save

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	var buf bytes.Buffer
	opts := Defaults().Apply(
		WithPath("out/characters.json"),
		WithWriter(&buf),
		WithFormat(FormatYAML),
		WithForce(true),
	)

	assert.Equal(t, "out/characters.json", opts.Path())
	assert.Same(t, &buf, opts.Writer())
	assert.Equal(t, FormatYAML, opts.Format())
	assert.True(t, opts.Force())

	defaults := Defaults()
	assert.Equal(t, FormatJSON, defaults.Format())
	assert.False(t, defaults.Force())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{"", FormatJSON},
		{"YAML", FormatYAML},
		{"yml", FormatYAML},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("toml")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	assert.True(t, FormatJSON.IsValid())
	assert.False(t, Format(9).IsValid())
	assert.Equal(t, "unknown", Format(9).String())
	assert.Equal(t, ".yaml", FormatYAML.Extension())
	assert.Equal(t, ".json", FormatJSON.Extension())
}
