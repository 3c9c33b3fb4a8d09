package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/heromap/internal/cmd/table"
	"github.com/agentstation/heromap/internal/utils/ptr"
	"github.com/agentstation/heromap/pkg/characters"
)

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"table", "JSON", "yaml", "wide", ""} {
		_, err := ParseFormat(in)
		assert.NoError(t, err, in)
	}
	_, err := ParseFormat("csv")
	assert.Error(t, err)
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	err := NewFormatter(FormatTable).Format(&buf, table.Data{
		Headers: []string{"Name", "Pageviews"},
		Rows:    [][]string{{"Hulk", "130"}},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Hulk")
	assert.Contains(t, buf.String(), "130")
}

func TestTableFormatterReflection(t *testing.T) {
	type row struct {
		Path    string `json:"path"`
		Written bool   `json:"written,omitempty"`
	}

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, &row{Path: "characters.json", Written: true}))
	assert.Contains(t, buf.String(), "characters.json")
	assert.Contains(t, buf.String(), "true")

	buf.Reset()
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, []*row{{Path: "a.json"}, nil, {Path: "b.json"}}))
	assert.Contains(t, buf.String(), "a.json")
	assert.Contains(t, buf.String(), "b.json")

	buf.Reset()
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, map[string]int{"hulk": 1}))
	assert.JSONEq(t, `{"hulk": 1}`, buf.String())
}

func TestFormatRecords(t *testing.T) {
	records := []*characters.Record{{
		Name:    ptr.String("Hulk"),
		Powers:  []string{"Strength"},
		URLs:    characters.URLs{Wikipedia: "https://en.wikipedia.org/wiki/Hulk"},
		Ranking: characters.Ranking{ComicCount: 12},
	}}

	var buf bytes.Buffer
	require.NoError(t, FormatRecords(&buf, records, FormatJSON))
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Hulk", decoded[0]["name"])

	buf.Reset()
	require.NoError(t, FormatRecords(&buf, records, FormatWide))
	assert.Contains(t, buf.String(), "Strength")

	buf.Reset()
	require.NoError(t, FormatRecords(&buf, records, FormatYAML))
	assert.Contains(t, buf.String(), "name: Hulk")
}
