package consolidate

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/heromap/internal/cmd/application"
	"github.com/agentstation/heromap/pkg/characters"
	"github.com/agentstation/heromap/pkg/provenance"
	"github.com/agentstation/heromap/pkg/save"
)

func writeSnapshot(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"infobox.yaml": `
https://en.wikipedia.org/wiki/Hulk:
  name: Hulk
  powers: [superhuman strength]
https://en.wikipedia.org/wiki/Black_Widow:
  name: Black Widow (Claire Voyant)
`,
		"pageviews.yaml": `
https://en.wikipedia.org/wiki/Hulk:
  latest90: 120
`,
		"marvelApi.json": `{
  "Hulk": {"name": "Hulk", "url": "https://www.marvel.com/characters/hulk", "counts": {"comics": 12, "events": 1, "series": 2, "stories": 3}},
  "Black Widow": {"name": "Black Widow", "description": "A spy."}
}`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

func newMock(input, output string) *application.Mock {
	return &application.Mock{
		InputPathFunc:    func() string { return input },
		OutputPathFunc:   func() string { return output },
		OutputFormatFunc: func() string { return "json" },
	}
}

func execute(t *testing.T, mock *application.Mock, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewCommand(mock)
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), err
}

func readRecords(t *testing.T, path string) map[string]characters.Record {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var records []characters.Record
	require.NoError(t, json.Unmarshal(data, &records))

	byURL := make(map[string]characters.Record, len(records))
	for _, r := range records {
		byURL[r.Key()] = r
	}
	return byURL
}

func TestConsolidate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "characters.json")

	stdout, err := execute(t, newMock(writeSnapshot(t), out))
	require.NoError(t, err)

	var summary map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &summary))
	assert.Contains(t, summary, "stats")

	records := readRecords(t, out)
	require.Len(t, records, 2)

	hulk := records["https://en.wikipedia.org/wiki/Hulk"]
	assert.Equal(t, "Hulk", hulk.DisplayName())
	assert.Equal(t, 12, hulk.Ranking.ComicCount)
	assert.Equal(t, 120, hulk.Ranking.PageviewCount)
	require.NotNil(t, hulk.URLs.Marvel)
	assert.Equal(t, "https://www.marvel.com/characters/hulk", *hulk.URLs.Marvel)

	widow := records["https://en.wikipedia.org/wiki/Black_Widow"]
	assert.Equal(t, "Black Widow (Claire Voyant)", widow.DisplayName())
	require.NotNil(t, widow.Description)
	assert.Equal(t, "A spy.", *widow.Description)
}

func TestConsolidateYAMLAndProvenance(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "characters.yaml")
	prov := filepath.Join(dir, "provenance.yaml")

	_, err := execute(t, newMock(writeSnapshot(t), out), "--provenance", prov, "--no-dedupe", "-c", "2")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: Hulk")

	pf, err := provenance.Load(prov)
	require.NoError(t, err)
	require.NotNil(t, pf)
	assert.NotEmpty(t, pf.Provenance)
}

func TestConsolidateDryRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "characters.json")

	stdout, err := execute(t, newMock(writeSnapshot(t), out), "--dry-run")
	require.NoError(t, err)

	var records []characters.Record
	require.NoError(t, json.Unmarshal([]byte(stdout), &records))
	assert.Len(t, records, 2)

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestConsolidateTableNotices(t *testing.T) {
	input := writeSnapshot(t)
	out := filepath.Join(t.TempDir(), "characters.json")
	mock := newMock(input, out)
	mock.OutputFormatFunc = func() string { return "table" }

	run := func() string {
		var stdout, stderr bytes.Buffer
		cmd := NewCommand(mock)
		cmd.SetArgs(nil)
		cmd.SetOut(&stdout)
		cmd.SetErr(&stderr)
		require.NoError(t, cmd.Execute())
		return stderr.String()
	}

	first := run()
	assert.Contains(t, first, "✓ "+out+" (written)")
	assert.Contains(t, first, "Consolidated 2 bundles into 2 records")

	second := run()
	assert.Contains(t, second, "i "+out+" (unchanged)")
}

func TestConsolidateNoColor(t *testing.T) {
	out := filepath.Join(t.TempDir(), "characters.json")
	asked := false
	mock := newMock(writeSnapshot(t), out)
	mock.OutputFormatFunc = func() string { return "table" }
	mock.NoColorFunc = func() bool {
		asked = true
		return true
	}

	var stdout, stderr bytes.Buffer
	cmd := NewCommand(mock)
	cmd.SetArgs(nil)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	require.NoError(t, cmd.Execute())

	assert.True(t, asked)
	assert.Contains(t, stderr.String(), "(written)")
	assert.NotContains(t, stderr.String(), "\033[")
}

func TestConsolidateErrors(t *testing.T) {
	t.Run("missing snapshot", func(t *testing.T) {
		_, err := execute(t, newMock(filepath.Join(t.TempDir(), "nope"), "out.json"))
		assert.Error(t, err)
	})

	t.Run("bad save format", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "characters.json")
		_, err := execute(t, newMock(writeSnapshot(t), out), "--save-format", "toml")
		assert.Error(t, err)
	})

	t.Run("bad concurrency", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "characters.json")
		_, err := execute(t, newMock(writeSnapshot(t), out), "-c", "100000")
		assert.Error(t, err)
	})
}

func TestSaveFormatFor(t *testing.T) {
	tests := []struct {
		flag, path string
		want       save.Format
	}{
		{"", "out/characters.json", save.FormatJSON},
		{"", "out/characters.YML", save.FormatYAML},
		{"", "characters", save.FormatJSON},
		{"yaml", "characters.json", save.FormatYAML},
	}
	for _, tt := range tests {
		got, err := saveFormatFor(tt.flag, tt.path)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.path)
	}
}
