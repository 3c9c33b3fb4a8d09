package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/heromap/pkg/constants"
	"github.com/agentstation/heromap/pkg/errors"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultInputDir, config.Input)
	assert.Equal(t, constants.DefaultOutputFile, config.Output)
	assert.Equal(t, constants.DefaultConcurrency, config.Concurrency)
	assert.True(t, config.Deduplicate)
	assert.Empty(t, config.Provenance)
	assert.Equal(t, "auto", config.LogFormat)
	assert.Equal(t, "stderr", config.LogOutput)
}

func TestLoadConfigEnvironment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("HEROMAP_INPUT", "snapshots/2024-06")
	t.Setenv("HEROMAP_CONCURRENCY", "4")
	t.Setenv("HEROMAP_DEDUPLICATE", "false")
	t.Setenv("HEROMAP_LOG_LEVEL", "debug")

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "snapshots/2024-06", config.Input)
	assert.Equal(t, 4, config.Concurrency)
	assert.False(t, config.Deduplicate)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heromap.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
input: data/latest
output: out/characters.yaml
provenance: out/provenance.yaml
concurrency: 3
format: yaml
`), 0o600))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "data/latest", config.Input)
	assert.Equal(t, "out/characters.yaml", config.Output)
	assert.Equal(t, "out/provenance.yaml", config.Provenance)
	assert.Equal(t, 3, config.Concurrency)
	assert.Equal(t, "yaml", config.Format)
	assert.Equal(t, path, config.ConfigFile)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	var configErr *errors.ConfigError
	assert.True(t, errors.As(err, &configErr))

	path := filepath.Join(t.TempDir(), "heromap.yaml")
	require.NoError(t, os.WriteFile(path, []byte("concurrency: 0\n"), 0o600))
	_, err = LoadConfig(path)
	assert.True(t, errors.As(err, &configErr))
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateFromFlags(t *testing.T) {
	config := &Config{Format: "table", LogLevel: "info"}

	config.UpdateFromFlags(Flags{Verbose: true, Format: "json"})
	assert.True(t, config.Verbose)
	assert.Equal(t, "json", config.Format)
	assert.Equal(t, "info", config.LogLevel)

	config.UpdateFromFlags(Flags{LogLevel: "trace"})
	assert.Equal(t, "json", config.Format)
	assert.Equal(t, "trace", config.LogLevel)
}
