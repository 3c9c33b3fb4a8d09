package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
		warns    bool
	}{
		{name: "default level when no flags set", config: &Config{}, expected: "info"},
		{name: "verbose flag sets debug", config: &Config{Verbose: true}, expected: "debug"},
		{name: "quiet flag sets warn", config: &Config{Quiet: true}, expected: "warn"},
		{name: "explicit log-level overrides verbose", config: &Config{LogLevel: "error", Verbose: true}, expected: "error"},
		{name: "explicit log-level overrides quiet", config: &Config{LogLevel: "trace", Quiet: true}, expected: "trace"},
		{name: "both verbose and quiet uses quiet", config: &Config{Verbose: true, Quiet: true}, expected: "warn", warns: true},
		{name: "invalid log-level falls back to info", config: &Config{LogLevel: "loud"}, expected: "info", warns: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var warnings bytes.Buffer
			assert.Equal(t, tt.expected, determineLogLevel(tt.config, &warnings))
			assert.Equal(t, tt.warns, warnings.Len() > 0)
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger := newLogger(&Config{LogLevel: "warn", LogFormat: "json", LogOutput: "discard"}, &bytes.Buffer{})
	assert.Equal(t, "warn", logger.GetLevel().String())
}
