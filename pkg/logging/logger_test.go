package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)

	logger.Info().Str("source", "infobox").Msg("loaded")

	output := buf.String()
	if !strings.Contains(output, `"source":"infobox"`) {
		t.Errorf("expected source field in output, got %s", output)
	}
	if !strings.Contains(output, `"message":"loaded"`) {
		t.Errorf("expected message in output, got %s", output)
	}
}

func TestSetDefault(t *testing.T) {
	original := *Default()
	defer SetDefault(original)

	var buf bytes.Buffer
	oldLevel := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer zerolog.SetGlobalLevel(oldLevel)

	SetDefault(zerolog.New(&buf).Level(zerolog.DebugLevel))

	Debug().Msg("debug entry")
	Info().Msg("info entry")
	Warn().Msg("warn entry")
	Error().Msg("error entry")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 log lines, got %d: %s", len(lines), buf.String())
	}
}

func TestCaptureLoggingForTest(t *testing.T) {
	captured := CaptureLoggingForTest(t)

	Info().Str("pick_type", "exactMatch").Msg("resolved character")

	captured.AssertContains(t, "resolved character")
	captured.AssertContains(t, `"pick_type":"exactMatch"`)
	captured.AssertNotContains(t, "ambiguous")
	if captured.Count() != 1 {
		t.Errorf("expected 1 entry, got %d", captured.Count())
	}

	captured.Clear()
	if captured.Count() != 0 {
		t.Errorf("expected empty buffer after Clear, got %d entries", captured.Count())
	}
}

func TestDisableLoggingForTest(t *testing.T) {
	DisableLoggingForTest(t)
	// Nop logger reports disabled level.
	if Default().GetLevel() != zerolog.Disabled {
		t.Errorf("expected disabled logger, got %v", Default().GetLevel())
	}
}
