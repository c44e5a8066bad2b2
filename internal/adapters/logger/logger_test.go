package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/emojilens/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Pretty(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)

	lg.Info("watching notes.md")
	lg.Warn("no bot token")
	lg.Debug("hidden")
	lg.Error(zerr.Wrap(zerr.New("connection reset"), "telegram bot api request failed"))
	lg.Error(nil)

	want := "watching notes.md\n" +
		"! no bot token\n" +
		"✗ Error: telegram bot api request failed\n\n  Caused by:\n    → connection reset\n"
	assert.Equal(t, want, buf.String())
}

func TestLogger_Verbose(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	lg.SetVerbose(true)

	lg.Debug("pass scheduled")
	assert.Equal(t, "pass scheduled\n", buf.String())
}

func TestLogger_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	lg.SetJSON(true)

	lg.Info("started")
	lg.Error(zerr.With(zerr.New("invalid setting"), "debounce", -1))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &info))
	assert.Equal(t, "INFO", info["level"])
	assert.Equal(t, "started", info["msg"])

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec))
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "operation failed", rec["msg"])
	assert.Equal(t, "invalid setting", rec["error"])
	assert.InDelta(t, -1, rec["debounce"], 0)
}

func TestLogger_SetOutputKeepsMode(t *testing.T) {
	lg := logger.New()
	lg.SetJSON(true)

	buf := &bytes.Buffer{}
	lg.SetOutput(buf)
	lg.Warn("careful")

	assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
