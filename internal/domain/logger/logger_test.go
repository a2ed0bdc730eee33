package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureDefault(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestQueryLogger_Log(t *testing.T) {
	buf := captureDefault(t)

	NewQueryLogger("take_ownership", 42).Log(nil, false, 0)
	assert.Contains(t, buf.String(), "operation=take_ownership")
	assert.Contains(t, buf.String(), "applied=false")
	assert.Contains(t, buf.String(), "guild_id=42")

	buf.Reset()
	NewQueryLogger("withdraw", 7).Log(errors.New("conn reset"), false, 0)
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "conn reset")
}
