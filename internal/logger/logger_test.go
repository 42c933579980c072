package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevel_ToCharmlogLevel(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected charmlog.Level
	}{
		{DebugLevel, charmlog.DebugLevel},
		{InfoLevel, charmlog.InfoLevel},
		{WarnLevel, charmlog.WarnLevel},
		{ErrorLevel, charmlog.ErrorLevel},
		{DisabledLevel, charmlog.Level(1000)},
		{LogLevel("unknown"), charmlog.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.level.ToCharmlogLevel(), "level %s", tt.level)
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&Config{Level: InfoLevel, Output: &buf, JSON: true})

	l.With("path", "src/a.ts").Error("tslint scan failed", "err", "boom")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "tslint scan failed", entry["msg"])
	assert.Equal(t, "src/a.ts", entry["path"])
	assert.Equal(t, "boom", entry["err"])
}

func TestNewLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&Config{Level: WarnLevel, Output: &buf})

	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestFromContext(t *testing.T) {
	t.Run("returns attached logger", func(t *testing.T) {
		expected := NewLogger(&Config{Level: DisabledLevel})
		ctx := ContextWithLogger(context.Background(), expected)
		assert.Equal(t, expected, FromContext(ctx))
	})

	t.Run("falls back to default", func(t *testing.T) {
		l := FromContext(context.Background())
		require.NotNil(t, l)
	})

	t.Run("ignores nil logger", func(t *testing.T) {
		ctx := ContextWithLogger(context.Background(), nil)
		require.NotNil(t, FromContext(ctx))
	})
}
