package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"", zapcore.InfoLevel, false},
		{"debug", zapcore.DebugLevel, false},
		{" WARN ", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"loud", zapcore.InfoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizeKVs(t *testing.T) {
	out := sanitizeKVs([]any{"email", "a@b.c", "level", 3, "OPENAI_API_KEY", "sk-1", "dangling"})
	assert.Equal(t, []any{"email", "[REDACTED]", "level", 3, "OPENAI_API_KEY", "[REDACTED]", "dangling"}, out)
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	l, err := New(Options{Level: "info", File: path})
	require.NoError(t, err)

	l.With("component", "test").Info("hello", "email", "x@y.z")
	l.Debug("hidden")
	l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, `"msg":"hello"`)
	assert.Contains(t, s, `"component":"test"`)
	assert.Contains(t, s, "[REDACTED]")
	assert.False(t, strings.Contains(s, "hidden"))
}
