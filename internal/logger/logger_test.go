package logger

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		pretty   bool
		expected zerolog.Level
	}{
		{name: "debug level", level: "debug", expected: zerolog.DebugLevel},
		{name: "info level", level: "info", expected: zerolog.InfoLevel},
		{name: "warn level", level: "warn", expected: zerolog.WarnLevel},
		{name: "error level", level: "error", expected: zerolog.ErrorLevel},
		{name: "invalid level defaults to info", level: "invalid", expected: zerolog.InfoLevel},
		{name: "pretty output", level: "info", pretty: true, expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.level, tt.pretty)
			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
			assert.NotNil(t, Logger())
		})
	}
}

func TestSetup_WithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")

	Setup(Options{Level: "info", File: path})
	defer Init("info", false)

	l := Logger()
	l.Info().Str("component", "test").Msg("written to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
	assert.Contains(t, string(data), `"component":"test"`)
}

func TestWithContext(t *testing.T) {
	Init("info", false)

	tests := []struct {
		name   string
		fields map[string]interface{}
	}{
		{name: "empty fields", fields: map[string]interface{}{}},
		{name: "single field", fields: map[string]interface{}{"key": "value"}},
		{
			name: "multiple fields",
			fields: map[string]interface{}{
				"key1": "value1",
				"key2": 123,
				"key3": true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := WithContext(tt.fields)
			assert.NotNil(t, logger)
		})
	}
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	original := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = original }()

	t.Run("falls back to global logger", func(t *testing.T) {
		buf.Reset()
		l := FromContext(context.Background())
		l.Info().Msg("plain")
		assert.Contains(t, buf.String(), "plain")
		assert.NotContains(t, buf.String(), "request_id")
	})

	t.Run("uses request scoped logger", func(t *testing.T) {
		buf.Reset()
		ctx := WithRequestID(context.Background(), "req-42")
		l := FromContext(ctx)
		l.Info().Msg("scoped")
		assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	})
}
