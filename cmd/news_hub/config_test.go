package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		got, err := parseLogLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := parseLogLevel("verbose")
	assert.Error(t, err)
}

func TestAppConfig_LoadRequiresNewsKey(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("ENV_PATH", "does-not-exist.env")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("NEWS_API_KEY", "")

	_, err := NewAppConfig().Load()

	assert.Error(t, err)
}

func TestAppConfig_Load(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("ENV_PATH", "does-not-exist.env")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("NEWS_API_KEY", "news-key")
	t.Setenv("NEWS_COUNTRY", "gb")
	t.Setenv("SUMMARIZER_PROVIDER", "")
	t.Setenv("SUMMARIZER_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("STORAGE_TYPE", "in_mem")
	t.Setenv("CATEGORIES_FILE", "")

	cfg, err := NewAppConfig().Load()

	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "news-key", cfg.News.APIKey)
	assert.Equal(t, "gb", cfg.News.Country)
	assert.Empty(t, cfg.Summarizer.APIKey, "a missing summarizer key must not fail startup")
	assert.Len(t, cfg.Catalog.Categories, 7)
}
