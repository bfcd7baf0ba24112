package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/HarshTechPioneers/news-ai-dashboard/internal/categories"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/newsapi"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/storage/factory"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/summarizer"
	"github.com/HarshTechPioneers/news-ai-dashboard/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type NewsHubConfig struct {
	LogLevel      slog.Level
	News          newsapi.Config
	Summarizer    summarizer.Config
	StorageConfig factory.StorageConfig
	Catalog       *categories.Catalog
}

func (as *AppConfig) Load() (*NewsHubConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/news_hub/.env", ".env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	level, err := parseLogLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}

	newsCfg, err := newsapi.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load news provider configuration", "error", err)
		return nil, err
	}

	summarizerCfg, err := summarizer.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load summarizer configuration", "error", err)
		return nil, err
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	catalog, err := categories.LoadEnv()
	if err != nil {
		slog.Error("Failed to load category catalog", "error", err)
		return nil, err
	}

	return &NewsHubConfig{
		LogLevel:      level,
		News:          *newsCfg,
		Summarizer:    *summarizerCfg,
		StorageConfig: *storageCfg,
		Catalog:       catalog,
	}, nil
}

func parseLogLevel(value string) (slog.Level, error) {
	if value == "" {
		return slog.LevelInfo, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(value))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", value, err)
	}
	return level, nil
}
