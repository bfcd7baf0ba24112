// Package main News AI Dashboard API
// @title News AI Dashboard API
// @version 1.0
// @description Headlines, keyword search and AI article summaries with saved summary history
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	_ "github.com/HarshTechPioneers/news-ai-dashboard/docs"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/coordinator"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/newsapi"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/router"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/server"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/storage"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/storage/factory"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/summarizer"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/summary"
	"github.com/labstack/echo/v4"
)

const storageStartupTimeout = 30 * time.Second

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), storageStartupTimeout)
	store, err := factory.NewStore(startCtx, &cfg.StorageConfig)
	cancel()
	if err != nil {
		slog.Error("Failed to create storage", "type", cfg.StorageConfig.Type, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("Failed to close storage", "error", err)
		}
	}()

	s := server.New(sCfg, storage.NewHealthChecker(store)).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "News AI Dashboard API is running")
	})

	newsClient, err := newsapi.NewClient(cfg.News.BaseURL, cfg.News.APIKey)
	if err != nil {
		slog.Error("Failed to create news client", "error", err)
		os.Exit(1)
	}

	articles := coordinator.New(newsClient,
		coordinator.WithCountry(cfg.News.Country),
		coordinator.WithListener(func(st coordinator.State) {
			slog.Debug("Article state changed", "key", st.Key, "loading", st.Loading, "count", len(st.Articles), "error", st.Error)
		}),
	)

	sum, err := summarizer.New(cfg.Summarizer)
	if err != nil {
		slog.Error("Failed to create summarizer", "error", err)
		os.Exit(1)
	}
	summaries := summary.NewService(store, sum)

	router.NewNewsRouter(s.Echo, articles, cfg.Catalog).Bind()
	router.NewSummaryRouter(s.Echo, summaries).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
