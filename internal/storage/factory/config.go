package factory

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/HarshTechPioneers/news-ai-dashboard/internal/storage"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/storage/es"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/storage/pg"
	redisstore "github.com/HarshTechPioneers/news-ai-dashboard/internal/storage/redis"
	"github.com/HarshTechPioneers/news-ai-dashboard/pkg/utils"
)

const DefaultType = storage.File

type StorageConfig struct {
	storage.Type
	FileDir    string
	SQLitePath string
	Pg         *pg.PoolConfig
	Redis      *redisstore.Config
	Es         *es.ClientConfig
}

func LoadEnv() (*StorageConfig, error) {
	storageType := storage.Type(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		storageType = DefaultType
	}
	if !storageType.Valid() {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			storage.Types)
	}

	cfg := &StorageConfig{
		Type:       storageType,
		FileDir:    os.Getenv("STORAGE_FILE_DIR"),
		SQLitePath: os.Getenv("SQLITE_PATH"),
	}

	switch storageType {
	case storage.ES:
		cfg.Es = &es.ClientConfig{
			Addresses: utils.SplitList(os.Getenv("ES_ADDRESSES")),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if len(cfg.Es.Addresses) == 0 {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", cfg.Es.Addresses)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: ES_ADDRESSES is missing")
		}
	case storage.PG:
		cfg.Pg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if cfg.Pg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PG_CONNECTION_STRING is not set")
		}
	case storage.Redis:
		cfg.Redis = &redisstore.Config{
			URL: os.Getenv("REDIS_URL"),
		}
		if cfg.Redis.URL == "" {
			slog.Error("Redis URL is not set")
			return nil, fmt.Errorf("REDIS_URL is not set")
		}
	}

	return cfg, nil
}
