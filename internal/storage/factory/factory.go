package factory

import (
	"context"
	"fmt"

	"github.com/HarshTechPioneers/news-ai-dashboard/internal/storage"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/storage/es"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/storage/file"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/storage/in_mem"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/storage/pg"
	redisstore "github.com/HarshTechPioneers/news-ai-dashboard/internal/storage/redis"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/storage/sqlite"
)

// NewStore creates a storage.Store for the configured backend.
func NewStore(ctx context.Context, cfg *StorageConfig) (storage.Store, error) {
	switch cfg.Type {
	case storage.InMem:
		return in_mem.NewStore(), nil

	case storage.File:
		return file.NewStore(cfg.FileDir)

	case storage.SQLite:
		return sqlite.NewStore(ctx, cfg.SQLitePath)

	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}

		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}

		store, err := pg.NewStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return store, nil

	case storage.Redis:
		if cfg.Redis == nil {
			return nil, fmt.Errorf("missing Redis configuration")
		}
		return redisstore.NewStore(ctx, *cfg.Redis)

	case storage.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		return es.NewStore(ctx, *cfg.Es)

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
