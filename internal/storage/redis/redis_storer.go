package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/HarshTechPioneers/news-ai-dashboard/internal/storage"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "newsdash:"

type Config struct {
	URL string
}

type Store struct {
	client *redis.Client
}

// NewStore connects to Redis. URL accepts both redis:// URLs and bare host:port addresses.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		opt = &redis.Options{Addr: cfg.URL}
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	slog.Info("Connected to Redis", "addr", opt.Addr, "db", opt.DB)
	return &Store{client: client}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, storage.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}
