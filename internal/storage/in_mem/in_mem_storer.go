package in_mem

import (
	"context"
	"log/slog"
	"sync"

	"github.com/HarshTechPioneers/news-ai-dashboard/internal/storage"
)

type Store struct {
	storageLock sync.RWMutex
	storage     map[string][]byte
}

func NewStore() *Store {
	return &Store{
		storage: make(map[string][]byte),
	}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	value, ok := s.storage[key]
	if !ok {
		return nil, storage.ErrKeyNotFound
	}
	return append([]byte(nil), value...), nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	s.storage[key] = append([]byte(nil), value...)
	slog.Debug("Saved value to in-memory storage", "key", key, "bytes", len(value))
	return nil
}

func (s *Store) Ping(context.Context) error {
	return nil
}

func (s *Store) Close() error {
	return nil
}
