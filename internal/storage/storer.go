package storage

import (
	"context"
	"errors"
)

// Store is a string-keyed blob store. Set replaces the whole value of a key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Close() error
}

type Type string

const (
	InMem  Type = "in_mem"
	File   Type = "file"
	SQLite Type = "sqlite"
	PG     Type = "pg"
	Redis  Type = "redis"
	ES     Type = "es"
)

var Types = []Type{InMem, File, SQLite, PG, Redis, ES}

func (t Type) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

var ErrKeyNotFound = errors.New("key not found")

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storage type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
