package es

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/HarshTechPioneers/news-ai-dashboard/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
)

// Document holds one stored value. Value is serialized as base64 and mapped as binary.
type Document struct {
	Value     []byte    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Store struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewStore(ctx context.Context, config ClientConfig) (*Store, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	indexName := config.IndexName
	if indexName == "" {
		indexName = DefaultIndexName
	}

	s := &Store{
		client:    client,
		indexName: indexName,
	}

	if err := s.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return s, nil
}

func (s *Store) EnsureIndex(ctx context.Context) error {
	exists, err := s.client.Indices.Exists(s.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if exists {
		slog.Info("Index already exists", "index", s.indexName)
		return nil
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"value":      types.NewBinaryProperty(),
			"updated_at": types.NewDateProperty(),
		},
	}

	createRes, err := s.client.Indices.Create(s.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", s.indexName)
	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	res, err := s.client.Get(s.indexName, key).Do(ctx)
	if err != nil {
		var esErr *types.ElasticsearchError
		if errors.As(err, &esErr) && esErr.Status == http.StatusNotFound {
			return nil, storage.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to get document %s: %w", key, err)
	}

	if !res.Found {
		return nil, storage.ErrKeyNotFound
	}

	var doc Document
	if err := json.Unmarshal(res.Source_, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document %s: %w", key, err)
	}
	return doc.Value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	doc := Document{
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}

	res, err := s.client.Index(s.indexName).
		Id(key).
		Document(doc).
		Refresh(refresh.True).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to index document %s: %w", key, err)
	}

	slog.Debug("Document indexed", "id", key, "index", s.indexName, "result", res.Result)
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	ok, err := s.client.Ping().IsSuccess(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("elasticsearch ping was not successful")
	}
	return nil
}

func (s *Store) Close() error {
	return nil
}
