package summary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/HarshTechPioneers/news-ai-dashboard/internal/apperr"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/domain"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/storage"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/summarizer"
)

// StorageKey is the store key holding the saved summaries as one JSON array.
const StorageKey = "savedSummaries"

// GenerateFailedMessage is shown to users when the summarization provider fails.
const GenerateFailedMessage = "Failed to generate summary. Please try again."

var ErrNoContent = apperr.NewValidation("No content available to summarize")

type Option func(s *Service)

// Service manages the lifecycle of saved summaries. The store holds the collection in
// creation order, every read-modify-write runs under one mutex.
type Service struct {
	store      storage.Store
	summarizer summarizer.Summarizer
	now        func() time.Time

	mu sync.Mutex
}

func NewService(store storage.Store, s summarizer.Summarizer, opts ...Option) *Service {
	svc := &Service{
		store:      store,
		summarizer: s,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Summarize generates a summary for the article and saves it. Content is preferred
// over the description. Nothing is persisted when generation fails.
func (s *Service) Summarize(ctx context.Context, article domain.Article) (domain.SavedSummary, error) {
	source := article.SummarySource()
	if source == "" {
		return domain.SavedSummary{}, ErrNoContent
	}

	text, err := s.summarizer.Summarize(ctx, source)
	if err != nil {
		if errors.Is(err, summarizer.ErrSummarize) {
			return domain.SavedSummary{}, apperr.NewUpstreamWrap(GenerateFailedMessage, err)
		}
		return domain.SavedSummary{}, err
	}

	return s.Create(ctx, article, text)
}

func (s *Service) Create(ctx context.Context, article domain.Article, text string) (domain.SavedSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved, err := s.read(ctx)
	if err != nil {
		return domain.SavedSummary{}, err
	}

	created := s.now()
	record := domain.SavedSummary{
		ID:        nextID(saved, created),
		Article:   article,
		Summary:   text,
		CreatedAt: created.UTC(),
	}

	if err := s.write(ctx, append(saved, record)); err != nil {
		return domain.SavedSummary{}, err
	}

	slog.Info("Saved summary", "id", record.ID, "title", article.Title)
	return record, nil
}

// List returns every saved summary, newest first.
func (s *Service) List(ctx context.Context) []domain.SavedSummary {
	s.mu.Lock()
	saved := s.load(ctx)
	s.mu.Unlock()

	out := make([]domain.SavedSummary, len(saved))
	for i, rec := range saved {
		out[len(saved)-1-i] = rec
	}
	return out
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved, err := s.read(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i, rec := range saved {
		if rec.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperr.NewNotFound(fmt.Sprintf("summary %d not found", id))
	}

	remaining := append(saved[:idx:idx], saved[idx+1:]...)
	if err := s.write(ctx, remaining); err != nil {
		return err
	}

	slog.Info("Deleted summary", "id", id)
	return nil
}

// load reads the collection for display. A missing, unreadable or corrupted value reads as empty.
func (s *Service) load(ctx context.Context) []domain.SavedSummary {
	saved, err := s.read(ctx)
	if err != nil {
		slog.Error("Error loading saved summaries", "error", err)
		return []domain.SavedSummary{}
	}
	return saved
}

// read reads the collection ahead of a write. Only a missing key reads as empty; any
// other failure is returned so the stored collection is never overwritten.
func (s *Service) read(ctx context.Context) ([]domain.SavedSummary, error) {
	data, err := s.store.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []domain.SavedSummary{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read saved summaries: %w", err)
	}

	var saved []domain.SavedSummary
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("failed to decode saved summaries: %w", err)
	}
	if saved == nil {
		saved = []domain.SavedSummary{}
	}
	return saved, nil
}

func (s *Service) write(ctx context.Context, saved []domain.SavedSummary) error {
	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("failed to encode saved summaries: %w", err)
	}

	if err := s.store.Set(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("failed to persist saved summaries: %w", err)
	}
	return nil
}

// nextID is the creation time in Unix milliseconds, bumped past the largest existing id
// when two records are created within the same millisecond.
func nextID(saved []domain.SavedSummary, created time.Time) int64 {
	id := created.UnixMilli()
	for _, rec := range saved {
		if rec.ID >= id {
			id = rec.ID + 1
		}
	}
	return id
}
