package cache

import (
	"sync"

	"github.com/HarshTechPioneers/news-ai-dashboard/internal/domain"
)

// ArticleCache is a session scoped read-through cache of validated article lists.
// Entries are written once and never evicted.
type ArticleCache struct {
	mu      sync.RWMutex
	entries map[Key][]domain.Article
}

func NewArticleCache() *ArticleCache {
	return &ArticleCache{
		entries: make(map[Key][]domain.Article),
	}
}

func (c *ArticleCache) Get(key Key) ([]domain.Article, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	articles, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return clone(articles), true
}

// Put stores articles under key unless the key is already populated. The returned
// list is the one held by the cache after the call.
func (c *ArticleCache) Put(key Key, articles []domain.Article) []domain.Article {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[key]; ok {
		return clone(existing)
	}
	stored := clone(articles)
	c.entries[key] = stored
	return clone(stored)
}

func (c *ArticleCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func clone(articles []domain.Article) []domain.Article {
	out := make([]domain.Article, len(articles))
	copy(out, articles)
	return out
}
