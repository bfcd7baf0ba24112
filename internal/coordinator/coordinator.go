package coordinator

import (
	"context"
	"log/slog"
	"sync"

	"github.com/HarshTechPioneers/news-ai-dashboard/internal/cache"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/domain"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/newsapi"
)

// FetchErrorMessage is the user facing text published when a fetch fails.
const FetchErrorMessage = "Failed to fetch articles. Please try again later."

// State is the observable output of the coordinator.
type State struct {
	Key      cache.Key
	Articles []domain.Article
	Loading  bool
	Error    string

	version uint64
}

type Option func(c *Coordinator)

// Coordinator owns the article cache and the loading/error state of one session.
//
// Every call takes a new request token. A network result is published only while its
// token is the latest one issued, so a slow response can never overwrite the state of
// a request made after it.
type Coordinator struct {
	provider newsapi.Provider
	cache    *cache.ArticleCache
	country  string
	listener func(State)

	mu     sync.Mutex
	state  State
	latest uint64
	last   *cache.Request

	notifyMu     sync.Mutex
	lastNotified uint64
}

func New(provider newsapi.Provider, opts ...Option) *Coordinator {
	c := &Coordinator{
		provider: provider,
		cache:    cache.NewArticleCache(),
		country:  newsapi.DefaultCountry,
		state:    State{Articles: []domain.Article{}},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func WithCache(articleCache *cache.ArticleCache) Option {
	return func(c *Coordinator) {
		c.cache = articleCache
	}
}

func WithCountry(country string) Option {
	return func(c *Coordinator) {
		if country != "" {
			c.country = country
		}
	}
}

// WithListener registers a callback receiving every published state, oldest first.
// Snapshots superseded before delivery are skipped.
func WithListener(listener func(State)) Option {
	return func(c *Coordinator) {
		c.listener = listener
	}
}

// State returns a snapshot of the current observable state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// FetchArticles loads the articles for a search text or, when query is blank, for a
// category. Served from cache when the key was fetched before.
func (c *Coordinator) FetchArticles(ctx context.Context, category, query string) State {
	return c.fetch(ctx, cache.NewRequest(category, query))
}

// Retry repeats the most recent request, or loads the default category if none was made.
func (c *Coordinator) Retry(ctx context.Context) State {
	c.mu.Lock()
	req := cache.NewRequest("", "")
	if c.last != nil {
		req = *c.last
	}
	c.mu.Unlock()

	return c.fetch(ctx, req)
}

func (c *Coordinator) fetch(ctx context.Context, req cache.Request) State {
	key := req.Key()

	c.mu.Lock()
	c.latest++
	token := c.latest
	c.last = &req

	if cached, ok := c.cache.Get(key); ok {
		c.state.Key = key
		c.state.Articles = cached
		c.state.Error = ""
		c.state.Loading = false
		snap := c.publishLocked()
		c.mu.Unlock()

		slog.Debug("Serving articles from cache", "key", key, "count", len(cached))
		c.notify(snap)
		return snap
	}

	c.state.Key = key
	c.state.Loading = true
	c.state.Error = ""
	snap := c.publishLocked()
	c.mu.Unlock()
	c.notify(snap)

	// in-flight requests are never aborted, a newer call only supersedes them
	articles, err := c.request(context.WithoutCancel(ctx), req)
	if err == nil {
		articles = c.cache.Put(key, articles)
	}

	c.mu.Lock()
	if latest := c.latest; token != latest {
		snap = c.snapshotLocked()
		c.mu.Unlock()
		slog.Debug("Discarding superseded fetch result", "key", key, "token", token, "latest", latest)
		return snap
	}

	if err != nil {
		slog.Error("Error fetching articles", "key", key, "error", err)
		c.state.Error = FetchErrorMessage
	} else {
		c.state.Articles = articles
	}
	c.state.Loading = false
	snap = c.publishLocked()
	c.mu.Unlock()

	c.notify(snap)
	return snap
}

func (c *Coordinator) request(ctx context.Context, req cache.Request) ([]domain.Article, error) {
	var (
		resp *newsapi.Response
		err  error
	)
	if req.IsSearch() {
		resp, err = c.provider.Search(ctx, req.Query)
	} else {
		resp, err = c.provider.TopHeadlines(ctx, c.country, req.Category)
	}
	if err != nil {
		return nil, err
	}

	valid := domain.FilterValid(resp.Articles)
	slog.Info("Fetched articles", "key", req.Key(), "received", len(resp.Articles), "valid", len(valid))
	return valid, nil
}

func (c *Coordinator) publishLocked() State {
	c.state.version++
	return c.snapshotLocked()
}

func (c *Coordinator) snapshotLocked() State {
	s := c.state
	s.Articles = make([]domain.Article, len(c.state.Articles))
	copy(s.Articles, c.state.Articles)
	return s
}

func (c *Coordinator) notify(s State) {
	if c.listener == nil {
		return
	}

	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	if s.version <= c.lastNotified {
		return
	}
	c.lastNotified = s.version
	c.listener(s)
}
