package cache

import (
	"testing"

	"github.com/HarshTechPioneers/news-ai-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleArticles() []domain.Article {
	return []domain.Article{
		{Title: "Post A", URL: "https://a.com"},
		{Title: "Post B", URL: "https://b.com"},
	}
}

func TestNewRequest(t *testing.T) {
	tests := []struct {
		name     string
		category string
		query    string
		want     Request
		wantKey  Key
	}{
		{"query wins", "business", "election", Request{Query: "election"}, "search:election"},
		{"category only", "business", "", Request{Category: "business"}, "category:business"},
		{"default category", "", "", Request{Category: DefaultCategory}, "category:general"},
		{"blank query ignored", "sports", "   ", Request{Category: "sports"}, "category:sports"},
		{"query trimmed", "", "  mars rover ", Request{Query: "mars rover"}, "search:mars rover"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewRequest(tt.category, tt.query)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantKey, got.Key())
		})
	}
}

func TestKeys_CategoryAndSearchDoNotCollide(t *testing.T) {
	assert.NotEqual(t, CategoryKey("sports"), SearchKey("sports"))
}

func TestArticleCache_GetMiss(t *testing.T) {
	c := NewArticleCache()

	got, ok := c.Get(CategoryKey("business"))

	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestArticleCache_PutAndGet(t *testing.T) {
	c := NewArticleCache()
	key := SearchKey("election")

	c.Put(key, sampleArticles())
	got, ok := c.Get(key)

	require.True(t, ok)
	assert.Equal(t, sampleArticles(), got)
	assert.Equal(t, 1, c.Len())
}

func TestArticleCache_WriteOnce(t *testing.T) {
	c := NewArticleCache()
	key := CategoryKey("science")

	c.Put(key, sampleArticles())
	kept := c.Put(key, []domain.Article{{Title: "later", URL: "https://later.com"}})

	assert.Equal(t, sampleArticles(), kept)
	got, _ := c.Get(key)
	assert.Equal(t, sampleArticles(), got)
}

func TestArticleCache_EmptyListIsAnEntry(t *testing.T) {
	c := NewArticleCache()
	key := SearchKey("nothing matches")

	c.Put(key, []domain.Article{})
	got, ok := c.Get(key)

	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestArticleCache_CallersCannotMutateEntries(t *testing.T) {
	c := NewArticleCache()
	key := CategoryKey("health")
	in := sampleArticles()

	c.Put(key, in)
	in[0].Title = "mutated input"
	got, _ := c.Get(key)
	got[1].Title = "mutated output"

	again, _ := c.Get(key)
	assert.Equal(t, sampleArticles(), again)
}
