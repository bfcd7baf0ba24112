package newsapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/HarshTechPioneers/news-ai-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	path   string
	query  url.Values
	apiKey string
}

func newTestServer(t *testing.T, status int, payload any) (*Client, *[]capturedRequest) {
	t.Helper()

	var captured []capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = append(captured, capturedRequest{
			path:   r.URL.Path,
			query:  r.URL.Query(),
			apiKey: r.Header.Get("X-Api-Key"),
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, "test-key", WithHttpClient(srv.Client()))
	require.NoError(t, err)

	return client, &captured
}

func okPayload() map[string]any {
	return map[string]any{
		"status":       "ok",
		"totalResults": 2,
		"articles": []map[string]any{
			{
				"source":      map[string]any{"id": "reuters", "name": "Reuters"},
				"author":      "Jane Doe",
				"title":       "Fed holds rates",
				"description": "The Fed kept rates unchanged.",
				"url":         "https://example.com/fed",
				"urlToImage":  "https://example.com/fed.jpg",
				"publishedAt": "2026-10-17T09:00:00Z",
				"content":     "The Federal Reserve kept... [+1532 chars]",
			},
			{
				"source":      map[string]any{"id": nil, "name": "Blog"},
				"title":       "[Removed]",
				"url":         "https://removed.com",
				"publishedAt": "1970-01-01T00:00:00Z",
			},
		},
	}
}

func TestClient_TopHeadlines(t *testing.T) {
	client, captured := newTestServer(t, http.StatusOK, okPayload())

	resp, err := client.TopHeadlines(context.Background(), "us", "business")
	require.NoError(t, err)

	require.Len(t, *captured, 1)
	req := (*captured)[0]
	assert.Equal(t, "/top-headlines", req.path)
	assert.Equal(t, "us", req.query.Get("country"))
	assert.Equal(t, "business", req.query.Get("category"))
	assert.Equal(t, "20", req.query.Get("pageSize"))
	assert.Equal(t, "test-key", req.apiKey)

	assert.Equal(t, 2, resp.TotalResults)
	require.Len(t, resp.Articles, 2)
	assert.Equal(t, domain.Article{
		Source:      domain.Source{ID: "reuters", Name: "Reuters"},
		Author:      "Jane Doe",
		Title:       "Fed holds rates",
		Description: "The Fed kept rates unchanged.",
		URL:         "https://example.com/fed",
		URLToImage:  "https://example.com/fed.jpg",
		PublishedAt: "2026-10-17T09:00:00Z",
		Content:     "The Federal Reserve kept... [+1532 chars]",
	}, resp.Articles[0])
	// the client does not filter, the coordinator does
	assert.Equal(t, domain.RemovedTitle, resp.Articles[1].Title)
}

func TestClient_TopHeadlines_OmitsEmptyCategory(t *testing.T) {
	client, captured := newTestServer(t, http.StatusOK, okPayload())

	_, err := client.TopHeadlines(context.Background(), "us", "")
	require.NoError(t, err)

	_, present := (*captured)[0].query["category"]
	assert.False(t, present, "category must be absent for the country-wide feed")
}

func TestClient_Search(t *testing.T) {
	client, captured := newTestServer(t, http.StatusOK, okPayload())

	_, err := client.Search(context.Background(), "election")
	require.NoError(t, err)

	req := (*captured)[0]
	assert.Equal(t, "/everything", req.path)
	assert.Equal(t, "election", req.query.Get("q"))
	assert.Equal(t, "publishedAt", req.query.Get("sortBy"))
	assert.Equal(t, "20", req.query.Get("pageSize"))
	assert.Equal(t, "en", req.query.Get("language"))
}

func TestClient_ProviderError(t *testing.T) {
	client, _ := newTestServer(t, http.StatusUnauthorized, map[string]any{
		"status":  "error",
		"code":    "apiKeyInvalid",
		"message": "Your API key is invalid or incorrect.",
	})

	_, err := client.Search(context.Background(), "election")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetch)
	assert.Contains(t, err.Error(), "apiKeyInvalid")
}

func TestClient_ErrorStatusInOkResponse(t *testing.T) {
	client, _ := newTestServer(t, http.StatusOK, map[string]any{
		"status":  "error",
		"code":    "rateLimited",
		"message": "You have made too many requests recently.",
	})

	_, err := client.TopHeadlines(context.Background(), "us", "general")

	assert.ErrorIs(t, err, ErrFetch)
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client, err := NewClient(srv.URL, "k")
	require.NoError(t, err)

	_, err = client.TopHeadlines(context.Background(), "us", "")

	assert.ErrorIs(t, err, ErrFetch)
}

func TestClient_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>gateway</html>"))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, "k")
	require.NoError(t, err)

	_, err = client.Search(context.Background(), "x")

	assert.ErrorIs(t, err, ErrFetch)
}

func TestNewClient_DefaultsBaseURL(t *testing.T) {
	client, err := NewClient("", "k")
	require.NoError(t, err)
	assert.Equal(t, "newsapi.org", client.base.Host)
}
