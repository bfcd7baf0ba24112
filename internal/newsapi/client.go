package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/HarshTechPioneers/news-ai-dashboard/internal/domain"
)

const (
	DefaultBaseURL = "https://newsapi.org/v2"
	PageSize       = 20

	defaultTimeout = 30 * time.Second
	apiKeyHeader   = "X-Api-Key"
)

// ErrFetch is wrapped by every failure to retrieve articles from the provider.
var ErrFetch = errors.New("news fetch failed")

type Response struct {
	Status       string           `json:"status"`
	TotalResults int              `json:"totalResults"`
	Articles     []domain.Article `json:"articles"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Provider is the read side of the news service used by the fetch coordinator.
type Provider interface {
	TopHeadlines(ctx context.Context, country, category string) (*Response, error)
	Search(ctx context.Context, query string) (*Response, error)
}

type ClientOption func(client *Client)

type Client struct {
	base   url.URL
	apiKey string
	http   *http.Client
}

func NewClient(baseUrl, apiKey string, opts ...ClientOption) (*Client, error) {
	if baseUrl == "" {
		baseUrl = DefaultBaseURL
	}
	base, err := url.Parse(baseUrl)
	if err != nil {
		return nil, fmt.Errorf("invalid news api base url: %w", err)
	}

	client := &Client{
		base:   *base,
		apiKey: apiKey,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

func WithHttpClient(httpClient *http.Client) ClientOption {
	return func(client *Client) {
		client.http = httpClient
	}
}

// TopHeadlines returns the country-wide headline feed, narrowed to category when one is given.
func (c *Client) TopHeadlines(ctx context.Context, country, category string) (*Response, error) {
	params := url.Values{}
	params.Set("country", country)
	if category != "" {
		params.Set("category", category)
	}
	params.Set("pageSize", strconv.Itoa(PageSize))

	return c.get(ctx, "/top-headlines", params)
}

// Search runs a full-text query over English articles, newest first.
func (c *Client) Search(ctx context.Context, query string) (*Response, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", strconv.Itoa(PageSize))
	params.Set("language", "en")

	return c.get(ctx, "/everything", params)
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*Response, error) {
	reqURL := c.base.JoinPath(path)
	reqURL.RawQuery = params.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	request.Header.Set(apiKeyHeader, c.apiKey)
	request.Header.Set("Accept", "application/json")

	slog.Debug("Requesting news provider", "path", path, "params", params.Encode())

	resp, err := c.http.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrFetch, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrFetch, describeFailure(resp.StatusCode, body))
	}

	var out Response
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: unmarshal response: %v", ErrFetch, err)
	}
	if out.Status == "error" {
		return nil, fmt.Errorf("%w: %s", ErrFetch, describeFailure(resp.StatusCode, body))
	}

	return &out, nil
}

func describeFailure(status int, body []byte) string {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Message != "" {
		return fmt.Sprintf("status %d, code %s: %s", status, er.Code, er.Message)
	}
	return fmt.Sprintf("unexpected status code: %d, body: %s", status, string(body))
}
