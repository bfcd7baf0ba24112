package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const (
	GeminiDefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	GeminiDefaultModel   = "gemini-pro"
)

type GeminiOption func(client *GeminiClient)

type GeminiClient struct {
	base   url.URL
	apiKey string
	model  string
	http   *http.Client
}

func NewGeminiClient(baseUrl, apiKey string, opts ...GeminiOption) (*GeminiClient, error) {
	if baseUrl == "" {
		baseUrl = GeminiDefaultBaseURL
	}
	base, err := url.Parse(baseUrl)
	if err != nil {
		return nil, err
	}

	client := &GeminiClient{
		base:   *base,
		apiKey: apiKey,
		model:  GeminiDefaultModel,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

func WithGeminiModel(model string) GeminiOption {
	return func(client *GeminiClient) {
		if model != "" {
			client.model = model
		}
	}
}

func WithHttpClient(httpClient *http.Client) GeminiOption {
	return func(client *GeminiClient) {
		client.http = httpClient
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (gc *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	reqData, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	reqURL := gc.base.JoinPath("models", gc.model+":generateContent")
	q := reqURL.Query()
	q.Set("key", gc.apiKey)
	reqURL.RawQuery = q.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL.String(), bytes.NewReader(reqData))
	if err != nil {
		return "", err
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	resp, err := gc.http.Do(request)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(respBody))
	}

	var gr geminiResponse
	if err := json.Unmarshal(respBody, &gr); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}
