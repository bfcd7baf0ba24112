package summarizer

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const OpenAIDefaultModel = "gpt-4o-mini"

type OpenAIClient struct {
	client *openai.Client
	model  openai.ChatModel
}

func NewOpenAIClient(apiKey, baseURL, model string) *OpenAIClient {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)

	if model == "" {
		model = OpenAIDefaultModel
	}

	return &OpenAIClient{
		client: &client,
		model:  openai.ChatModel(model),
	}
}

func (c *OpenAIClient) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
