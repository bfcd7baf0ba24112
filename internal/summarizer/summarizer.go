package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/HarshTechPioneers/news-ai-dashboard/internal/apperr"
)

// FallbackSummary is returned when the provider answers without a usable candidate.
const FallbackSummary = "Unable to generate summary at this time."

var (
	// ErrSummarize wraps transport and provider failures.
	ErrSummarize = errors.New("failed to generate article summary")
	// ErrNotConfigured is returned on use when no API key was supplied.
	ErrNotConfigured = apperr.NewConfigWrap("summarizer API key not configured", nil)
	// ErrEmptyText is returned before any request when there is nothing to summarize.
	ErrEmptyText = apperr.NewValidation("no text to summarize")
)

const promptTemplate = `Summarize the following article in 3 bullet points, keeping each point concise and informative:

%s

Please format the response as:
• [First key point]
• [Second key point]
• [Third key point]`

type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// generator is the provider specific half of a Summarizer: one prompt in, the first
// candidate text out ("" when the provider returned none).
type generator interface {
	generate(ctx context.Context, prompt string) (string, error)
}

type promptSummarizer struct {
	provider string
	gen      generator
}

func (s *promptSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}

	out, err := s.gen.generate(ctx, BuildPrompt(text))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrSummarize, s.provider, err)
	}

	if strings.TrimSpace(out) == "" {
		return FallbackSummary, nil
	}
	return out, nil
}

func BuildPrompt(text string) string {
	return fmt.Sprintf(promptTemplate, text)
}

type unconfigured struct{}

func (unconfigured) Summarize(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}
