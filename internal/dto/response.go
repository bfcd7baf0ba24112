package dto

import (
	"time"

	"github.com/HarshTechPioneers/news-ai-dashboard/internal/categories"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/coordinator"
	"github.com/HarshTechPioneers/news-ai-dashboard/internal/domain"
)

type ArticlesResponse struct {
	Key      string    `json:"key"`
	Articles []Article `json:"articles"`
	Loading  bool      `json:"loading"`
	Error    string    `json:"error"`
	Count    int       `json:"count"`
}

func NewArticlesResponse(s coordinator.State) ArticlesResponse {
	articles := ArticlesFromDomain(s.Articles)
	return ArticlesResponse{
		Key:      string(s.Key),
		Articles: articles,
		Loading:  s.Loading,
		Error:    s.Error,
		Count:    len(articles),
	}
}

type SavedSummary struct {
	ID        int64     `json:"id"`
	Article   Article   `json:"article"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"createdAt"`
}

func SavedSummaryFromDomain(s domain.SavedSummary) SavedSummary {
	return SavedSummary{
		ID:        s.ID,
		Article:   ArticleFromDomain(s.Article),
		Summary:   s.Summary,
		CreatedAt: s.CreatedAt,
	}
}

type SavedSummariesResponse struct {
	Summaries []SavedSummary `json:"summaries"`
	Count     int            `json:"count"`
}

func NewSavedSummariesResponse(saved []domain.SavedSummary) SavedSummariesResponse {
	out := make([]SavedSummary, 0, len(saved))
	for _, s := range saved {
		out = append(out, SavedSummaryFromDomain(s))
	}
	return SavedSummariesResponse{Summaries: out, Count: len(out)}
}

type CategoriesResponse struct {
	Categories []categories.Category `json:"categories"`
	Default    string                `json:"default"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Title string `json:"title,omitempty"`
}
