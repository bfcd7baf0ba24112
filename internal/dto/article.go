package dto

import (
	"regexp"

	"github.com/HarshTechPioneers/news-ai-dashboard/internal/domain"
)

var truncationMarker = regexp.MustCompile(`\s*\[\+\d+ chars\]`)

type Source struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Article is the display view of a fetched article. RawContent keeps the provider text
// so the view can be posted back for summarizing unchanged.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"`
	RawContent  string `json:"rawContent,omitempty"`
	Author      string `json:"author,omitempty"`
	PublishedAt string `json:"publishedAt"`
	URL         string `json:"url" swaggertype:"string" format:"uri"`
	URLToImage  string `json:"urlToImage,omitempty" swaggertype:"string" format:"uri"`
	Source      Source `json:"source"`
}

// ArticleRequest carries an article exactly as the news provider returned it. Either the
// provider article or an Article view is accepted; rawContent wins over content.
type ArticleRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	RawContent  string `json:"rawContent"`
	Author      string `json:"author"`
	PublishedAt string `json:"publishedAt"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	Source      Source `json:"source"`
}

func (r ArticleRequest) ToDomain() domain.Article {
	content := r.Content
	if r.RawContent != "" {
		content = r.RawContent
	}

	return domain.Article{
		Source:      domain.Source{ID: r.Source.ID, Name: r.Source.Name},
		Author:      r.Author,
		Title:       r.Title,
		Description: r.Description,
		URL:         r.URL,
		URLToImage:  r.URLToImage,
		PublishedAt: r.PublishedAt,
		Content:     content,
	}
}

// CleanContent replaces the provider's "[+N chars]" truncation marker with an ellipsis.
func CleanContent(content string) string {
	return truncationMarker.ReplaceAllString(content, "...")
}

func ArticleFromDomain(a domain.Article) Article {
	return Article{
		Title:       a.Title,
		Description: a.Description,
		Content:     CleanContent(a.Content),
		RawContent:  a.Content,
		Author:      a.Author,
		PublishedAt: a.PublishedAt,
		URL:         a.URL,
		URLToImage:  a.URLToImage,
		Source:      Source{ID: a.Source.ID, Name: a.Source.Name},
	}
}

func ArticlesFromDomain(articles []domain.Article) []Article {
	out := make([]Article, 0, len(articles))
	for _, a := range articles {
		out = append(out, ArticleFromDomain(a))
	}
	return out
}
