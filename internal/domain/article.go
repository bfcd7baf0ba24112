package domain

import (
	"strings"
)

// RemovedTitle is the placeholder title the news provider uses for withdrawn articles.
const RemovedTitle = "[Removed]"

type Article struct {
	Source      Source `json:"source"`
	Author      string `json:"author,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage,omitempty"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content,omitempty"`
}

type Source struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Valid reports whether the article can be shown to the user.
func (a Article) Valid() bool {
	return a.Title != "" && a.Title != RemovedTitle
}

// SummarySource returns the richest text available for summarization,
// preferring content over description. Empty when neither carries text.
func (a Article) SummarySource() string {
	if c := strings.TrimSpace(a.Content); c != "" {
		return c
	}
	return strings.TrimSpace(a.Description)
}

// FilterValid drops invalid articles, keeping provider order.
func FilterValid(articles []Article) []Article {
	valid := make([]Article, 0, len(articles))
	for _, a := range articles {
		if a.Valid() {
			valid = append(valid, a)
		}
	}
	return valid
}
