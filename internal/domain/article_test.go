package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArticle_Valid(t *testing.T) {
	assert.True(t, Article{Title: "Markets rally"}.Valid())
	assert.False(t, Article{Title: ""}.Valid())
	assert.False(t, Article{Title: RemovedTitle}.Valid())
}

func TestFilterValid(t *testing.T) {
	in := []Article{
		{Title: "first", URL: "https://a"},
		{Title: RemovedTitle, URL: "https://b"},
		{Title: "", URL: "https://c"},
		{Title: "second", URL: "https://d"},
	}

	got := FilterValid(in)

	assert.Len(t, got, 2)
	assert.Equal(t, "https://a", got[0].URL)
	assert.Equal(t, "https://d", got[1].URL)
}

func TestFilterValid_Empty(t *testing.T) {
	got := FilterValid(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestArticle_SummarySource(t *testing.T) {
	t.Run("prefers content", func(t *testing.T) {
		a := Article{Content: "full text", Description: "short"}
		assert.Equal(t, "full text", a.SummarySource())
	})

	t.Run("falls back to description", func(t *testing.T) {
		a := Article{Description: "short"}
		assert.Equal(t, "short", a.SummarySource())
	})

	t.Run("blank fields count as missing", func(t *testing.T) {
		a := Article{Content: "   ", Description: "\n"}
		assert.Empty(t, a.SummarySource())
	})
}
