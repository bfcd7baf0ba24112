package categories

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/HarshTechPioneers/news-ai-dashboard/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Default(t *testing.T) {
	c, err := Load("")

	require.NoError(t, err)
	var ids []string
	for _, cat := range c.Categories {
		ids = append(ids, cat.ID)
	}
	assert.Equal(t, []string{"general", "business", "technology", "health", "sports", "entertainment", "science"}, ids)
	assert.Equal(t, "General", c.Categories[0].Name)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories:\n  - id: general\n  - id: world\n    name: World\n"), 0o644))

	c, err := Load(path)

	require.NoError(t, err)
	require.Len(t, c.Categories, 2)
	assert.Equal(t, "general", c.Categories[0].Name)
	assert.True(t, c.Contains("world"))
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty", "categories: []\n"},
		{"missing id", "categories:\n  - name: Nameless\n"},
		{"duplicate", "categories:\n  - id: a\n  - id: a\n"},
		{"not yaml", "categories: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "categories.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))

			_, err := Load(path)

			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("CATEGORIES_FILE", "")

	c, err := LoadEnv()

	require.NoError(t, err)
	assert.Len(t, c.Categories, 7)
}

func TestValidate(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.NoError(t, c.Validate(""))
	assert.NoError(t, c.Validate("science"))
	assert.NoError(t, c.Validate(" sports "))

	err = c.Validate("gaming")
	var ve *apperr.ValidationError
	assert.True(t, errors.As(err, &ve))
}
