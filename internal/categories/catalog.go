package categories

import (
	"embed"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/HarshTechPioneers/news-ai-dashboard/internal/apperr"
	"gopkg.in/yaml.v3"
)

//go:embed default_categories.yaml
var defaultCatalogFS embed.FS

type Category struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
	Icon string `yaml:"icon,omitempty" json:"icon,omitempty"`
}

type Catalog struct {
	Categories []Category `yaml:"categories"`
}

// Load reads the catalog from path, or the embedded default when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return loadDefault()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading categories file: %w", err)
	}

	c, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	slog.Info("Loaded category catalog", "path", path, "categories", len(c.Categories))
	return c, nil
}

func loadDefault() (*Catalog, error) {
	data, err := defaultCatalogFS.ReadFile("default_categories.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded categories: %w", err)
	}
	return parse(data)
}

// LoadEnv loads the catalog named by CATEGORIES_FILE.
func LoadEnv() (*Catalog, error) {
	return Load(os.Getenv("CATEGORIES_FILE"))
}

func parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	if len(c.Categories) == 0 {
		return nil, fmt.Errorf("catalog has no categories")
	}

	seen := make(map[string]bool, len(c.Categories))
	for i, cat := range c.Categories {
		id := strings.TrimSpace(cat.ID)
		if id == "" {
			return nil, fmt.Errorf("category %d has no id", i)
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate category %q", id)
		}
		seen[id] = true
		c.Categories[i].ID = id
		if c.Categories[i].Name == "" {
			c.Categories[i].Name = id
		}
	}
	return &c, nil
}

func (c *Catalog) Contains(id string) bool {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return true
		}
	}
	return false
}

// Validate accepts an empty id (the default category applies) or a known one.
func (c *Catalog) Validate(id string) error {
	id = strings.TrimSpace(id)
	if id == "" || c.Contains(id) {
		return nil
	}
	return apperr.NewValidation(fmt.Sprintf("unknown category %q", id))
}
