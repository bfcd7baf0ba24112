package newsapi

import (
	"errors"
	"os"
)

const DefaultCountry = "us"

type Config struct {
	BaseURL string
	APIKey  string
	Country string
}

func LoadConfigFromEnv() (*Config, error) {
	apiKey := os.Getenv("NEWS_API_KEY")
	if apiKey == "" {
		return nil, errors.New("NEWS_API_KEY environment variable not set")
	}

	baseURL := os.Getenv("NEWS_API_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	country := os.Getenv("NEWS_COUNTRY")
	if country == "" {
		country = DefaultCountry
	}

	return &Config{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Country: country,
	}, nil
}
