package env

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads variables from ENV_PATH, or from the first of defaultPaths that exists.
// Variables already present in the environment win. A missing file is only an error
// in local mode (env "local" or unset).
func LoadDotEnv(env string, defaultPaths ...string) error {
	paths := defaultPaths
	if envPath := os.Getenv("ENV_PATH"); envPath != "" {
		paths = []string{envPath}
	} else {
		slog.Debug("ENV_PATH is not set, using default paths", "defaultPaths", defaultPaths)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}
		slog.Info("Loaded environment file", "path", path)
		return nil
	}

	if env == "local" || env == "" {
		return fmt.Errorf("no .env file found in %v", paths)
	}
	slog.Debug("Skipping .env ...")
	return nil
}
