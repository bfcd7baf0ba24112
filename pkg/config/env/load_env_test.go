package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDotEnv_FirstExistingDefault(t *testing.T) {
	t.Setenv("ENV_PATH", "")
	t.Setenv("NEWS_COUNTRY", "")
	require.NoError(t, os.Unsetenv("NEWS_COUNTRY"))
	path := writeEnvFile(t, "NEWS_COUNTRY=de\n")

	err := LoadDotEnv("local", filepath.Join(t.TempDir(), "missing.env"), path)

	require.NoError(t, err)
	assert.Equal(t, "de", os.Getenv("NEWS_COUNTRY"))
}

func TestLoadDotEnv_EnvPathOverrides(t *testing.T) {
	path := writeEnvFile(t, "SUMMARIZER_MODEL=from-env-path\n")
	t.Setenv("ENV_PATH", path)
	t.Setenv("SUMMARIZER_MODEL", "")
	require.NoError(t, os.Unsetenv("SUMMARIZER_MODEL"))

	err := LoadDotEnv("local", "does-not-exist.env")

	require.NoError(t, err)
	assert.Equal(t, "from-env-path", os.Getenv("SUMMARIZER_MODEL"))
}

func TestLoadDotEnv_ExistingVariablesWin(t *testing.T) {
	t.Setenv("ENV_PATH", "")
	t.Setenv("PORT", "9999")
	path := writeEnvFile(t, "PORT=1234\n")

	require.NoError(t, LoadDotEnv("local", path))

	assert.Equal(t, "9999", os.Getenv("PORT"))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	t.Setenv("ENV_PATH", "")
	missing := filepath.Join(t.TempDir(), "missing.env")

	assert.Error(t, LoadDotEnv("local", missing))
	assert.Error(t, LoadDotEnv("", missing))
	assert.NoError(t, LoadDotEnv("production", missing))
}
