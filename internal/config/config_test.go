package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 50, cfg.ResolveCount)
	assert.Equal(t, 5, cfg.SuggestCount)
	assert.Equal(t, "file", cfg.HistoryBackend)
	assert.Equal(t, "weatherSearchHistory", cfg.HistoryKey)
	assert.Equal(t, time.Duration(0), cfg.RefreshInterval)
	assert.Equal(t, "celsius", cfg.DefaultUnit)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("WEATHER_PORT", "9090")
	t.Setenv("WEATHER_HISTORY_BACKEND", "redis")
	t.Setenv("WEATHER_REDIS_ADDR", "cache:6379")
	t.Setenv("WEATHER_REFRESH_INTERVAL", "15m")
	t.Setenv("WEATHER_DEFAULT_UNIT", "fahrenheit")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "redis", cfg.HistoryBackend)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, 15*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, "fahrenheit", cfg.DefaultUnit)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown backend", "WEATHER_HISTORY_BACKEND", "nfs"},
		{"suggest count above five", "WEATHER_SUGGEST_COUNT", "6"},
		{"bad unit", "WEATHER_DEFAULT_UNIT", "kelvin"},
		{"non-numeric port", "WEATHER_PORT", "http"},
		{"bad geocoding url", "WEATHER_GEOCODING_URL", "not a url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.ErrorContains(t, err, "invalid configuration")
		})
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	// Register cleanup for the variable godotenv will set, then clear it.
	t.Setenv("WEATHER_PORT", "")
	require.NoError(t, os.Unsetenv("WEATHER_PORT"))

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("WEATHER_PORT=7070\n"), 0o600))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
}

func TestLoadRejectsUnreadableDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".env"), 0o700))
	chdir(t, dir)

	_, err := Load()
	assert.ErrorContains(t, err, "load .env")
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
}
