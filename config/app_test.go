package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfiles(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "app.yml")
	content := []byte(`profiles:
  development:
    listen: ":3001"
    database_driver: sqlite
    rate_limit_max: 10
    rate_limit_window: 60
    cache_expiration: 5
    summary_interval: 1
  production:
    listen: ":3000"
    database_driver: postgres
    rate_limit_max: 60
    rate_limit_window: 60
    cache_expiration: 30
    summary_interval: 5
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	return path
}

func TestLoadAppConfigSelectsProfile(t *testing.T) {
	t.Setenv("APP_CONFIG", writeProfiles(t))
	t.Setenv("APP_ENV", "production")

	require.NoError(t, LoadAppConfig())
	assert.Equal(t, "postgres", App.DatabaseDriver)
	assert.Equal(t, 60, App.RateLimitMax)
}

func TestLoadAppConfigDefaultsToDevelopment(t *testing.T) {
	t.Setenv("APP_CONFIG", writeProfiles(t))
	t.Setenv("APP_ENV", "")

	require.NoError(t, LoadAppConfig())
	assert.Equal(t, ":3001", App.Listen)
}

func TestLoadAppConfigUnknownProfileFallsBack(t *testing.T) {
	t.Setenv("APP_CONFIG", writeProfiles(t))
	t.Setenv("APP_ENV", "staging")

	require.NoError(t, LoadAppConfig())
	assert.Equal(t, "sqlite", App.DatabaseDriver)
}
