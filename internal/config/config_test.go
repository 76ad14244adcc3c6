package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("DASHBOARD_LEGACY_PREVIEW_CLOSE", "true")
	t.Setenv("CURRENT_USER_NAME", "Jane Smith")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.True(t, cfg.Store.Seed)
	assert.True(t, cfg.Dashboard.LegacyPreviewClose)
	assert.Equal(t, "Jane Smith", cfg.CurrentUser.Name)
	assert.Equal(t, "JD", cfg.CurrentUser.Initials)
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("STORE_DRIVER")
	os.Unsetenv("LOG_MODE")
	os.Unsetenv("SESSION_TTL_SEC")

	cfg := Load()

	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, "prod", cfg.Log.Mode)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL())
	assert.False(t, cfg.Dashboard.LegacyPreviewClose)
}

func TestLocation(t *testing.T) {
	cfg := &AppConfig{Timezone: "UTC"}
	assert.Equal(t, time.UTC, cfg.Location())

	cfg.Timezone = "Local"
	assert.Equal(t, time.Local, cfg.Location())

	cfg.Timezone = "Not/AZone"
	assert.Equal(t, time.Local, cfg.Location())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
