package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("PORT", "")
	t.Setenv("SALT_ROUND", "")

	cfg := LoadConfig()

	assert.Same(t, cfg, AppConfig)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 10, cfg.SaltRound)
	assert.True(t, cfg.SeedData)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SALT_ROUND", "not-a-number")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("SEED_DATA", "maybe")
	t.Setenv("APP_ENV", "production")

	cfg := LoadConfig()

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "coursehub.db", cfg.DatabaseURL)
	assert.Equal(t, 10, cfg.SaltRound)
	assert.True(t, cfg.CookieSecure)
	assert.True(t, cfg.SeedData)
	assert.True(t, cfg.IsProduction())
}
