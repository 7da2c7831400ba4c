package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("STOREADMIN_STR", "value")
	t.Setenv("STOREADMIN_INT", "42")
	t.Setenv("STOREADMIN_BAD_INT", "forty-two")
	t.Setenv("STOREADMIN_DUR", "90s")
	t.Setenv("STOREADMIN_BAD_DUR", "soon")

	assert.Equal(t, "value", GetEnv("STOREADMIN_STR", "fallback"))
	assert.Equal(t, "fallback", GetEnv("STOREADMIN_MISSING", "fallback"))
	assert.Equal(t, 42, GetIntEnv("STOREADMIN_INT", 1))
	assert.Equal(t, 1, GetIntEnv("STOREADMIN_BAD_INT", 1))
	assert.Equal(t, 90*time.Second, GetDurationEnv("STOREADMIN_DUR", time.Second))
	assert.Equal(t, time.Second, GetDurationEnv("STOREADMIN_BAD_DUR", time.Second))
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/shop")
	t.Setenv("DASHBOARD_TIMEZONE", "Nowhere/Special")

	cfg := Load()

	assert.Equal(t, "postgres://u:p@db:5432/shop", cfg.DatabaseURL)
	assert.Equal(t, time.UTC, cfg.Location())
	assert.False(t, cfg.IsProduction())
}

func TestDatabaseURLFromParts(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "pg")
	t.Setenv("DB_NAME", "shop")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASSWORD", "p@ss")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_SSLMODE", "disable")

	assert.Equal(t, "postgres://postgres:p%40ss@pg:5432/shop?sslmode=disable", databaseURL())
}
