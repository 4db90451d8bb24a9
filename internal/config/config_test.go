package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, time.Duration(0), cfg.JWT.Expiry)
	assert.Equal(t, time.Minute, cfg.Jobs.PromotionSweepInterval)
	assert.Contains(t, cfg.Database.URL(), "sslmode=disable")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_EXPIRY", "15m")
	t.Setenv("DB_PORT", "5433")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWT.Expiry)
	assert.Equal(t, 5433, cfg.Database.Port)
}

func TestLoadIgnoresUnparsableValues(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("JWT_EXPIRY", "soon")

	cfg := Load()

	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, time.Duration(0), cfg.JWT.Expiry)
}
