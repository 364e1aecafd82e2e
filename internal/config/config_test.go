package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("PRINT_QUEUE", "")
	t.Setenv("DB_MAX_OPEN_CONNS", "")

	cfg := Load()
	assert.Equal(t, "3001", cfg.ServerPort)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "print:tickets", cfg.PrintQueue)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
	assert.False(t, cfg.Production())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")
	t.Setenv("DB_MAX_IDLE_CONNS", "not-a-number")

	cfg := Load()
	assert.True(t, cfg.Production())
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 50, cfg.DBMaxOpenConns)
	// Malformed numbers fall back to the default.
	assert.Equal(t, 25, cfg.DBMaxIdleConns)
}
