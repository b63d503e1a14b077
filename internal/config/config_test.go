package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The package test directory has no config.yaml, so New exercises the
// env-only fallback.

func TestNew_EnvFallbackWithDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := New()

	assert.NoError(t, err)
	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "tripdesk.db", cfg.DB.URL)
	assert.Equal(t, 168, cfg.Auth.TokenTTL)
}

func TestNew_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/tripdesk")

	cfg, err := New()

	assert.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, "postgres://localhost/tripdesk", cfg.DB.URL)
}

func TestNew_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := New()
	assert.Error(t, err)
}
