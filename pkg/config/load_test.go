package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "super-secret")
	t.Setenv("BACKEND_BASE_URL", "https://backend.example.com")

	cfg, err := Load("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "super-secret", cfg.Auth.Jwt.Secret)
	assert.Equal(t, "token", cfg.Auth.Jwt.CookieName)
	assert.Equal(t, time.Hour, cfg.Auth.Jwt.Expiry)
	assert.Equal(t, "https://backend.example.com", cfg.Backend.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Backend.HTTPTimeout)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
}

func TestLoad_MissingRequiredSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")
	t.Setenv("BACKEND_BASE_URL", "https://backend.example.com")

	_, err := Load("nonexistent.env")
	assert.Error(t, err)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "super-secret")
	t.Setenv("AUTH_JWT_EXPIRY", "30m")
	t.Setenv("BACKEND_BASE_URL", "https://backend.example.com")
	t.Setenv("BACKEND_HTTP_TIMEOUT", "3s")
	t.Setenv("SERVER_PORT", "8080")

	cfg, err := Load("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.Auth.Jwt.Expiry)
	assert.Equal(t, 3*time.Second, cfg.Backend.HTTPTimeout)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "****", maskValue("short"))
	assert.Equal(t, "sk****cdef", maskValue("sk_test_abcdef"))
}
