package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, BackendMemory, cfg.SessionBackend)
	assert.Equal(t, BackendNone, cfg.RecordsBackend)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "dayplanner_session", cfg.SessionCookie)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.TrustedProxies)
}

func TestLoadOverrides(t *testing.T) {
	v := viper.New()
	v.Set("SESSION_BACKEND", BackendRedis)
	v.Set("SESSION_TTL", "45m")
	v.Set("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	v.Set("TRUSTED_PROXIES", "10.0.0.0/8,192.168.1.1")

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.SessionBackend)
	assert.Equal(t, 45*time.Minute, cfg.SessionTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.1"}, cfg.TrustedProxies)
}

func TestIsProduction(t *testing.T) {
	prev := AppConfig
	t.Cleanup(func() { AppConfig = prev })

	AppConfig.Env = "production"
	assert.True(t, IsProduction())
	AppConfig.Env = "development"
	assert.False(t, IsProduction())
}
