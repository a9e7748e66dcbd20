package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server:   ServerConfig{Port: 8080},
		Database: DatabaseConfig{URL: "postgres://localhost:5432/matcher"},
		Cache:    CacheConfig{Backend: CacheBackendPostgres},
		AI:       AIConfig{Enabled: true, APIKey: "test-key", TimeoutSeconds: 10},
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, CacheBackendPostgres, cfg.Cache.Backend)
	assert.True(t, cfg.AI.Enabled)
	assert.Equal(t, 10, cfg.AI.TimeoutSeconds)
	assert.Equal(t, 4, cfg.AI.Concurrency)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadEnvFallbacks(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env-host:5432/matcher")
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://env-host:5432/matcher", cfg.Database.URL)
	assert.Equal(t, "env-key", cfg.AI.APIKey)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Valid", func(c *Config) {}, false},
		{"Missing database URL", func(c *Config) { c.Database.URL = "" }, true},
		{"Unknown cache backend", func(c *Config) { c.Cache.Backend = "memcached" }, true},
		{"Redis backend accepted", func(c *Config) { c.Cache.Backend = CacheBackendRedis }, false},
		{"AI enabled without key", func(c *Config) { c.AI.APIKey = "" }, true},
		{"AI disabled without key", func(c *Config) { c.AI.Enabled = false; c.AI.APIKey = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAITimeout(t *testing.T) {
	a := AIConfig{TimeoutSeconds: 15}
	assert.Equal(t, "15s", a.Timeout().String())
}
