package di

import (
	"errors"
	"testing"
	"time"

	"agentoid/internal/domain/entity"
	"agentoid/internal/infrastructure/env"
	"agentoid/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	cfg := DefaultConfig()
	cfg.GroqAPIKey = "gsk-test"
	return cfg
}

func TestNewContainer(t *testing.T) {
	c, err := NewContainer(validConfig(), logger.NewNop(), nil)
	require.NoError(t, err)

	var names []string
	for _, tl := range c.Tools.All() {
		names = append(names, tl.Name().String())
	}
	assert.Equal(t, []string{"duckduckgo", "math_solver", "wikipedia"}, names)

	assert.Contains(t, c.SystemPrompt, "- duckduckgo:")
	assert.Contains(t, c.SystemPrompt, "- wikipedia:")
	assert.Contains(t, c.SystemPrompt, "- math_solver:")
	assert.NotNil(t, c.Asker)
	assert.NotNil(t, c.Executor)
}

func TestNewContainer_MissingKey(t *testing.T) {
	cfg := validConfig()
	cfg.GroqAPIKey = ""

	_, err := NewContainer(cfg, logger.NewNop(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrInitialization))
	assert.Contains(t, err.Error(), "GROQ_API_KEY")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty model", func(c *Config) { c.Model = "" }, "model id is empty"},
		{"temperature", func(c *Config) { c.Temperature = 3 }, "temperature"},
		{"max tokens", func(c *Config) { c.MaxTokens = -1 }, "max tokens"},
		{"timeout", func(c *Config) { c.Timeout = -time.Second }, "timeout"},
		{"retries", func(c *Config) { c.MaxRetries = -1 }, "max retries"},
		{"steps", func(c *Config) { c.MaxSteps = 0 }, "max steps"},
		{"search results", func(c *Config) { c.SearchMaxResults = 0 }, "search max results"},
		{"mode", func(c *Config) { c.Mode = "gui" }, "unknown mode"},
	}

	require.NoError(t, validConfig().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var initErr *entity.InitializationError
			require.True(t, errors.As(err, &initErr))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("GROQ_API_KEY", "gsk-env")
	t.Setenv("AGENTOID_MODEL", "llama-3.1-8b-instant")
	t.Setenv("AGENTOID_TEMPERATURE", "0.2")
	t.Setenv("AGENTOID_TIMEOUT", "30s")
	t.Setenv("AGENTOID_MAX_RETRIES", "3")
	t.Setenv("AGENTOID_MODE", "web")
	t.Setenv("SEARCH_MAX_RESULTS", "8")

	cfg, err := LoadConfig(env.NewEnvServiceFrom(t.TempDir()))
	require.NoError(t, err)

	assert.Equal(t, "gsk-env", cfg.GroqAPIKey)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.Model)
	assert.InDelta(t, 0.2, cfg.Temperature, 1e-6)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, ModeWeb, cfg.Mode)
	assert.Equal(t, 8, cfg.SearchMaxResults)
	assert.Equal(t, 15, cfg.MaxSteps)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_ParseErrors(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("AGENTOID_MAX_STEPS", "many")
	t.Setenv("AGENTOID_TEMPERATURE", "warm")

	cfg, err := LoadConfig(env.NewEnvServiceFrom(t.TempDir()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrInitialization))
	assert.Contains(t, err.Error(), "AGENTOID_MAX_STEPS")
	assert.Contains(t, err.Error(), "AGENTOID_TEMPERATURE")

	assert.Equal(t, 15, cfg.MaxSteps)
	assert.InDelta(t, DefaultTemperature, cfg.Temperature, 1e-6)
}
