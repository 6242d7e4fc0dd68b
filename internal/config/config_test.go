package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "llama", cfg.DefaultModel)
	assert.Equal(t, []string{"llama", "deepseek"}, cfg.GeneralRotation)
	assert.Equal(t, 1500, cfg.MaxTokens)
	assert.InDelta(t, 0.5, cfg.Temperature, 0.0001)
	assert.Equal(t, 4, cfg.MaxVideos)
	assert.Equal(t, 3, cfg.WorkerPoolSize)
	assert.Equal(t, 100, cfg.RouterCacheSize)
	assert.Equal(t, 30*time.Second, cfg.CallTimeout)
	assert.Equal(t, "memory", cfg.StoreBackend)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.GroqBaseURL)
	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.TracingEnabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEFAULT_MODEL", "deepseek")
	t.Setenv("GENERAL_ROTATION", "llama, deepseek, mistral")
	t.Setenv("MAX_TOKENS", "2000")
	t.Setenv("TEMPERATURE", "0.7")
	t.Setenv("CALL_TIMEOUT", "45s")
	t.Setenv("STORE_BACKEND", "jetstream")
	t.Setenv("TRACING_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "deepseek", cfg.DefaultModel)
	assert.Equal(t, []string{"llama", "deepseek", "mistral"}, cfg.GeneralRotation)
	assert.Equal(t, 2000, cfg.MaxTokens)
	assert.InDelta(t, 0.7, cfg.Temperature, 0.0001)
	assert.Equal(t, 45*time.Second, cfg.CallTimeout)
	assert.Equal(t, "jetstream", cfg.StoreBackend)
	assert.True(t, cfg.TracingEnabled)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("MAX_TOKENS", "lots")
	t.Setenv("TEMPERATURE", "warm")
	t.Setenv("CALL_TIMEOUT", "soon")
	t.Setenv("GENERAL_ROTATION", " , ,")

	cfg := Load()

	assert.Equal(t, 1500, cfg.MaxTokens)
	assert.InDelta(t, 0.5, cfg.Temperature, 0.0001)
	assert.Equal(t, 30*time.Second, cfg.CallTimeout)
	assert.Equal(t, []string{"llama", "deepseek"}, cfg.GeneralRotation)
}
