package config

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
    // commonly present in CI environments
    t.Setenv("PORT", "")
    t.Setenv("REDIS_URL", "")

    cfg := FromEnv()

    assert.Equal(t, "https://api.together.ai", cfg.Model.BaseURL)
    assert.Equal(t, "meta-llama/Meta-Llama-3.1-70B-Instruct-Turbo", cfg.Model.Model)
    assert.InDelta(t, 0.05, cfg.Model.Temperature, 1e-9)
    assert.Equal(t, 3500, cfg.Model.MaxTokens)

    assert.Equal(t, 6, cfg.Chunking.PagesPerChunk)
    assert.Equal(t, 5, cfg.Chunking.MicroPagesPerChunk)

    assert.Equal(t, 5, cfg.Gateway.MaxConcurrent)
    assert.Equal(t, time.Second, cfg.Gateway.BatchDelay)
    assert.Equal(t, 3, cfg.Gateway.MaxAttempts)

    assert.Equal(t, "5000", cfg.Server.Port)
    assert.Equal(t, time.Hour, cfg.Cache.TTL)
}

func TestFromEnvOverrides(t *testing.T) {
    t.Setenv("PAGES_PER_CHUNK", "15")
    t.Setenv("BATCH_DELAY", "250ms")
    t.Setenv("PORT", "8080")

    cfg := FromEnv()
    assert.Equal(t, 15, cfg.Chunking.PagesPerChunk)
    assert.Equal(t, 250*time.Millisecond, cfg.Gateway.BatchDelay)
    assert.Equal(t, "8080", cfg.Server.Port)
}

func TestParseHelpers(t *testing.T) {
    assert.Equal(t, 7, parseInt("7", 1))
    assert.Equal(t, 1, parseInt("sedam", 1))
    assert.True(t, parseBool("YES"))
    assert.False(t, parseBool("off"))
    assert.Equal(t, 2*time.Second, parseDuration("junk", 2*time.Second))
}
