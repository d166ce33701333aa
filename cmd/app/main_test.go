package main

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"

    "github.com/local/quotequest/internal/cache"
    "github.com/local/quotequest/internal/config"
    "github.com/local/quotequest/internal/statuscheck"
)

func TestCachePingerDisabledCacheReportsDisabled(t *testing.T) {
    // New returns a typed nil when REDIS_URL is unset; wrapping that in the
    // RedisPinger interface unguarded would make the checker probe it and
    // report Connected
    disabled := cache.New(config.CacheConfig{})

    c := statuscheck.New(statuscheck.Options{Redis: cachePinger(disabled)})
    sum := c.Summary(context.Background())
    assert.True(t, sum.Redis.OK)
    assert.Equal(t, "Disabled", sum.Redis.Message)
}
