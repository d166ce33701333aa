package cache

import (
    "context"
    "crypto/sha256"
    "encoding/hex"
    "io"
    "os"
    "time"

    "github.com/redis/go-redis/v9"
    "github.com/rs/zerolog/log"

    "github.com/local/quotequest/internal/config"
    "github.com/local/quotequest/internal/metrics"
)

// AnswerCache stores finished responses keyed by document content and
// question. It is strictly best-effort: every method degrades to a miss or a
// no-op on failure so a broken Redis never affects request handling.
type AnswerCache struct {
    rdb *redis.Client
    ttl time.Duration
}

// New connects to Redis using the configured URL. An empty URL disables the
// cache entirely and returns nil, which all methods accept.
func New(cfg config.CacheConfig) *AnswerCache {
    if cfg.RedisURL == "" {
        log.Info().Msg("answer cache disabled, no redis url configured")
        return nil
    }
    opt, err := redis.ParseURL(cfg.RedisURL)
    if err != nil {
        log.Warn().Err(err).Msg("invalid redis url, answer cache disabled")
        return nil
    }
    return &AnswerCache{rdb: redis.NewClient(opt), ttl: cfg.TTL}
}

// Key derives the cache key from the uploaded file's bytes and the question
// text. Identical book plus identical question always maps to the same key
// regardless of file name or upload order.
func Key(pdfPath, question string) (string, error) {
    f, err := os.Open(pdfPath)
    if err != nil {
        return "", err
    }
    defer f.Close()

    fileHash := sha256.New()
    if _, err := io.Copy(fileHash, f); err != nil {
        return "", err
    }
    questionHash := sha256.Sum256([]byte(question))

    return "answer:" + hex.EncodeToString(fileHash.Sum(nil)) + ":" + hex.EncodeToString(questionHash[:]), nil
}

// Get returns the cached response body for key, or nil on miss or error.
func (c *AnswerCache) Get(ctx context.Context, key string) []byte {
    if c == nil {
        return nil
    }
    body, err := c.rdb.Get(ctx, key).Bytes()
    if err != nil {
        if err != redis.Nil {
            log.Warn().Err(err).Msg("answer cache read failed")
            metrics.IncCache("error")
        } else {
            metrics.IncCache("miss")
        }
        return nil
    }
    metrics.IncCache("hit")
    return body
}

// Set stores a response body under key with the configured TTL.
func (c *AnswerCache) Set(ctx context.Context, key string, body []byte) {
    if c == nil {
        return
    }
    if err := c.rdb.Set(ctx, key, body, c.ttl).Err(); err != nil {
        log.Warn().Err(err).Msg("answer cache write failed")
        metrics.IncCache("error")
        return
    }
    metrics.IncCache("store")
}

// Ping reports whether the cache backend is reachable. A nil cache reports
// healthy since there is nothing to fail.
func (c *AnswerCache) Ping(ctx context.Context) error {
    if c == nil {
        return nil
    }
    return c.rdb.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (c *AnswerCache) Close() error {
    if c == nil {
        return nil
    }
    return c.rdb.Close()
}
