package cache

import (
    "context"
    "os"
    "path/filepath"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/local/quotequest/internal/config"
)

func writeTemp(t *testing.T, name, content string) string {
    t.Helper()
    path := filepath.Join(t.TempDir(), name)
    require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
    return path
}

func TestKeyStableAcrossFileNames(t *testing.T) {
    a := writeTemp(t, "kniga.pdf", "isti sadržaj")
    b := writeTemp(t, "drugo-ime.pdf", "isti sadržaj")

    ka, err := Key(a, "Koja je glavna tema?")
    require.NoError(t, err)
    kb, err := Key(b, "Koja je glavna tema?")
    require.NoError(t, err)
    assert.Equal(t, ka, kb)

    kc, err := Key(a, "Drugo pitanje?")
    require.NoError(t, err)
    assert.NotEqual(t, ka, kc)
}

func TestKeyMissingFile(t *testing.T) {
    _, err := Key(filepath.Join(t.TempDir(), "nema.pdf"), "pitanje")
    assert.Error(t, err)
}

func TestNilCacheIsNoOp(t *testing.T) {
    var c *AnswerCache
    ctx := context.Background()

    assert.Nil(t, c.Get(ctx, "k"))
    c.Set(ctx, "k", []byte("v"))
    assert.NoError(t, c.Ping(ctx))
    assert.NoError(t, c.Close())
}

func TestNewDisabledWithoutURL(t *testing.T) {
    assert.Nil(t, New(config.CacheConfig{}))
    assert.Nil(t, New(config.CacheConfig{RedisURL: "::not-a-url::"}))
}
