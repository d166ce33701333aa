package statuscheck

import (
    "context"
    "errors"
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/stretchr/testify/assert"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(ctx context.Context) error { return p.err }

func TestSummary(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        assert.Equal(t, "/v1/models", r.URL.Path)
        assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
        w.WriteHeader(http.StatusOK)
    }))
    defer srv.Close()

    c := New(Options{Redis: fakePinger{}, APIBaseURL: srv.URL, APIKey: "key"})
    sum := c.Summary(context.Background())

    assert.True(t, sum.Redis.OK)
    assert.True(t, sum.Together.OK)
}

func TestSummaryFailures(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusUnauthorized)
    }))
    defer srv.Close()

    c := New(Options{Redis: fakePinger{err: errors.New("connection refused")}, APIBaseURL: srv.URL, APIKey: "bad"})
    sum := c.Summary(context.Background())

    assert.False(t, sum.Redis.OK)
    assert.Equal(t, "connection refused", sum.Redis.Message)
    assert.False(t, sum.Together.OK)
    assert.Equal(t, "HTTP 401", sum.Together.Message)
}

func TestSummaryMissingKey(t *testing.T) {
    c := New(Options{})
    sum := c.Summary(context.Background())
    assert.True(t, sum.Redis.OK)
    assert.Equal(t, "Disabled", sum.Redis.Message)
    assert.False(t, sum.Together.OK)
    assert.Equal(t, "API key missing", sum.Together.Message)
}
