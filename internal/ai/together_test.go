package ai

import (
    "context"
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestTogetherClientDo(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        assert.Equal(t, "/v1/chat/completions", r.URL.Path)
        assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

        var req chatReq
        require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
        assert.Equal(t, "test-model", req.Model)
        require.Len(t, req.Messages, 2)
        assert.Equal(t, "system", req.Messages[0].Role)

        w.Header().Set("Content-Type", "application/json")
        _, _ = w.Write([]byte(`{"choices":[{"message":{"content":"odgovor"}}],"usage":{"prompt_tokens":10,"completion_tokens":5}}`))
    }))
    defer srv.Close()

    c := NewTogetherClient(srv.URL, "test-key")
    resp, err := c.Do(context.Background(), Request{
        SystemPrompt: "sistem",
        UserPrompt:   "pitanje",
        Model:        "test-model",
        Temperature:  0.05,
        MaxTokens:    100,
    })
    require.NoError(t, err)
    assert.Equal(t, "odgovor", resp.Text)
    assert.Equal(t, 10, resp.TokensIn)
    assert.Equal(t, 5, resp.TokensOut)
}

func TestTogetherClientRateLimited(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.Header().Set("Retry-After", "7")
        w.WriteHeader(http.StatusTooManyRequests)
    }))
    defer srv.Close()

    c := NewTogetherClient(srv.URL, "test-key")
    _, err := c.Do(context.Background(), Request{Model: "m"})
    require.Error(t, err)
    assert.True(t, IsRateLimited(err))
    assert.Equal(t, 7*time.Second, RetryAfterOf(err))
}

func TestTogetherClientHTTPError(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        http.Error(w, "internal", http.StatusInternalServerError)
    }))
    defer srv.Close()

    c := NewTogetherClient(srv.URL, "test-key")
    _, err := c.Do(context.Background(), Request{Model: "m"})
    require.Error(t, err)
    assert.False(t, IsRateLimited(err))

    var httpErr *HTTPError
    require.ErrorAs(t, err, &httpErr)
    assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
}

func TestTogetherClientMissingKey(t *testing.T) {
    c := NewTogetherClient("", "")
    _, err := c.Do(context.Background(), Request{Model: "m"})
    assert.Error(t, err)
}

func TestParseRetryAfter(t *testing.T) {
    assert.Equal(t, 7*time.Second, parseRetryAfter("7"))
    assert.Equal(t, 1500*time.Millisecond, parseRetryAfter("1.5"))
    assert.Equal(t, time.Duration(0), parseRetryAfter(""))
    // HTTP-date form is not supported; callers fall back to their default
    assert.Equal(t, time.Duration(0), parseRetryAfter("Wed, 21 Oct 2026 07:28:00 GMT"))
}
