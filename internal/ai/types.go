package ai

import (
    "context"
    "errors"
    "fmt"
    "time"
)

// Request is one completion call: a system instruction block and a user
// block, already composed upstream. The client sends them verbatim.
type Request struct {
    SystemPrompt string
    UserPrompt   string
    Model        string
    Temperature  float64
    MaxTokens    int
}

// Response carries the raw completion text plus token accounting.
type Response struct {
    Text      string
    TokensIn  int
    TokensOut int
}

// Client is the boundary to a hosted completion API.
type Client interface {
    Name() string
    Do(ctx context.Context, req Request) (Response, error)
}

// ErrRateLimited is the sentinel for 429 responses; match with errors.Is.
var ErrRateLimited = errors.New("rate_limited")

// RateLimitError wraps ErrRateLimited with the server-advised wait.
// RetryAfter is zero when the header was missing or non-numeric; callers
// substitute their configured default in that case.
type RateLimitError struct {
    RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
    if e.RetryAfter > 0 {
        return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
    }
    return "rate limited"
}

func (e *RateLimitError) Unwrap() error { return ErrRateLimited }

// HTTPError is a non-2xx, non-429 status from the API.
type HTTPError struct {
    StatusCode int
    Body       string
}

func (e *HTTPError) Error() string {
    return fmt.Sprintf("completion API HTTP %d: %s", e.StatusCode, e.Body)
}

func IsRateLimited(err error) bool { return errors.Is(err, ErrRateLimited) }

// RetryAfterOf extracts the advised wait from a rate-limit error, or zero.
func RetryAfterOf(err error) time.Duration {
    var rl *RateLimitError
    if errors.As(err, &rl) {
        return rl.RetryAfter
    }
    return 0
}
