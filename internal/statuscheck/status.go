package statuscheck

import (
    "context"
    "errors"
    "fmt"
    "net/http"
    "strings"
    "time"
)

// RedisPinger models the minimal Redis capability we need for status checks.
type RedisPinger interface {
    Ping(ctx context.Context) error
}

// Checker aggregates reachability checks for the external dependencies the
// service needs at runtime: the answer cache and the completion API.
type Checker struct {
    redis      RedisPinger
    httpClient *http.Client
    apiBaseURL string
    apiKey     string
}

// Options configures the Checker.
type Options struct {
    Redis      RedisPinger
    HTTPClient *http.Client
    APIBaseURL string
    APIKey     string
}

// Status represents the readiness of a subsystem.
type Status struct {
    OK      bool   `json:"ok"`
    Message string `json:"message"`
}

// Summary bundles all subsystem statuses.
type Summary struct {
    Redis    Status `json:"redis"`
    Together Status `json:"together"`
}

// New creates a new Checker with the provided options.
func New(opts Options) *Checker {
    client := opts.HTTPClient
    if client == nil {
        client = &http.Client{Timeout: 5 * time.Second}
    }
    return &Checker{
        redis:      opts.Redis,
        httpClient: client,
        apiBaseURL: strings.TrimRight(opts.APIBaseURL, "/"),
        apiKey:     strings.TrimSpace(opts.APIKey),
    }
}

// Summary returns the current status snapshot.
func (c *Checker) Summary(ctx context.Context) Summary {
    return Summary{
        Redis:    c.checkRedis(ctx),
        Together: c.checkTogether(ctx),
    }
}

func (c *Checker) checkRedis(ctx context.Context) Status {
    if c.redis == nil {
        return Status{OK: true, Message: "Disabled"}
    }
    ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
    defer cancel()
    if err := c.redis.Ping(ctx); err != nil {
        return Status{OK: false, Message: trimError(err)}
    }
    return Status{OK: true, Message: "Connected"}
}

func (c *Checker) checkTogether(ctx context.Context) Status {
    if c.apiKey == "" {
        return Status{OK: false, Message: "API key missing"}
    }
    req, _ := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+"/v1/models", nil)
    req.Header.Set("Authorization", "Bearer "+c.apiKey)
    resp, err := c.httpClient.Do(req)
    if err != nil {
        return Status{OK: false, Message: trimError(err)}
    }
    defer resp.Body.Close()
    if resp.StatusCode >= 400 {
        return Status{OK: false, Message: fmt.Sprintf("HTTP %d", resp.StatusCode)}
    }
    return Status{OK: true, Message: "Available"}
}

func trimError(err error) string {
    if err == nil {
        return ""
    }
    var netErr interface{ Timeout() bool }
    if errors.As(err, &netErr) && netErr.Timeout() {
        return "timeout"
    }
    msg := err.Error()
    if len(msg) > 120 {
        return msg[:120]
    }
    return msg
}
