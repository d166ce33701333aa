package ai

import (
    "bytes"
    "context"
    "encoding/json"
    "errors"
    "io"
    "net/http"
    "strconv"
    "strings"
    "time"
)

// TogetherClient talks to the Together AI chat completions endpoint.
type TogetherClient struct {
    http    *http.Client
    baseURL string
    apiKey  string
}

func NewTogetherClient(baseURL, apiKey string) *TogetherClient {
    if baseURL == "" {
        baseURL = "https://api.together.ai"
    }
    return &TogetherClient{
        http:    &http.Client{},
        baseURL: strings.TrimRight(baseURL, "/"),
        apiKey:  apiKey,
    }
}

func (c *TogetherClient) Name() string { return "together" }

type chatMessage struct {
    Role    string `json:"role"`
    Content string `json:"content"`
}

type chatReq struct {
    Model       string        `json:"model"`
    Messages    []chatMessage `json:"messages"`
    Temperature float64       `json:"temperature"`
    MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResp struct {
    Choices []struct {
        Message struct {
            Content string `json:"content"`
        } `json:"message"`
    } `json:"choices"`
    Usage struct {
        PromptTokens     int `json:"prompt_tokens"`
        CompletionTokens int `json:"completion_tokens"`
    } `json:"usage"`
}

func (c *TogetherClient) Do(ctx context.Context, req Request) (Response, error) {
    if c.apiKey == "" {
        return Response{}, errors.New("missing TOGETHER_API_KEY")
    }

    payload := chatReq{
        Model: req.Model,
        Messages: []chatMessage{
            {Role: "system", Content: req.SystemPrompt},
            {Role: "user", Content: req.UserPrompt},
        },
        Temperature: req.Temperature,
        MaxTokens:   req.MaxTokens,
    }

    body, _ := json.Marshal(payload)
    httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
    if err != nil {
        return Response{}, err
    }
    httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
    httpReq.Header.Set("Content-Type", "application/json")

    resp, err := c.http.Do(httpReq)
    if err != nil {
        return Response{}, err
    }
    defer resp.Body.Close()

    if resp.StatusCode == http.StatusTooManyRequests {
        return Response{}, &RateLimitError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
    }
    if resp.StatusCode < 200 || resp.StatusCode >= 300 {
        b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
        return Response{}, &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(b))}
    }

    var r chatResp
    if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
        return Response{}, err
    }
    if len(r.Choices) == 0 {
        return Response{}, errors.New("no choices")
    }

    return Response{
        Text:      r.Choices[0].Message.Content,
        TokensIn:  r.Usage.PromptTokens,
        TokensOut: r.Usage.CompletionTokens,
    }, nil
}

// parseRetryAfter accepts the numeric seconds form only; anything else
// yields zero and the caller falls back to its default backoff.
func parseRetryAfter(h string) time.Duration {
    h = strings.TrimSpace(h)
    if h == "" {
        return 0
    }
    if secs, err := strconv.ParseFloat(h, 64); err == nil && secs > 0 {
        return time.Duration(secs * float64(time.Second))
    }
    return 0
}
