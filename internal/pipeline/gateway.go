package pipeline

import (
    "context"
    "time"

    "github.com/rs/zerolog/log"

    "github.com/local/quotequest/internal/ai"
    "github.com/local/quotequest/internal/analysis"
    "github.com/local/quotequest/internal/config"
    "github.com/local/quotequest/internal/metrics"
    "github.com/local/quotequest/internal/prompt"
)

// Gateway delivers one chunk's prompt pair to the completion API. Failures
// never escape its boundary: a chunk that cannot be processed contributes an
// empty item list and the pipeline moves on.
type Gateway struct {
    client ai.Client
    model  config.ModelConfig
    retry  config.GatewayConfig
}

func NewGateway(client ai.Client, model config.ModelConfig, retry config.GatewayConfig) *Gateway {
    return &Gateway{client: client, model: model, retry: retry}
}

// ProcessChunk composes the prompts, calls the API with rate-limit retry,
// and returns the extracted quotes. Always returns a (possibly empty) list.
func (g *Gateway) ProcessChunk(ctx context.Context, chunk analysis.Chunk, totalPages int, task analysis.TaskType, category analysis.MicroCategory, question, characterName string) []rawQuote {
    system, user := prompt.Compose(chunk, totalPages, task, category, question, characterName)

    req := ai.Request{
        SystemPrompt: system,
        UserPrompt:   user,
        Model:        g.model.Model,
        Temperature:  g.model.Temperature,
        MaxTokens:    g.model.MaxTokens,
    }

    maxAttempts := g.retry.MaxAttempts
    if maxAttempts < 1 {
        maxAttempts = 1
    }

    for attempt := 1; attempt <= maxAttempts; attempt++ {
        cctx, cancel := context.WithTimeout(ctx, g.retry.RequestTimeout)
        start := time.Now()
        resp, err := g.client.Do(cctx, req)
        dur := time.Since(start)
        cancel()

        if err == nil {
            metrics.ObserveProvider(g.model.Model, "success", dur)
            quotes := parseEnvelope(resp.Text)
            if quotes == nil {
                log.Warn().
                    Int("start_page", chunk.StartPage).
                    Int("end_page", chunk.EndPage).
                    Int("completion_chars", len(resp.Text)).
                    Msg("chunk completion had no parsable JSON envelope")
                metrics.IncChunk("empty")
                return nil
            }
            metrics.IncChunk("success")
            return quotes
        }

        if ai.IsRateLimited(err) && attempt < maxAttempts {
            wait := g.backoff(err, attempt)
            log.Warn().
                Int("start_page", chunk.StartPage).
                Int("end_page", chunk.EndPage).
                Int("attempt", attempt).
                Dur("wait", wait).
                Msg("rate limited, backing off before retry")
            metrics.ObserveProvider(g.model.Model, "rate_limited", dur)
            metrics.IncRetry()
            select {
            case <-time.After(wait):
                continue
            case <-ctx.Done():
                metrics.IncChunk("failed")
                return nil
            }
        }

        result := "error"
        if ai.IsRateLimited(err) {
            result = "rate_limit_exhausted"
        }
        metrics.ObserveProvider(g.model.Model, result, dur)
        metrics.IncChunk("failed")
        log.Error().Err(err).
            Int("start_page", chunk.StartPage).
            Int("end_page", chunk.EndPage).
            Int("attempt", attempt).
            Msg("chunk processing failed")
        return nil
    }
    return nil
}

// backoff waits the server-advised duration plus a safety margin when the
// 429 carried one; otherwise it doubles the base delay per attempt.
func (g *Gateway) backoff(err error, attempt int) time.Duration {
    if advised := ai.RetryAfterOf(err); advised > 0 {
        return advised + g.retry.RetryAfterMargin
    }
    d := g.retry.RetryAfterDefault
    if d <= 0 {
        d = g.retry.RetryBaseDelay
    }
    for i := 1; i < attempt; i++ {
        d *= 2
    }
    return d
}
