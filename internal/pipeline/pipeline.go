package pipeline

import (
    "context"
    "strings"
    "sync"
    "time"

    "github.com/rs/zerolog/log"

    "github.com/local/quotequest/internal/analysis"
    "github.com/local/quotequest/internal/config"
    "github.com/local/quotequest/internal/metrics"
)

// Pipeline runs a question against a document: classify, chunk, fan out to
// the model in bounded batches, aggregate. It is stateless across requests.
type Pipeline struct {
    gateway  *Gateway
    chunking config.ChunkingConfig
    fanout   config.GatewayConfig
}

func New(gateway *Gateway, chunking config.ChunkingConfig, fanout config.GatewayConfig) *Pipeline {
    return &Pipeline{gateway: gateway, chunking: chunking, fanout: fanout}
}

// Answer processes one question over the extracted page texts. The returned
// response always has a task type and follow-up suggestions; quotes may be
// empty when no chunk produced usable output.
func (p *Pipeline) Answer(ctx context.Context, requestID string, pages []string, question string) Response {
    question = strings.TrimSpace(question)

    task := analysis.DetectTaskType(question)
    metrics.IncClassified(string(task))

    var characterName string
    if task == analysis.TaskCharacterization {
        characterName = analysis.ExtractCharacterName(question)
    }
    category := analysis.CategoryGeneral
    if task == analysis.TaskMicroDetail {
        category = analysis.DetectMicroCategory(question)
    }

    chunks := p.buildChunks(pages, question, task)

    log.Info().
        Str("request_id", requestID).
        Str("task_type", string(task)).
        Str("category", string(category)).
        Str("character", characterName).
        Int("pages", len(pages)).
        Int("chunks", len(chunks)).
        Msg("question classified, chunks built")

    all := p.fanOut(ctx, requestID, chunks, len(pages), task, category, question, characterName)

    resp := Response{
        Type:     task,
        Quotes:   aggregate(all),
        FollowUp: followUpQuestions(task, category, characterName),
    }

    if task == analysis.TaskCount {
        if word := analysis.ExtractCountTarget(question); word != "" {
            meta := analysis.CountOccurrences(chunks, word)
            resp.Meta = &meta
        }
    }

    return resp
}

func (p *Pipeline) buildChunks(pages []string, question string, task analysis.TaskType) []analysis.Chunk {
    if task != analysis.TaskMicroDetail {
        return analysis.BuildUniformChunks(pages, p.chunking.PagesPerChunk)
    }
    index := analysis.BuildSentenceIndex(pages, p.chunking.MinSentenceLen)
    filtered := analysis.FilterSentences(index, analysis.ExtractKeywords(question))
    return analysis.BuildMicroDetailChunks(pages, filtered, p.chunking.MicroPagesPerChunk, p.chunking.PagesPerChunk)
}

// fanOut processes chunks in fixed-size batches. All chunks in a batch run
// concurrently and must settle (successfully or degraded to empty) before the
// next batch starts; a fixed delay between batches is the one explicit
// backpressure mechanism toward the external API.
func (p *Pipeline) fanOut(ctx context.Context, requestID string, chunks []analysis.Chunk, totalPages int, task analysis.TaskType, category analysis.MicroCategory, question, characterName string) []rawQuote {
    batchSize := p.fanout.MaxConcurrent
    if batchSize <= 0 {
        batchSize = 1
    }

    results := make([][]rawQuote, len(chunks))

    for i := 0; i < len(chunks); i += batchSize {
        if i > 0 && p.fanout.BatchDelay > 0 {
            select {
            case <-time.After(p.fanout.BatchDelay):
            case <-ctx.Done():
                log.Warn().Str("request_id", requestID).Msg("request cancelled between batches")
                return flatten(results)
            }
        }

        end := i + batchSize
        if end > len(chunks) {
            end = len(chunks)
        }

        var wg sync.WaitGroup
        for j := i; j < end; j++ {
            wg.Add(1)
            go func(idx int) {
                defer wg.Done()
                results[idx] = p.gateway.ProcessChunk(ctx, chunks[idx], totalPages, task, category, question, characterName)
            }(j)
        }
        wg.Wait()

        log.Debug().
            Str("request_id", requestID).
            Int("batch_start", i).
            Int("batch_end", end).
            Int("total_chunks", len(chunks)).
            Msg("batch completed")
    }

    return flatten(results)
}

func flatten(results [][]rawQuote) []rawQuote {
    var all []rawQuote
    for _, r := range results {
        all = append(all, r...)
    }
    return all
}
