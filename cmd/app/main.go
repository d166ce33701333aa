package main

import (
    "context"
    "fmt"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/joho/godotenv"
    "github.com/rs/zerolog/log"

    "github.com/local/quotequest/internal/ai"
    "github.com/local/quotequest/internal/cache"
    cfgpkg "github.com/local/quotequest/internal/config"
    "github.com/local/quotequest/internal/extract"
    logpkg "github.com/local/quotequest/internal/logger"
    "github.com/local/quotequest/internal/metrics"
    "github.com/local/quotequest/internal/pipeline"
    "github.com/local/quotequest/internal/server"
    "github.com/local/quotequest/internal/statuscheck"
)

// cachePinger keeps a disabled cache out of the status checker: wrapping the
// typed nil in the interface directly would make /status probe it and report
// Connected instead of Disabled.
func cachePinger(c *cache.AnswerCache) statuscheck.RedisPinger {
    if c == nil {
        return nil
    }
    return c
}

func main() {
    _ = godotenv.Load()
    cfg := cfgpkg.FromEnv()

    // Init logging
    _ = logpkg.Init(logpkg.Options{
        Level:      cfg.Logging.Level,
        Pretty:     cfg.Logging.Pretty,
        File:       cfg.Logging.File,
        MaxSizeMB:  cfg.Logging.MaxSizeMB,
        MaxBackups: cfg.Logging.MaxBackups,
        MaxAgeDays: cfg.Logging.MaxAgeDays,
        Compress:   cfg.Logging.Compress,
        // MuPDF emits a font warning per page on scanned books; drop them.
        SuppressComponent: "extract",
        SuppressContains:  []string{"non-embedded font", "cannot load font"},
        SendToAxiom:       cfg.Axiom.Send && cfg.Axiom.APIKey != "",
        AxiomAPIKey:       cfg.Axiom.APIKey,
        AxiomOrgID:        cfg.Axiom.OrgID,
        AxiomDataset:      cfg.Axiom.Dataset,
        AxiomFlush:        cfg.Axiom.FlushInterval,
    })
    defer logpkg.Close()

    metrics.Init()

    if cfg.Model.APIKey == "" {
        log.Warn().Msg("TOGETHER_API_KEY not set, completion requests will fail")
    }

    // Answer cache (nil when REDIS_URL is unset)
    answers := cache.New(cfg.Cache)
    defer answers.Close()

    client := ai.NewTogetherClient(cfg.Model.BaseURL, cfg.Model.APIKey)
    gateway := pipeline.NewGateway(client, cfg.Model, cfg.Gateway)
    pipe := pipeline.New(gateway, cfg.Chunking, cfg.Gateway)

    checker := statuscheck.New(statuscheck.Options{
        Redis:      cachePinger(answers),
        APIBaseURL: cfg.Model.BaseURL,
        APIKey:     cfg.Model.APIKey,
    })

    srvHandlers := server.New(cfg.Server, pipe, answers,
        extract.NewFitzExtractor(), extract.NewPlainExtractor(), checker)

    mux := http.NewServeMux()
    srvHandlers.RegisterRoutes(mux)

    srv := &http.Server{Addr: ":" + cfg.Server.Port, Handler: mux}

    go func() {
        log.Info().Msgf("HTTP server listening on :%s", cfg.Server.Port)
        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            log.Fatal().Err(err).Msg("http server error")
        }
    }()

    // Graceful shutdown
    stop := make(chan os.Signal, 1)
    signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
    <-stop
    ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()
    _ = srv.Shutdown(ctx)
    fmt.Println("shutdown complete")
}
