package config

import (
    "os"
    "strconv"
    "strings"
    "time"
)

// LoggingConfig holds logging-related configuration.
type LoggingConfig struct {
    Level        string
    Pretty       bool
    File         string
    MaxSizeMB    int
    MaxBackups   int
    MaxAgeDays   int
    Compress     bool
}

// AxiomConfig holds Axiom logging configuration.
type AxiomConfig struct {
    Send          bool
    APIKey        string
    OrgID         string
    Dataset       string
    FlushInterval time.Duration
}

// ModelConfig defines the completion API endpoint and generation parameters.
type ModelConfig struct {
    BaseURL     string
    APIKey      string
    Model       string
    Temperature float64
    MaxTokens   int
}

// ChunkingConfig defines how page sequences are split into model-sized chunks.
// PagesPerChunk ran at 15 in an earlier revision; 6 keeps per-request token
// volume low at the cost of more round trips.
type ChunkingConfig struct {
    PagesPerChunk      int
    MicroPagesPerChunk int
    MinSentenceLen     int
}

// GatewayConfig defines fan-out and retry behavior toward the completion API.
type GatewayConfig struct {
    MaxConcurrent     int
    BatchDelay        time.Duration
    RequestTimeout    time.Duration
    MaxAttempts       int
    RetryBaseDelay    time.Duration
    RetryAfterMargin  time.Duration
    RetryAfterDefault time.Duration
}

// CacheConfig defines the optional Redis answer cache.
type CacheConfig struct {
    RedisURL string
    TTL      time.Duration
}

// ServerConfig defines the inbound HTTP surface.
type ServerConfig struct {
    Port          string
    UploadDir     string
    MaxUploadMB   int64
}

// Config is the top-level configuration.
type Config struct {
    Logging  LoggingConfig
    Axiom    AxiomConfig
    Model    ModelConfig
    Chunking ChunkingConfig
    Gateway  GatewayConfig
    Cache    CacheConfig
    Server   ServerConfig
}

// FromEnv loads configuration from environment with sensible defaults.
func FromEnv() Config {
    cfg := Config{}

    // Logging defaults
    cfg.Logging = LoggingConfig{
        Level:      getEnv("LOG_LEVEL", "info"),
        Pretty:     parseBool(getEnv("LOG_PRETTY", devDefaultPretty())),
        File:       getEnv("LOG_FILE", "logs/quotequest.log"),
        MaxSizeMB:  parseInt(getEnv("LOG_MAX_SIZE_MB", "100"), 100),
        MaxBackups: parseInt(getEnv("LOG_MAX_BACKUPS", "10"), 10),
        MaxAgeDays: parseInt(getEnv("LOG_MAX_AGE_DAYS", "30"), 30),
        Compress:   parseBool(getEnv("LOG_COMPRESS", "true")),
    }

    // Axiom defaults
    baseDataset := getEnv("AXIOM_DATASET", "dev")
    cfg.Axiom = AxiomConfig{
        Send:          parseBool(getEnv("SEND_LOGS_TO_AXIOM", "0")),
        APIKey:        getEnv("AXIOM_API_KEY", ""),
        OrgID:         getEnv("AXIOM_ORG_ID", ""),
        Dataset:       baseDataset + "_quotequest",
        FlushInterval: parseDuration(getEnv("AXIOM_FLUSH_INTERVAL", "10s"), 10*time.Second),
    }

    // Model defaults
    cfg.Model = ModelConfig{
        BaseURL:     getEnv("TOGETHER_BASE_URL", "https://api.together.ai"),
        APIKey:      getEnv("TOGETHER_API_KEY", ""),
        Model:       getEnv("TOGETHER_MODEL", "meta-llama/Meta-Llama-3.1-70B-Instruct-Turbo"),
        Temperature: parseFloat(getEnv("MODEL_TEMPERATURE", "0.05"), 0.05),
        MaxTokens:   parseInt(getEnv("MODEL_MAX_TOKENS", "3500"), 3500),
    }

    // Chunking defaults
    cfg.Chunking = ChunkingConfig{
        PagesPerChunk:      parseInt(getEnv("PAGES_PER_CHUNK", "6"), 6),
        MicroPagesPerChunk: parseInt(getEnv("MICRO_PAGES_PER_CHUNK", "5"), 5),
        MinSentenceLen:     parseInt(getEnv("MIN_SENTENCE_LEN", "10"), 10),
    }

    // Gateway defaults
    cfg.Gateway = GatewayConfig{
        MaxConcurrent:     parseInt(getEnv("MAX_CONCURRENT_REQUESTS", "5"), 5),
        BatchDelay:        parseDuration(getEnv("BATCH_DELAY", "1s"), time.Second),
        RequestTimeout:    parseDuration(getEnv("REQUEST_TIMEOUT", "90s"), 90*time.Second),
        MaxAttempts:       parseInt(getEnv("RETRY_MAX_ATTEMPTS", "3"), 3),
        RetryBaseDelay:    parseDuration(getEnv("RETRY_BASE_DELAY", "2s"), 2*time.Second),
        RetryAfterMargin:  parseDuration(getEnv("RETRY_AFTER_MARGIN", "500ms"), 500*time.Millisecond),
        RetryAfterDefault: parseDuration(getEnv("RETRY_AFTER_DEFAULT", "5s"), 5*time.Second),
    }

    // Cache defaults (disabled unless REDIS_URL is set)
    cfg.Cache = CacheConfig{
        RedisURL: getEnv("REDIS_URL", ""),
        TTL:      parseDuration(getEnv("ANSWER_CACHE_TTL", "1h"), time.Hour),
    }

    // Server defaults
    cfg.Server = ServerConfig{
        Port:        getEnv("PORT", "5000"),
        UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
        MaxUploadMB: int64(parseInt(getEnv("MAX_UPLOAD_MB", "64"), 64)),
    }

    return cfg
}

// Helpers
func getEnv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func parseInt(s string, def int) int {
    if s == "" { return def }
    if n, err := strconv.Atoi(s); err == nil { return n }
    return def
}

func parseFloat(s string, def float64) float64 {
    if s == "" { return def }
    if f, err := strconv.ParseFloat(s, 64); err == nil { return f }
    return def
}

func parseBool(s string) bool {
    v := strings.ToLower(strings.TrimSpace(s))
    return v == "1" || v == "true" || v == "yes" || v == "on"
}

func parseDuration(s string, def time.Duration) time.Duration {
    if s == "" { return def }
    if d, err := time.ParseDuration(s); err == nil { return d }
    return def
}

func devDefaultPretty() string {
    env := strings.ToLower(os.Getenv("ENVIRONMENT"))
    if env == "dev" || env == "development" || env == "local" { return "true" }
    return "false"
}
