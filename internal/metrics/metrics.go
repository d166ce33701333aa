package metrics

import (
    "net/http"
    "time"

    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
    providerReqs = prometheus.NewCounterVec(
        prometheus.CounterOpts{
            Namespace: "quotequest",
            Name:      "provider_requests_total",
            Help:      "Total completion API requests by model and result",
        },
        []string{"model", "result"},
    )

    providerLatency = prometheus.NewHistogramVec(
        prometheus.HistogramOpts{
            Namespace: "quotequest",
            Name:      "provider_request_duration_seconds",
            Help:      "Duration of completion API requests by model",
            Buckets:   prometheus.DefBuckets,
        },
        []string{"model"},
    )

    questionsClassified = prometheus.NewCounterVec(
        prometheus.CounterOpts{
            Namespace: "quotequest",
            Name:      "questions_classified_total",
            Help:      "Questions classified, labeled by task type",
        },
        []string{"task_type"},
    )

    chunksProcessed = prometheus.NewCounterVec(
        prometheus.CounterOpts{
            Namespace: "quotequest",
            Name:      "chunks_processed_total",
            Help:      "Chunks processed by result (success, empty, failed)",
        },
        []string{"result"},
    )

    retriesTotal = prometheus.NewCounter(
        prometheus.CounterOpts{
            Namespace: "quotequest",
            Name:      "rate_limit_retries_total",
            Help:      "Total number of rate-limit retries against the completion API",
        },
    )

    askDuration = prometheus.NewHistogram(
        prometheus.HistogramOpts{
            Namespace: "quotequest",
            Name:      "ask_request_duration_seconds",
            Help:      "End-to-end duration of /ask-pdf requests",
            Buckets:   []float64{1, 2.5, 5, 10, 20, 40, 80, 160},
        },
    )

    cacheEvents = prometheus.NewCounterVec(
        prometheus.CounterOpts{
            Namespace: "quotequest",
            Name:      "answer_cache_events_total",
            Help:      "Answer cache events (hit, miss, store, error)",
        },
        []string{"event"},
    )
)

// Init registers collectors.
func Init() {
    prometheus.MustRegister(providerReqs, providerLatency, questionsClassified, chunksProcessed, retriesTotal, askDuration, cacheEvents)
}

// Handler returns the http.Handler for /metrics
func Handler() http.Handler { return promhttp.Handler() }

func ObserveProvider(model, result string, dur time.Duration) {
    providerReqs.WithLabelValues(model, result).Inc()
    providerLatency.WithLabelValues(model).Observe(dur.Seconds())
}

func IncClassified(taskType string)   { questionsClassified.WithLabelValues(taskType).Inc() }
func IncChunk(result string)          { chunksProcessed.WithLabelValues(result).Inc() }
func IncRetry()                       { retriesTotal.Inc() }
func ObserveAsk(dur time.Duration)    { askDuration.Observe(dur.Seconds()) }
func IncCache(event string)           { cacheEvents.WithLabelValues(event).Inc() }
