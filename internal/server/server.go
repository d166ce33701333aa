package server

import (
    "context"
    "encoding/json"
    "fmt"
    "io"
    "net/http"
    "os"
    "strings"
    "time"

    "github.com/google/uuid"
    "github.com/rs/zerolog/log"

    "github.com/local/quotequest/internal/cache"
    "github.com/local/quotequest/internal/config"
    "github.com/local/quotequest/internal/extract"
    "github.com/local/quotequest/internal/filetype"
    "github.com/local/quotequest/internal/metrics"
    "github.com/local/quotequest/internal/pipeline"
    "github.com/local/quotequest/internal/statuscheck"
)

const (
    errNoFile     = "Nema PDF fajla."
    errNoQuestion = "Nema pitanja."
    errProcessing = "Greška pri obradi PDF-a ili AI odgovora."
)

// Answerer runs one question against extracted page texts.
type Answerer interface {
    Answer(ctx context.Context, requestID string, pages []string, question string) pipeline.Response
}

type Server struct {
    cfg      config.ServerConfig
    pipe     Answerer
    answers  *cache.AnswerCache
    detector *filetype.Detector
    primary  extract.Extractor
    fallback extract.Extractor
    checker  *statuscheck.Checker
}

func New(cfg config.ServerConfig, pipe Answerer, answers *cache.AnswerCache, primary, fallback extract.Extractor, checker *statuscheck.Checker) *Server {
    return &Server{cfg: cfg, pipe: pipe, answers: answers, detector: filetype.New(), primary: primary, fallback: fallback, checker: checker}
}

func (s *Server) RegisterRoutes(mux *http.ServeMux) {
    mux.HandleFunc("/ask-pdf", s.handleAskPDF)
    mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK); _, _ = w.Write([]byte("ok")) })
    mux.HandleFunc("/status", s.handleStatus)
    mux.Handle("/metrics", metrics.Handler())
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Content-Type", "application/json")
    _ = json.NewEncoder(w).Encode(s.checker.Summary(r.Context()))
}

func writeError(w http.ResponseWriter, code int, msg string) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(code)
    _ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// handleAskPDF accepts a multipart upload with fields: file (the PDF) and
// question. It answers from the cache when the same book and question were
// already processed, otherwise runs the full extraction and analysis flow.
func (s *Server) handleAskPDF(w http.ResponseWriter, r *http.Request) {
    if r.Method != http.MethodPost {
        w.WriteHeader(http.StatusMethodNotAllowed)
        return
    }
    started := time.Now()
    requestID := uuid.NewString()

    maxBytes := int64(s.cfg.MaxUploadMB) << 20
    r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
    if err := r.ParseMultipartForm(maxBytes); err != nil {
        writeError(w, http.StatusBadRequest, errNoFile)
        return
    }
    file, hdr, err := r.FormFile("file")
    if err != nil {
        writeError(w, http.StatusBadRequest, errNoFile)
        return
    }
    defer file.Close()

    question := strings.TrimSpace(r.FormValue("question"))
    if question == "" {
        writeError(w, http.StatusBadRequest, errNoQuestion)
        return
    }

    localPath, err := s.saveUpload(requestID, hdr.Filename, file)
    if err != nil {
        log.Error().Err(err).Str("request_id", requestID).Msg("cannot persist upload")
        writeError(w, http.StatusInternalServerError, errProcessing)
        return
    }
    // The file is only needed for the duration of this request.
    defer func() { _ = os.Remove(localPath) }()

    info, err := s.detector.Detect(localPath)
    if err != nil || !info.IsPDF {
        mime := ""
        if info != nil {
            mime = info.MIMEType
        }
        log.Warn().Err(err).Str("request_id", requestID).Str("mime", mime).Msg("upload is not a pdf")
        writeError(w, http.StatusBadRequest, errNoFile)
        return
    }

    cacheKey, keyErr := cache.Key(localPath, question)
    if keyErr == nil {
        if body := s.answers.Get(r.Context(), cacheKey); body != nil {
            log.Info().Str("request_id", requestID).Msg("answer served from cache")
            w.Header().Set("Content-Type", "application/json")
            _, _ = w.Write(body)
            metrics.ObserveAsk(time.Since(started))
            return
        }
    }

    pageCount, err := extract.ValidatePDF(localPath)
    if err != nil {
        log.Warn().Err(err).Str("request_id", requestID).Msg("pdf validation failed")
        writeError(w, http.StatusInternalServerError, errProcessing)
        return
    }

    if ok, probe, perr := extract.HasTextLayer(localPath, extract.DefaultProbeThreshold); perr == nil && !ok {
        log.Warn().
            Str("request_id", requestID).
            Int("total_pages", probe.TotalPages).
            Int("sample_chars", probe.SampleChars).
            Msg("document has no usable text layer")
        writeError(w, http.StatusInternalServerError, errProcessing)
        return
    }

    pages, err := extract.Pages(r.Context(), s.primary, s.fallback, localPath)
    if err != nil {
        log.Error().Err(err).Str("request_id", requestID).Msg("text extraction failed")
        writeError(w, http.StatusInternalServerError, errProcessing)
        return
    }

    log.Info().
        Str("request_id", requestID).
        Str("file", hdr.Filename).
        Int("pages", pageCount).
        Msg("processing question")

    resp := s.pipe.Answer(r.Context(), requestID, pages, question)

    body, err := json.Marshal(resp)
    if err != nil {
        log.Error().Err(err).Str("request_id", requestID).Msg("response encode failed")
        writeError(w, http.StatusInternalServerError, errProcessing)
        return
    }
    if keyErr == nil {
        s.answers.Set(r.Context(), cacheKey, body)
    }

    w.Header().Set("Content-Type", "application/json")
    _, _ = w.Write(body)
    metrics.ObserveAsk(time.Since(started))

    log.Info().
        Str("request_id", requestID).
        Str("task_type", string(resp.Type)).
        Int("quotes", len(resp.Quotes)).
        Dur("elapsed", time.Since(started)).
        Msg("question answered")
}

func (s *Server) saveUpload(requestID, name string, file io.Reader) (string, error) {
    if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
        return "", err
    }
    if name == "" {
        name = "upload.pdf"
    }
    localPath := fmt.Sprintf("%s/%s_%s", strings.TrimRight(s.cfg.UploadDir, "/"), requestID, name)
    out, err := os.Create(localPath)
    if err != nil {
        return "", err
    }
    if _, err := io.Copy(out, file); err != nil {
        out.Close()
        _ = os.Remove(localPath)
        return "", err
    }
    return localPath, out.Close()
}
