package server

import (
    "bytes"
    "context"
    "encoding/json"
    "io"
    "mime/multipart"
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/local/quotequest/internal/analysis"
    "github.com/local/quotequest/internal/config"
    "github.com/local/quotequest/internal/pipeline"
    "github.com/local/quotequest/internal/statuscheck"
)

type stubAnswerer struct{}

func (stubAnswerer) Answer(ctx context.Context, requestID string, pages []string, question string) pipeline.Response {
    return pipeline.Response{Type: analysis.TaskQuotes}
}

func newTestServer(t *testing.T) *Server {
    t.Helper()
    cfg := config.ServerConfig{Port: "0", UploadDir: t.TempDir(), MaxUploadMB: 8}
    return New(cfg, stubAnswerer{}, nil, nil, nil, statuscheck.New(statuscheck.Options{}))
}

func multipartBody(t *testing.T, fileName string, fileContent []byte, question string) (*bytes.Buffer, string) {
    t.Helper()
    var buf bytes.Buffer
    mw := multipart.NewWriter(&buf)
    if fileName != "" {
        fw, err := mw.CreateFormFile("file", fileName)
        require.NoError(t, err)
        _, err = fw.Write(fileContent)
        require.NoError(t, err)
    }
    if question != "" {
        require.NoError(t, mw.WriteField("question", question))
    }
    require.NoError(t, mw.Close())
    return &buf, mw.FormDataContentType()
}

func decodeError(t *testing.T, body io.Reader) string {
    t.Helper()
    var out map[string]string
    require.NoError(t, json.NewDecoder(body).Decode(&out))
    return out["error"]
}

func TestAskPDFMissingFile(t *testing.T) {
    srv := newTestServer(t)
    body, ctype := multipartBody(t, "", nil, "Koja je glavna tema?")

    req := httptest.NewRequest(http.MethodPost, "/ask-pdf", body)
    req.Header.Set("Content-Type", ctype)
    rec := httptest.NewRecorder()
    srv.handleAskPDF(rec, req)

    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Equal(t, "Nema PDF fajla.", decodeError(t, rec.Body))
}

func TestAskPDFMissingQuestion(t *testing.T) {
    srv := newTestServer(t)
    body, ctype := multipartBody(t, "kniga.pdf", []byte("%PDF-1.4 fake"), "")

    req := httptest.NewRequest(http.MethodPost, "/ask-pdf", body)
    req.Header.Set("Content-Type", ctype)
    rec := httptest.NewRecorder()
    srv.handleAskPDF(rec, req)

    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Equal(t, "Nema pitanja.", decodeError(t, rec.Body))
}

func TestAskPDFNotMultipart(t *testing.T) {
    srv := newTestServer(t)
    req := httptest.NewRequest(http.MethodPost, "/ask-pdf", bytes.NewBufferString("question=x"))
    req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
    rec := httptest.NewRecorder()
    srv.handleAskPDF(rec, req)

    assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAskPDFRejectsNonPDFUpload(t *testing.T) {
    srv := newTestServer(t)
    body, ctype := multipartBody(t, "kniga.pdf", []byte("ovo je običan tekst, ne PDF"), "Koja je glavna tema?")

    req := httptest.NewRequest(http.MethodPost, "/ask-pdf", body)
    req.Header.Set("Content-Type", ctype)
    rec := httptest.NewRecorder()
    srv.handleAskPDF(rec, req)

    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.Equal(t, "Nema PDF fajla.", decodeError(t, rec.Body))
}

func TestAskPDFMethodNotAllowed(t *testing.T) {
    srv := newTestServer(t)
    req := httptest.NewRequest(http.MethodGet, "/ask-pdf", nil)
    rec := httptest.NewRecorder()
    srv.handleAskPDF(rec, req)
    assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealthAndStatusRoutes(t *testing.T) {
    srv := newTestServer(t)
    mux := http.NewServeMux()
    srv.RegisterRoutes(mux)

    rec := httptest.NewRecorder()
    mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.Equal(t, "ok", rec.Body.String())

    rec = httptest.NewRecorder()
    mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
    assert.Equal(t, http.StatusOK, rec.Code)

    var summary statuscheck.Summary
    require.NoError(t, json.NewDecoder(rec.Body).Decode(&summary))
    assert.True(t, summary.Redis.OK)
    assert.False(t, summary.Together.OK)
}
