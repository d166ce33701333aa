package extract

import (
    "context"
    "fmt"
    "os"

    "github.com/ledongthuc/pdf"
    "github.com/rs/zerolog/log"
)

// PlainExtractor is a pure-Go fallback built on ledongthuc/pdf. Weaker on
// exotic encodings than MuPDF but needs no cgo, so it can still serve when
// go-fitz refuses a document.
type PlainExtractor struct{}

func NewPlainExtractor() *PlainExtractor { return &PlainExtractor{} }

func (e *PlainExtractor) Name() string { return "ledongthuc" }

func (e *PlainExtractor) PageTexts(ctx context.Context, path string) ([]string, error) {
    f, err := os.Open(path)
    if err != nil {
        return nil, err
    }
    defer f.Close()

    stat, err := f.Stat()
    if err != nil {
        return nil, err
    }

    reader, err := pdf.NewReader(f, stat.Size())
    if err != nil {
        return nil, fmt.Errorf("open pdf: %w", err)
    }

    n := reader.NumPage()
    pages := make([]string, 0, n)
    for i := 1; i <= n; i++ {
        if err := ctx.Err(); err != nil {
            return nil, err
        }
        text, err := reader.Page(i).GetPlainText(nil)
        if err != nil {
            log.Warn().Err(err).Str("component", "extract").Int("page", i).Msg("failed to extract text from page")
            text = ""
        }
        pages = append(pages, NormalizePage(text))
    }

    return pages, nil
}
