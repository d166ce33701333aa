package extract

import (
    "context"
    "fmt"

    "github.com/gen2brain/go-fitz"
    "github.com/rs/zerolog/log"
)

// FitzExtractor extracts page text with MuPDF via go-fitz (no external tools).
type FitzExtractor struct{}

func NewFitzExtractor() *FitzExtractor { return &FitzExtractor{} }

func (e *FitzExtractor) Name() string { return "gofitz" }

func (e *FitzExtractor) PageTexts(ctx context.Context, path string) ([]string, error) {
    doc, err := fitz.New(path)
    if err != nil {
        return nil, fmt.Errorf("open pdf: %w", err)
    }
    defer doc.Close()

    n := doc.NumPage()
    pages := make([]string, 0, n)
    for i := 0; i < n; i++ {
        if err := ctx.Err(); err != nil {
            return nil, err
        }
        text, err := doc.Text(i)
        if err != nil {
            // font decode noise lands here on scanned books; the page is
            // kept as empty text so numbering stays aligned
            log.Warn().Err(err).Str("component", "extract").Int("page", i+1).Msg("failed to extract text from page")
            text = ""
        }
        pages = append(pages, NormalizePage(text))
    }

    log.Debug().Str("component", "extract").Int("pages", n).Msg("extracted page texts with go-fitz")
    return pages, nil
}
