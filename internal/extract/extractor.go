package extract

import (
    "context"
    "fmt"
    "regexp"
    "strings"

    "github.com/pdfcpu/pdfcpu/pkg/api"
)

// Extractor turns a PDF file into an ordered sequence of per-page plain-text
// strings, 1-indexed by position. A page with no extractable text yields "".
type Extractor interface {
    Name() string
    PageTexts(ctx context.Context, path string) ([]string, error)
}

var wsRE = regexp.MustCompile(`\s+`)

// NormalizePage flattens a page's text to single-space separated form.
func NormalizePage(s string) string {
    return strings.TrimSpace(wsRE.ReplaceAllString(s, " "))
}

// ValidatePDF checks the file parses as a PDF and returns its page count.
// Run before extraction so a corrupt upload fails fast with one clear error.
func ValidatePDF(path string) (int, error) {
    n, err := api.PageCountFile(path)
    if err != nil {
        return 0, fmt.Errorf("pdf page count failed: %w", err)
    }
    if n < 1 {
        return 0, fmt.Errorf("pdf has no pages")
    }
    return n, nil
}

// Pages extracts with the primary extractor and falls back to the secondary
// when the primary cannot open the document at all. Per-page extraction
// failures inside either extractor degrade to empty page strings.
func Pages(ctx context.Context, primary, fallback Extractor, path string) ([]string, error) {
    pages, err := primary.PageTexts(ctx, path)
    if err == nil {
        return pages, nil
    }
    if fallback == nil {
        return nil, err
    }
    pages, ferr := fallback.PageTexts(ctx, path)
    if ferr != nil {
        return nil, fmt.Errorf("extraction failed (%s: %v; %s: %w)", primary.Name(), err, fallback.Name(), ferr)
    }
    return pages, nil
}
