package extract

import (
    "fmt"
    "math/rand"
    "regexp"
    "sort"
    "time"

    fitz "github.com/gen2brain/go-fitz"
)

// DefaultProbeThreshold is the rune count a sample must reach for a document
// to count as having a text layer.
const DefaultProbeThreshold = 300

var probeWS = regexp.MustCompile(`\s+`)

// ProbeResult describes a text-layer probe over a sampled set of pages.
type ProbeResult struct {
    TotalPages   int
    SampledPages []int
    SampleChars  int
    Threshold    int
}

// pageTexter lets the probe run against a fake document in tests.
type pageTexter interface {
    NumPage() int
    Text(page int) (string, error)
}

// HasTextLayer samples a handful of pages and reports whether the document
// carries enough extractable text to be worth asking questions about. Scanned
// books without OCR fail this check; they would otherwise burn a full fan-out
// of model calls on empty chunks.
func HasTextLayer(path string, threshold int) (bool, ProbeResult, error) {
    doc, err := fitz.New(path)
    if err != nil {
        return false, ProbeResult{}, fmt.Errorf("open for probe: %w", err)
    }
    defer doc.Close()
    return probeDoc(doc, threshold)
}

func probeDoc(doc pageTexter, threshold int) (bool, ProbeResult, error) {
    if threshold <= 0 {
        threshold = DefaultProbeThreshold
    }
    total := doc.NumPage()
    res := ProbeResult{TotalPages: total, Threshold: threshold, SampledPages: sampleIndices(total)}
    if total <= 0 {
        return false, res, nil
    }

    for _, idx := range res.SampledPages {
        text, err := doc.Text(idx)
        if err != nil {
            continue
        }
        res.SampleChars += len([]rune(probeWS.ReplaceAllString(text, "")))
        if res.SampleChars >= threshold {
            break
        }
    }
    return res.SampleChars >= threshold, res, nil
}

// sampleIndices picks up to five pages: everything for short documents,
// otherwise first, middle, last plus random distinct fill.
func sampleIndices(total int) []int {
    if total <= 0 {
        return []int{}
    }
    if total <= 5 {
        idx := make([]int, total)
        for i := range idx {
            idx[i] = i
        }
        return idx
    }

    picked := map[int]struct{}{0: {}, total / 2: {}, total - 1: {}}
    rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
    for len(picked) < 5 {
        picked[rnd.Intn(total)] = struct{}{}
    }

    out := make([]int, 0, len(picked))
    for i := range picked {
        out = append(out, i)
    }
    sort.Ints(out)
    return out
}
