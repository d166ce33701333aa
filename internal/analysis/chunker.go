package analysis

import (
    "fmt"
    "sort"
    "strings"
)

// Chunk is the unit of work sent to the model: a bounded page range with the
// page texts concatenated under explicit page markers. Uniform chunks hold
// contiguous pages; micro-detail chunks hold a relevance-selected page group
// that may skip uninvolved pages.
type Chunk struct {
    Text        string
    StartPage   int
    EndPage     int
    PageNumbers []int
    Pages       []string

    IsMicroDetail         bool
    RelevantSentenceCount int
}

const pageSeparator = "\n\n----------------\n\n"

func renderChunkText(pageNumbers []int, pages []string) string {
    parts := make([]string, 0, len(pages))
    for i, text := range pages {
        parts = append(parts, fmt.Sprintf("STRANICA %d:\n%s", pageNumbers[i], text))
    }
    return strings.Join(parts, pageSeparator)
}

// BuildUniformChunks partitions the page sequence into contiguous groups of
// pagesPerChunk pages. The final chunk may be short.
func BuildUniformChunks(pages []string, pagesPerChunk int) []Chunk {
    if pagesPerChunk <= 0 {
        pagesPerChunk = 1
    }
    var chunks []Chunk
    for i := 0; i < len(pages); i += pagesPerChunk {
        end := i + pagesPerChunk
        if end > len(pages) {
            end = len(pages)
        }
        group := pages[i:end]
        numbers := make([]int, 0, len(group))
        for p := i + 1; p <= end; p++ {
            numbers = append(numbers, p)
        }
        chunks = append(chunks, Chunk{
            Text:        renderChunkText(numbers, group),
            StartPage:   i + 1,
            EndPage:     end,
            PageNumbers: numbers,
            Pages:       group,
        })
    }
    return chunks
}

// BuildMicroDetailChunks builds narrower, higher-density chunks from the
// pages touched by the filtered sentence set. Distinct pages are collected,
// sorted, and grouped microPagesPerChunk at a time; a group's pages need not
// be contiguous in the book. With no surviving sentences at all (degenerate
// document) it falls back to uniform chunking, still flagged micro-detail.
func BuildMicroDetailChunks(pages []string, filtered []SentenceRecord, microPagesPerChunk, pagesPerChunk int) []Chunk {
    if microPagesPerChunk <= 0 {
        microPagesPerChunk = 1
    }
    if len(filtered) == 0 {
        chunks := BuildUniformChunks(pages, pagesPerChunk)
        for i := range chunks {
            chunks[i].IsMicroDetail = true
        }
        return chunks
    }

    seen := map[int]struct{}{}
    var relevantPages []int
    perPage := map[int]int{}
    for _, rec := range filtered {
        perPage[rec.Page]++
        if _, ok := seen[rec.Page]; !ok {
            seen[rec.Page] = struct{}{}
            relevantPages = append(relevantPages, rec.Page)
        }
    }
    sort.Ints(relevantPages)

    var chunks []Chunk
    for i := 0; i < len(relevantPages); i += microPagesPerChunk {
        end := i + microPagesPerChunk
        if end > len(relevantPages) {
            end = len(relevantPages)
        }
        group := relevantPages[i:end]

        texts := make([]string, 0, len(group))
        sentences := 0
        for _, p := range group {
            texts = append(texts, pages[p-1])
            sentences += perPage[p]
        }

        chunks = append(chunks, Chunk{
            Text:                  renderChunkText(group, texts),
            StartPage:             group[0],
            EndPage:               group[len(group)-1],
            PageNumbers:           append([]int(nil), group...),
            Pages:                 texts,
            IsMicroDetail:         true,
            RelevantSentenceCount: sentences,
        })
    }
    return chunks
}
