package analysis

import (
    "strings"
    "unicode"
)

// SentenceRecord is one sentence with its originating page (1-indexed) and
// its index on that page. Used only for micro-detail prefiltering, never for
// the final answer.
type SentenceRecord struct {
    Page          int
    SentenceIndex int
    Text          string

    lower string
}

// defaultMinSentenceLen filters out fragments like page numbers and stray
// initials when no explicit minimum is configured.
const defaultMinSentenceLen = 10

// BuildSentenceIndex splits every page into sentences and returns the flat
// ordered list. Sentences shorter than minLen runes after trimming are
// dropped; minLen <= 0 falls back to the default. The boundary rule is a
// heuristic: terminal punctuation, whitespace, then a capital letter
// (accented capitals included). It will mis-split abbreviations and decimals
// occasionally, which is acceptable for coarse candidate filtering.
func BuildSentenceIndex(pages []string, minLen int) []SentenceRecord {
    if minLen <= 0 {
        minLen = defaultMinSentenceLen
    }
    var index []SentenceRecord
    for pageIdx, pageText := range pages {
        for sentIdx, sentence := range splitSentences(pageText) {
            trimmed := strings.TrimSpace(sentence)
            if len([]rune(trimmed)) < minLen {
                continue
            }
            index = append(index, SentenceRecord{
                Page:          pageIdx + 1,
                SentenceIndex: sentIdx,
                Text:          trimmed,
                lower:         strings.ToLower(trimmed),
            })
        }
    }
    return index
}

// splitSentences breaks text after `.`, `!` or `?` when whitespace and an
// uppercase letter follow. Implemented as a scan because RE2 has no
// lookbehind.
func splitSentences(text string) []string {
    runes := []rune(text)
    var sentences []string
    start := 0
    for i := 0; i < len(runes); i++ {
        r := runes[i]
        if r != '.' && r != '!' && r != '?' {
            continue
        }
        // consume the whitespace run after the terminator
        j := i + 1
        for j < len(runes) && unicode.IsSpace(runes[j]) {
            j++
        }
        if j == i+1 || j >= len(runes) {
            continue
        }
        if !unicode.IsUpper(runes[j]) {
            continue
        }
        sentences = append(sentences, string(runes[start:i+1]))
        start = j
        i = j - 1
    }
    if start < len(runes) {
        sentences = append(sentences, string(runes[start:]))
    }
    return sentences
}

// FilterSentences keeps sentences containing any of the keywords
// (case-insensitive substring match). When nothing matches, or there are no
// keywords, the full index is returned so a bad filter never silently
// produces an empty working set.
func FilterSentences(index []SentenceRecord, keywords []string) []SentenceRecord {
    if len(keywords) == 0 {
        return index
    }
    var filtered []SentenceRecord
    for _, rec := range index {
        for _, kw := range keywords {
            if strings.Contains(rec.lower, strings.ToLower(kw)) {
                filtered = append(filtered, rec)
                break
            }
        }
    }
    if len(filtered) == 0 {
        return index
    }
    return filtered
}
