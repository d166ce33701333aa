package analysis

import (
    "regexp"
    "strings"
)

// CountMeta summarizes word occurrences for count questions.
type CountMeta struct {
    Word     string         `json:"word"`
    Total    int            `json:"total"`
    PerPage  []PageCount    `json:"perPage"`
    Examples []CountExample `json:"examples"`
}

type PageCount struct {
    Page  int `json:"page"`
    Count int `json:"count"`
}

type CountExample struct {
    Page     int    `json:"page"`
    Sentence string `json:"sentence"`
}

var quotedWordRE = regexp.MustCompile(`["'„”“]([^"'„”“]+)["'„”“]`)

// ExtractCountTarget returns the word whose occurrences a count question
// asks about: a quoted phrase when present, otherwise the last token.
func ExtractCountTarget(question string) string {
    q := strings.TrimSpace(question)
    if m := quotedWordRE.FindStringSubmatch(q); m != nil {
        return strings.ToLower(strings.TrimSpace(m[1]))
    }
    fields := strings.Fields(strings.Trim(q, "?!."))
    if len(fields) == 0 {
        return ""
    }
    return strings.ToLower(fields[len(fields)-1])
}

// CountOccurrences counts whole-word matches of word across all chunk pages
// and collects up to two example sentences per page.
func CountOccurrences(chunks []Chunk, word string) CountMeta {
    meta := CountMeta{Word: word}
    if word == "" {
        return meta
    }
    re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)

    for _, chunk := range chunks {
        for i, pageText := range chunk.Pages {
            count := len(re.FindAllStringIndex(pageText, -1))
            if count == 0 {
                continue
            }
            page := chunk.PageNumbers[i]
            meta.Total += count
            meta.PerPage = append(meta.PerPage, PageCount{Page: page, Count: count})

            found := 0
            for _, sentence := range splitSentences(pageText) {
                if found >= 2 {
                    break
                }
                trimmed := strings.TrimSpace(sentence)
                if len([]rune(trimmed)) < defaultMinSentenceLen || !re.MatchString(trimmed) {
                    continue
                }
                meta.Examples = append(meta.Examples, CountExample{Page: page, Sentence: trimmed})
                found++
            }
        }
    }
    return meta
}
