package pipeline

import (
    "encoding/json"
    "fmt"
    "sort"
    "strconv"
    "strings"

    "github.com/google/uuid"
)

// dedupeKeyLen bounds the text prefix used for duplicate detection; long
// quotes differing only past this point are treated as the same item.
const dedupeKeyLen = 100

// aggregate merges per-chunk results in processing order: deduplicate by
// (lowercased text prefix, page), sort ascending by page, and normalize every
// field to a guaranteed-present shape.
func aggregate(all []rawQuote) []Quote {
    seen := map[string]struct{}{}
    quotes := make([]Quote, 0, len(all))

    for _, raw := range all {
        page := coercePage(raw.Page)
        key := fmt.Sprintf("%s-%d", textKey(raw.Text), page)
        if _, dup := seen[key]; dup {
            continue
        }
        seen[key] = struct{}{}
        quotes = append(quotes, normalize(raw, page))
    }

    sort.SliceStable(quotes, func(i, j int) bool { return quotes[i].Page < quotes[j].Page })
    return quotes
}

func textKey(text string) string {
    t := strings.ToLower(strings.TrimSpace(text))
    runes := []rune(t)
    if len(runes) > dedupeKeyLen {
        runes = runes[:dedupeKeyLen]
    }
    return string(runes)
}

func normalize(raw rawQuote, page int) Quote {
    q := Quote{
        ID:      raw.ID,
        Text:    raw.Text,
        Page:    page,
        Context: raw.Context,
    }
    if q.ID == "" {
        q.ID = "q-" + uuid.NewString()
    }
    if raw.Element != "" {
        q.Element = &raw.Element
    }
    if raw.Meaning != "" {
        q.Meaning = &raw.Meaning
    }
    return q
}

// coercePage accepts a number, numeric string or json.Number; anything else
// collapses to 0, which sorts first.
func coercePage(v any) int {
    switch t := v.(type) {
    case float64:
        return int(t)
    case int:
        return t
    case json.Number:
        if n, err := t.Int64(); err == nil {
            return int(n)
        }
    case string:
        if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
            return n
        }
    }
    return 0
}
