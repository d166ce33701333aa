package pipeline

import (
    "encoding/json"
    "strings"
)

// parseEnvelope digs the quotes array out of a completion. Models wrap the
// JSON object in markdown fences or chatter around it often enough that we
// strip fences and take the first balanced {...} span before decoding. Any
// structural failure yields nil; a parse problem is a per-chunk condition,
// never an error for the caller.
func parseEnvelope(completion string) []rawQuote {
    cleaned := strings.TrimSpace(completion)
    cleaned = stripFences(cleaned)
    cleaned = firstJSONObject(cleaned)
    if cleaned == "" {
        return nil
    }

    var env modelEnvelope
    if err := json.Unmarshal([]byte(cleaned), &env); err != nil {
        return nil
    }
    return env.Quotes
}

func stripFences(s string) string {
    if !strings.HasPrefix(s, "```") {
        return s
    }
    s = strings.TrimPrefix(s, "```json")
    s = strings.TrimPrefix(s, "```")
    if i := strings.LastIndex(s, "```"); i >= 0 {
        s = s[:i]
    }
    return strings.TrimSpace(s)
}

// firstJSONObject returns the first balanced top-level {...} span,
// respecting string literals and escapes.
func firstJSONObject(s string) string {
    start := strings.IndexByte(s, '{')
    if start < 0 {
        return ""
    }
    depth := 0
    inString := false
    escaped := false
    for i := start; i < len(s); i++ {
        c := s[i]
        if inString {
            switch {
            case escaped:
                escaped = false
            case c == '\\':
                escaped = true
            case c == '"':
                inString = false
            }
            continue
        }
        switch c {
        case '"':
            inString = true
        case '{':
            depth++
        case '}':
            depth--
            if depth == 0 {
                return s[start : i+1]
            }
        }
    }
    return ""
}
