package analysis

import (
    "regexp"
    "strings"
)

// DetectTaskType classifies a question into exactly one TaskType. It walks
// the ordered rule table and returns the first type with any matching
// pattern; a theme match that also matches an idea pattern is promoted to
// theme-idea. Before falling back to quotes, the micro-detail heuristic gets
// a chance. Classification is total: it always returns a type.
func DetectTaskType(question string) TaskType {
    q := strings.ToLower(question)

    for _, rule := range taskRules {
        if !anyMatch(rule.Patterns, q) {
            continue
        }
        if rule.Type == TaskTheme && anyMatch(patternsFor(TaskIdea), q) {
            return TaskThemeIdea
        }
        return rule.Type
    }

    if isMicroDetailQuestion(q) {
        return TaskMicroDetail
    }

    return TaskQuotes
}

func isMicroDetailQuestion(q string) bool {
    for _, ck := range microKeywords {
        for _, kw := range ck.Keywords {
            if strings.Contains(q, kw) {
                return true
            }
        }
    }
    return anyMatch(microPatterns, q)
}

// DetectMicroCategory picks the category for a question already classified
// as micro-detail: first keyword-table entry with a substring match wins,
// then the regex fallbacks in fixed order, then general.
func DetectMicroCategory(question string) MicroCategory {
    q := strings.ToLower(strings.TrimSpace(question))

    for _, ck := range microKeywords {
        for _, kw := range ck.Keywords {
            if strings.Contains(q, kw) {
                return ck.Category
            }
        }
    }

    for _, fb := range categoryFallbacks {
        if fb.Pattern.MatchString(q) {
            return fb.Category
        }
    }

    return CategoryGeneral
}

// ExtractCharacterName pulls the analyzed character out of a
// characterization question ("karakterizacija lika Nora" → "Nora").
// Returns "" when the question has no marker phrase; the request then runs
// without a character constraint.
func ExtractCharacterName(question string) string {
    m := characterNameRE.FindStringSubmatch(strings.TrimSpace(question))
    if m == nil {
        return ""
    }
    for _, seg := range strings.FieldsFunc(m[1], func(r rune) bool { return r == ',' || r == '.' }) {
        if s := strings.TrimSpace(seg); s != "" {
            return s
        }
    }
    return ""
}

// ExtractKeywords lowercases the question, strips punctuation, and drops
// stop words and tokens of length <= 2. An empty result is legal: the
// question had no distinguishing tokens.
func ExtractKeywords(question string) []string {
    q := strings.ToLower(strings.TrimSpace(question))
    q = strings.Map(func(r rune) rune {
        switch r {
        case '?', '!', '.', ',', ';', ':', '(', ')':
            return -1
        }
        return r
    }, q)

    var out []string
    for _, w := range strings.Fields(q) {
        if len([]rune(w)) <= 2 {
            continue
        }
        if _, stop := stopWords[w]; stop {
            continue
        }
        out = append(out, w)
    }
    return out
}

func anyMatch(patterns []*regexp.Regexp, s string) bool {
    for _, p := range patterns {
        if p.MatchString(s) {
            return true
        }
    }
    return false
}
