package pipeline

import "github.com/local/quotequest/internal/analysis"

// Quote is one extracted item as returned to the client. Optional fields are
// pointers so absent model output serializes as null, never as "".
type Quote struct {
    ID      string  `json:"id"`
    Element *string `json:"element"`
    Text    string  `json:"text"`
    Meaning *string `json:"meaning"`
    Page    int     `json:"page"`
    Context string  `json:"context"`
}

// Response is the unified answer for one question.
type Response struct {
    Type     analysis.TaskType   `json:"type"`
    Quotes   []Quote             `json:"quotes"`
    FollowUp []string            `json:"followUp"`
    Meta     *analysis.CountMeta `json:"meta,omitempty"`
}

// rawQuote tolerates the model's loose output shape: page may arrive as a
// number, a numeric string, or be missing entirely.
type rawQuote struct {
    ID      string `json:"id"`
    Element string `json:"element"`
    Text    string `json:"text"`
    Meaning string `json:"meaning"`
    Page    any    `json:"page"`
    Context string `json:"context"`
}

type modelEnvelope struct {
    Type   string     `json:"type"`
    Quotes []rawQuote `json:"quotes"`
}
