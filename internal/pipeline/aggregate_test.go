package pipeline

import (
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestAggregateDedupeAndSort(t *testing.T) {
    raw := []rawQuote{
        {ID: "a", Text: "Nora napušta kuću.", Page: float64(12)},
        {ID: "b", Text: "nora napušta kuću.", Page: "12"}, // case-insensitive duplicate
        {ID: "c", Text: "Torvald ostaje sam.", Page: float64(3)},
        {ID: "d", Text: "Nora napušta kuću.", Page: float64(5)}, // same text, other page survives
    }

    quotes := aggregate(raw)
    require.Len(t, quotes, 3)
    assert.Equal(t, 3, quotes[0].Page)
    assert.Equal(t, 5, quotes[1].Page)
    assert.Equal(t, 12, quotes[2].Page)
    assert.Equal(t, "a", quotes[2].ID)
}

func TestAggregateLongTextDedupePrefix(t *testing.T) {
    long := strings.Repeat("a", 100)
    raw := []rawQuote{
        {Text: long + "razlika jedan", Page: float64(1)},
        {Text: long + "razlika dva", Page: float64(1)},
    }
    assert.Len(t, aggregate(raw), 1)
}

func TestNormalize(t *testing.T) {
    q := normalize(rawQuote{Text: "citat", Element: "Osobina: Hrabrost", Meaning: ""}, 4)
    assert.True(t, strings.HasPrefix(q.ID, "q-"))
    require.NotNil(t, q.Element)
    assert.Equal(t, "Osobina: Hrabrost", *q.Element)
    assert.Nil(t, q.Meaning)
    assert.Equal(t, 4, q.Page)
}

func TestCoercePage(t *testing.T) {
    assert.Equal(t, 7, coercePage(float64(7)))
    assert.Equal(t, 7, coercePage(" 7 "))
    assert.Equal(t, 0, coercePage(nil))
    assert.Equal(t, 0, coercePage("sedam"))
}

func TestParseEnvelope(t *testing.T) {
    plain := `{"type":"quotes","quotes":[{"id":"x","text":"citat","page":3}]}`
    got := parseEnvelope(plain)
    require.Len(t, got, 1)
    assert.Equal(t, "citat", got[0].Text)

    fenced := "```json\n" + plain + "\n```"
    assert.Len(t, parseEnvelope(fenced), 1)

    chatter := "Evo rezultata:\n" + plain + "\nNadam se da pomaže."
    assert.Len(t, parseEnvelope(chatter), 1)

    assert.Nil(t, parseEnvelope("nema JSON-a ovdje"))
    assert.Nil(t, parseEnvelope(`{"type":"quotes","quotes":`))
}

func TestParseEnvelopeBracesInsideStrings(t *testing.T) {
    body := `{"type":"quotes","quotes":[{"id":"x","text":"kaže: {tako}","page":1}]}`
    got := parseEnvelope(body)
    require.Len(t, got, 1)
    assert.Equal(t, "kaže: {tako}", got[0].Text)
}
