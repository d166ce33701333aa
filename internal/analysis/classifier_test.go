package analysis

import (
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestDetectTaskType(t *testing.T) {
    cases := []struct {
        question string
        want     TaskType
    }{
        {"Karakterizacija lika Nora", TaskCharacterization},
        {"Kakav je lik Torvald?", TaskCharacterization},
        {"Koji kontrasti postoje u djelu?", TaskContrast},
        {"Koji kontrasti postoje između likova?", TaskContrast},
        {"Nabroj opreke u drami", TaskContrast},
        {"Koja je glavna tema djela?", TaskTheme},
        {"Koja je glavna tema i ideja djela?", TaskThemeIdea},
        {"Koja je poruka djela?", TaskIdea},
        {"Šta simbolizuje novac u djelu?", TaskSymbolism},
        {"Koji motivi se ponavljaju?", TaskMotif},
        {"Kakav je odnos Nore i Krogstada?", TaskRelation},
        {"Koji su ključni događaji u drami?", TaskEvents},
        {"Koliko puta se spominje novac?", TaskCount},
        {"Daj mi najvažnije citate", TaskQuotes},
        {"Koje boje je haljina Nore?", TaskMicroDetail},
        {"Gdje se nalazi Norina kuća?", TaskMicroDetail},
        // nothing matches, default
        {"Izdvoji najbitnije", TaskQuotes},
    }
    for _, tc := range cases {
        assert.Equal(t, tc.want, DetectTaskType(tc.question), "question: %s", tc.question)
    }
}

func TestDetectTaskTypeRelationWithIzmedjuIsContrast(t *testing.T) {
    // "između X i Y" phrasing hits the contrast rule before relation; the
    // rule order is deliberate and this pins it down.
    assert.Equal(t, TaskContrast, DetectTaskType("Kakav je odnos između Nore i Torvalda?"))
}

func TestDetectMicroCategory(t *testing.T) {
    cases := []struct {
        question string
        want     MicroCategory
    }{
        {"Koje boje je haljina Nore?", CategoryClothing},
        {"Gdje se nalazi Norina kuća?", CategoryLocation},
        {"Šta Nora jede za večeru?", CategoryFood},
        {"Kako izgleda Krogstad?", CategoryAppearance},
        {"Koliko godina ima Nora?", CategoryTime}, // "godina" sits in the time list
        {"Koliko košta haljina?", CategoryClothing},
        {"Neodrediva sitnica", CategoryGeneral},
    }
    for _, tc := range cases {
        assert.Equal(t, tc.want, DetectMicroCategory(tc.question), "question: %s", tc.question)
    }
}

func TestExtractCharacterName(t *testing.T) {
    assert.Equal(t, "Nora", ExtractCharacterName("Karakterizacija lika Nora"))
    assert.Equal(t, "Nora Helmer", ExtractCharacterName("karakterizacija Nora Helmer?"))
    assert.Equal(t, "", ExtractCharacterName("Kakav je lik Torvald?"))
}

func TestExtractKeywords(t *testing.T) {
    kws := ExtractKeywords("Koje boje je haljina Nore?")
    assert.Equal(t, []string{"boje", "haljina", "nore"}, kws)

    // stop words and short tokens fall out entirely
    assert.Empty(t, ExtractKeywords("da li je to?"))
}
