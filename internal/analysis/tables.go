package analysis

import "regexp"

// The tables in this file are policy, not logic: hand-tuned Bosnian keyword
// and pattern lists carried over literally. Order is significant everywhere;
// classification takes the first matching entry.

type taskRule struct {
    Type     TaskType
    Patterns []*regexp.Regexp
}

var taskRules = []taskRule{
    {TaskCharacterization, compileAll(
        `karakterizacij`,
        `osobine?\s+lika`,
        `kako\s+je\s+opisan`,
        `kakav\s+je\s+lik`,
        `opis\s+lika`,
        `portret\s+lika`,
        `analiza\s+lika`,
    )},
    {TaskContrast, compileAll(
        `kontrast`,
        `opreka`,
        `opreke`,
        `suprotnost`,
        `razlik[ae]`,
        `poredjenje`,
        `poređenje`,
        `kontrasti`,
        `nabroj\s+kontraste`,
        `daj\s+mi\s+kontraste`,
        `između.*i`,
        `vs\.`,
        `naspram`,
    )},
    {TaskTheme, compileAll(
        `\btema\b`,
        `teme\b`,
        `tematik`,
        `o\s+čemu\s+govori`,
        `glavna\s+tema`,
        `centralna\s+tema`,
        `tematska\s+analiza`,
    )},
    {TaskIdea, compileAll(
        `\bideja\b`,
        `ideje\b`,
        `poruka`,
        `misao`,
        `filozofija`,
        `što\s+autor\s+želi`,
        `šta\s+autor\s+želi`,
        `smisao`,
        `značenje`,
    )},
    {TaskSymbolism, compileAll(
        `simbol`,
        `simbolik`,
        `simbolizuje`,
        `simbolizira`,
        `predstavlja`,
        `metafor`,
        `alegorij`,
    )},
    {TaskMotif, compileAll(
        `motiv`,
        `ponavlj`,
        `recurring`,
        `često\s+se\s+pojavljuje`,
        `često\s+spominje`,
    )},
    {TaskRelation, compileAll(
        `odnos`,
        `veza`,
        `relacij`,
        `kako\s+se\s+odnos`,
        `međusobni`,
        `povezanost`,
    )},
    {TaskEvents, compileAll(
        `važn[ie]\s+događaj`,
        `vazn[ie]\s+dogadjaj`,
        `ključn[ie]\s+događaj`,
        `radnja`,
        `fabula`,
        `zaplet`,
        `što\s+se\s+dešava`,
        `šta\s+se\s+dešava`,
        `sažetak`,
    )},
    {TaskCount, compileAll(
        `koliko\s+puta`,
        `broj\s+ponavljanja`,
        `učestalost`,
        `koliko\s+se\s+spominje`,
    )},
    {TaskQuotes, compileAll(
        `citat`,
        `navod`,
        `izvadak`,
        `pasaž`,
        `rečenic`,
        `dio\s+teksta`,
    )},
}

func patternsFor(t TaskType) []*regexp.Regexp {
    for _, r := range taskRules {
        if r.Type == t {
            return r.Patterns
        }
    }
    return nil
}

type categoryKeywords struct {
    Category MicroCategory
    Keywords []string
}

// microKeywords lists literal substrings per micro-detail category. Many
// entries appear twice, with and without diacritics, since user questions
// arrive both ways.
var microKeywords = []categoryKeywords{
    {CategoryLocation, []string{
        "lokacija", "mjesto", "prostor", "u kojem", "gdje",
        "ulica", "kuća", "soba", "grad", "zgrada", "prostorija",
    }},
    {CategoryObject, []string{
        "predmet", "šta drži", "sta drzi", "šta nosi", "sta nosi",
        "šta koristi", "sta koristi", "koji predmeti", "stvar", "objekt",
    }},
    {CategoryClothing, []string{
        "odjeća", "odjeca", "odijelo", "haljina", "šešir", "sesir",
        "obučen", "obucen", "odjeven", "oblači", "oblaci", "nosi",
        "boje", "koje boje", "kako je obučen", "kako je obucen",
    }},
    {CategoryFood, []string{
        "hrana", "jelo", "piće", "pice", "jede", "pije",
        "ručak", "rucak", "večera", "vecera", "doručak", "dorucak",
    }},
    {CategoryAppearance, []string{
        "izgled", "kako izgleda", "opis", "opisana", "opisan",
        "fizički", "fizicki", "vanjski", "lice", "kosa",
    }},
    {CategoryMention, []string{
        "spominje", "prvi put", "pojavljuje se", "navodi se",
        "kada se spominje", "gdje se spominje", "koliko puta",
    }},
    {CategoryAction, []string{
        "redoslijed", "redosled", "šta se dešava", "sta se desava",
        "koji događaji", "koji dogadjaji", "radnja", "što radi", "sta radi",
    }},
    {CategoryDialogue, []string{
        "koje riječi", "koje rijeci", "šta kaže", "sta kaze",
        "dijalog", "razgovor", "govori", "izjava",
    }},
    {CategoryTime, []string{
        "kada", "u kojem trenutku", "vrijeme", "vreme", "period",
        "dan", "noć", "noc", "jutro", "godina",
    }},
    {CategoryAge, []string{
        "starost", "koliko godina", "star", "mlad", "godište", "godine", "uzrast",
    }},
    {CategoryPrice, []string{
        "cijena", "cena", "koliko košta", "koliko kosta", "vrijednost", "vrednost",
    }},
    {CategoryQuantity, []string{
        "koliko", "količina", "kolicina", "broj", "mjera", "mera",
    }},
}

// microPatterns catch micro-detail phrasings the keyword lists miss.
var microPatterns = compileAll(
    `u kojem (dijelu|poglavlju|činu|cinu)`,
    `koje? (boje?|predmet|lokacij|odijelo|haljin)`,
    `šta (drži|drzi|nosi|jede|pije|kaže|kaze|radi)`,
    `sta (drzi|nosi|jede|pije|kaze|radi)`,
    `kako (je|izgleda|je obučen|je obucen)`,
    `koji (predmeti|likovi|događaji|dogadjaji)`,
    `koliko (košta|kosta|godina|ima)`,
    `gdje (se nalazi|živi|zivi)`,
    `kada (se dešava|se desava|je rođen|je rodjen)`,
)

// categoryFallbacks run after the keyword table when picking a category for
// an already-classified micro-detail question. Fixed order.
var categoryFallbacks = []struct {
    Category MicroCategory
    Pattern  *regexp.Regexp
}{
    {CategoryObject, regexp.MustCompile(`(?i)(?:što|šta|sta).*(?:kupi|nosi|drži|drzi|koristi)`)},
    {CategoryClothing, regexp.MustCompile(`(?i)kako.*(?:obučen|obucen|odjeven|izgleda)`)},
    {CategoryLocation, regexp.MustCompile(`(?i)(?:gdje|gde).*(?:se nalazi|živi|zivi|ide)`)},
    {CategoryAge, regexp.MustCompile(`(?i)koliko.*(?:star|godina|uzrast)`)},
}

// stopWords are short Bosnian function words dropped by keyword extraction.
var stopWords = map[string]struct{}{}

func init() {
    for _, w := range []string{
        "u", "i", "a", "ali", "ako", "je", "su", "sa", "se", "o", "na", "za",
        "od", "do", "po", "iz", "koji", "koja", "koje", "kakav", "kakva",
        "kakvo", "kad", "kada", "gdje", "kako", "šta", "sta", "što", "sto",
        "da", "li", "taj", "ta", "to", "ovaj", "ova", "ovo", "neki",
        "sve", "svi", "bilo", "biti", "ima", "imaju", "može", "moze",
        "više", "vise", "manje", "samo", "već", "vec", "još", "jos", "čak", "cak",
    } {
        stopWords[w] = struct{}{}
    }
}

var characterNameRE = regexp.MustCompile(`(?i)karakterizacija\s+(?:lika\s+)?(.+?)(?:\?|$)`)

func compileAll(patterns ...string) []*regexp.Regexp {
    out := make([]*regexp.Regexp, 0, len(patterns))
    for _, p := range patterns {
        out = append(out, regexp.MustCompile(`(?i)`+p))
    }
    return out
}
