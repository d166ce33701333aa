package analysis

// TaskType is the classified analytical intent of a question. It drives both
// the chunking strategy and the prompt template.
type TaskType string

const (
    TaskQuotes           TaskType = "quotes"
    TaskCharacterization TaskType = "characterization"
    TaskContrast         TaskType = "contrast"
    TaskTheme            TaskType = "theme"
    TaskIdea             TaskType = "idea"
    TaskThemeIdea        TaskType = "theme-idea"
    TaskSymbolism        TaskType = "symbolism"
    TaskMotif            TaskType = "motif"
    TaskRelation         TaskType = "relation"
    TaskEvents           TaskType = "events"
    TaskCount            TaskType = "count"
    TaskMicroDetail      TaskType = "micro-detail"
)

// MicroCategory narrows a micro-detail question to the kind of fact sought.
type MicroCategory string

const (
    CategoryLocation   MicroCategory = "location"
    CategoryObject     MicroCategory = "object"
    CategoryClothing   MicroCategory = "clothing"
    CategoryFood       MicroCategory = "food"
    CategoryAppearance MicroCategory = "appearance"
    CategoryMention    MicroCategory = "mention"
    CategoryAction     MicroCategory = "action"
    CategoryDialogue   MicroCategory = "dialogue"
    CategoryTime       MicroCategory = "time"
    CategoryAge        MicroCategory = "age"
    CategoryPrice      MicroCategory = "price"
    CategoryQuantity   MicroCategory = "quantity"
    CategoryGeneral    MicroCategory = "general"
)
