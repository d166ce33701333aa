package pipeline

import (
    "fmt"

    "github.com/local/quotequest/internal/analysis"
)

// maxFollowUps caps suggestions shown under an answer.
const maxFollowUps = 3

var followUpsByTask = map[analysis.TaskType][]string{
    analysis.TaskContrast: {
        "Kako se ovaj kontrast razvija kroz djelo?",
        "Koji drugi kontrasti su prisutni u djelu?",
        "Kako kontrasti doprinose centralnoj temi?",
    },
    analysis.TaskTheme: {
        "Kako se ova tema razvija kroz priču?",
        "Koja scena najjasnije prikazuje ovu temu?",
        "Kako tema komunicira s razvojem likova?",
    },
    analysis.TaskThemeIdea: {
        "Kako se ova tema razvija kroz priču?",
        "Koja scena najjasnije prikazuje ovu temu?",
        "Kako tema komunicira s razvojem likova?",
    },
    analysis.TaskIdea: {
        "Kako autor razvija ovu ideju kroz djelo?",
        "Koji likovi najbolje predstavljaju ovu ideju?",
        "Kako se ideja povezuje s društvenim kontekstom?",
    },
    analysis.TaskMotif: {
        "Kako se ovaj motiv mijenja kroz djelo?",
        "U kojim scenama se motiv najčešće javlja?",
        "Kako motiv podupire centralnu temu?",
    },
    analysis.TaskEvents: {
        "Koji događaj predstavlja prekretnicu u priči?",
        "Kako rani događaji najavljuju završetak?",
        "Koja odluka ima najveće posljedice?",
    },
}

var followUpsByCategory = map[analysis.MicroCategory][]string{
    analysis.CategoryLocation: {
        "Koje još lokacije se spominju u djelu?",
        "Kako se opis prostora mijenja kroz priču?",
        "Koja lokacija je najvažnija za radnju?",
    },
    analysis.CategoryClothing: {
        "Kako odjeća odražava karakter lika?",
        "Kako se stil oblačenja mijenja kroz priču?",
        "Šta simbolizira ovaj dio garderobe?",
    },
    analysis.CategoryMention: {
        "Kako se učestalost spominjanja mijenja kroz djelo?",
        "U kojim kontekstima se najčešće spominje?",
        "Koja spominjanja su najznačajnija?",
    },
}

var microDetailGeneric = []string{
    "Kako ovaj detalj doprinosi karakterizaciji?",
    "Kako se ovaj element mijenja kroz priču?",
    "Koja još slična mjesta postoje u djelu?",
}

var genericFollowUps = []string{
    "Koji citat najbolje predstavlja djelo?",
    "Kako se filozofske ideje izražavaju kroz dijaloge?",
    "Koja scena najjasnije prikazuje sukob?",
}

// followUpQuestions builds exactly up to three suggested next questions from
// the task type (and category for micro-detail). Unknown combinations fall
// back to the generic quotes-style set, so the list is never empty.
func followUpQuestions(task analysis.TaskType, category analysis.MicroCategory, characterName string) []string {
    var qs []string
    switch task {
    case analysis.TaskMicroDetail:
        if set, ok := followUpsByCategory[category]; ok {
            qs = set
        } else {
            qs = microDetailGeneric
        }
    case analysis.TaskCharacterization:
        name := characterName
        if name == "" {
            name = "lika"
        }
        qs = []string{
            fmt.Sprintf("Kako se %s mijenja kroz priču?", name),
            fmt.Sprintf("Koje odluke %s najviše utiču na zaplet?", name),
            fmt.Sprintf("Kako drugi likovi reaguju na %s?", name),
        }
    default:
        if set, ok := followUpsByTask[task]; ok {
            qs = set
        } else {
            qs = genericFollowUps
        }
    }

    if len(qs) > maxFollowUps {
        qs = qs[:maxFollowUps]
    }
    return append([]string(nil), qs...)
}
