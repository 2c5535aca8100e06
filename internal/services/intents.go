package services

import "github.com/soaringjerry/Oasis/internal/models"

// IntentKind names a user action accepted by the session controller.
type IntentKind string

const (
	IntentStart              IntentKind = "start"
	IntentCancel             IntentKind = "cancel"
	IntentRegister           IntentKind = "register"
	IntentSearch             IntentKind = "search"
	IntentSwitchPerson       IntentKind = "switch-person"
	IntentStartAssessment    IntentKind = "start-assessment"
	IntentAnswer             IntentKind = "answer"
	IntentStartPainMap       IntentKind = "start-pain-map"
	IntentSetPainLevel       IntentKind = "set-pain-level"
	IntentSetPainNotes       IntentKind = "set-pain-notes"
	IntentClearPainMap       IntentKind = "clear-pain-map"
	IntentSavePainMap        IntentKind = "save-pain-map"
	IntentCancelPainMap      IntentKind = "cancel-pain-map"
	IntentOpenHistory        IntentKind = "open-history"
	IntentSelectSymptomEntry IntentKind = "select-symptom-entry"
	IntentSelectPainEntry    IntentKind = "select-pain-entry"
	IntentViewLastSymptom    IntentKind = "view-last-symptom"
	IntentViewLastPain       IntentKind = "view-last-pain"
	IntentBackToMenu         IntentKind = "back-to-menu"

	// fired by the controller itself after the last answer
	intentCompleteAssessment IntentKind = "complete-assessment"
)

// Intent is one user action. The set is closed; use the types below.
type Intent interface {
	Kind() IntentKind
	isIntent()
}

type (
	Start           struct{}
	Cancel          struct{}
	Register        struct{ Profile models.Identity }
	Search          struct{ Email string }
	SwitchPerson    struct{}
	StartAssessment struct{}
	Answer          struct{ Value models.AnswerValue }
	StartPainMap    struct{}
	SetPainLevel    struct {
		PartID string
		Level  int
	}
	SetPainNotes struct {
		PartID string
		Notes  string
	}
	ClearPainMap       struct{}
	SavePainMap        struct{}
	CancelPainMap      struct{}
	OpenHistory        struct{}
	SelectSymptomEntry struct{ Index int }
	SelectPainEntry    struct{ Index int }
	ViewLastSymptom    struct{}
	ViewLastPain       struct{}
	BackToMenu         struct{}

	completeAssessment struct{}
)

func (Start) Kind() IntentKind              { return IntentStart }
func (Cancel) Kind() IntentKind             { return IntentCancel }
func (Register) Kind() IntentKind           { return IntentRegister }
func (Search) Kind() IntentKind             { return IntentSearch }
func (SwitchPerson) Kind() IntentKind       { return IntentSwitchPerson }
func (StartAssessment) Kind() IntentKind    { return IntentStartAssessment }
func (Answer) Kind() IntentKind             { return IntentAnswer }
func (StartPainMap) Kind() IntentKind       { return IntentStartPainMap }
func (SetPainLevel) Kind() IntentKind       { return IntentSetPainLevel }
func (SetPainNotes) Kind() IntentKind       { return IntentSetPainNotes }
func (ClearPainMap) Kind() IntentKind       { return IntentClearPainMap }
func (SavePainMap) Kind() IntentKind        { return IntentSavePainMap }
func (CancelPainMap) Kind() IntentKind      { return IntentCancelPainMap }
func (OpenHistory) Kind() IntentKind        { return IntentOpenHistory }
func (SelectSymptomEntry) Kind() IntentKind { return IntentSelectSymptomEntry }
func (SelectPainEntry) Kind() IntentKind    { return IntentSelectPainEntry }
func (ViewLastSymptom) Kind() IntentKind    { return IntentViewLastSymptom }
func (ViewLastPain) Kind() IntentKind       { return IntentViewLastPain }
func (BackToMenu) Kind() IntentKind         { return IntentBackToMenu }
func (completeAssessment) Kind() IntentKind { return intentCompleteAssessment }

func (Start) isIntent()              {}
func (Cancel) isIntent()             {}
func (Register) isIntent()           {}
func (Search) isIntent()             {}
func (SwitchPerson) isIntent()       {}
func (StartAssessment) isIntent()    {}
func (Answer) isIntent()             {}
func (StartPainMap) isIntent()       {}
func (SetPainLevel) isIntent()       {}
func (SetPainNotes) isIntent()       {}
func (ClearPainMap) isIntent()       {}
func (SavePainMap) isIntent()        {}
func (CancelPainMap) isIntent()      {}
func (OpenHistory) isIntent()        {}
func (SelectSymptomEntry) isIntent() {}
func (SelectPainEntry) isIntent()    {}
func (ViewLastSymptom) isIntent()    {}
func (ViewLastPain) isIntent()       {}
func (BackToMenu) isIntent()         {}
func (completeAssessment) isIntent() {}
