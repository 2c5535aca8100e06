package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/soaringjerry/Oasis/internal/models"
	"github.com/soaringjerry/Oasis/internal/utils"
)

// State is a screen of the session flow.
type State string

const (
	StateIntro       State = "intro"
	StateIdentify    State = "identify"
	StateMenu        State = "menu"
	StateAssessment  State = "assessment"
	StateResults     State = "results"
	StatePainMapping State = "pain-mapping"
	StatePainResults State = "pain-results"
	StateHistory     State = "history"
)

// States lists every state in flow order.
func States() []State {
	return []State{StateIntro, StateIdentify, StateMenu, StateAssessment, StateResults, StatePainMapping, StatePainResults, StateHistory}
}

// RequiresIdentity reports whether s can only render with an active identity.
func (s State) RequiresIdentity() bool {
	return s != StateIntro && s != StateIdentify
}

// transitions is the complete flow. Pairs missing here are rejected.
var transitions = map[State]map[IntentKind]State{
	StateIntro: {
		IntentStart: StateIdentify,
	},
	StateIdentify: {
		IntentRegister: StateMenu,
		IntentSearch:   StateMenu,
		IntentCancel:   StateIntro,
	},
	StateMenu: {
		IntentStartAssessment: StateAssessment,
		IntentStartPainMap:    StatePainMapping,
		IntentOpenHistory:     StateHistory,
		IntentViewLastSymptom: StateResults,
		IntentViewLastPain:    StatePainResults,
		IntentSwitchPerson:    StateIdentify,
	},
	StateAssessment: {
		IntentAnswer:             StateAssessment,
		IntentBackToMenu:         StateMenu,
		intentCompleteAssessment: StateResults,
	},
	StateResults: {
		IntentStartPainMap: StatePainMapping,
		IntentOpenHistory:  StateHistory,
		IntentBackToMenu:   StateMenu,
	},
	StatePainMapping: {
		IntentSetPainLevel:  StatePainMapping,
		IntentSetPainNotes:  StatePainMapping,
		IntentClearPainMap:  StatePainMapping,
		IntentSavePainMap:   StatePainResults,
		IntentCancelPainMap: StateMenu,
	},
	StatePainResults: {
		IntentOpenHistory: StateHistory,
		IntentBackToMenu:  StateMenu,
	},
	StateHistory: {
		IntentSelectSymptomEntry: StateResults,
		IntentSelectPainEntry:    StatePainResults,
		IntentBackToMenu:         StateMenu,
	},
}

// Allowed reports whether kind is accepted in state from, and where it leads.
func Allowed(from State, kind IntentKind) (State, bool) {
	to, ok := transitions[from][kind]
	return to, ok
}

// Transition is the outcome of one Dispatch. A rejected intent leaves the
// controller untouched and reports To == From.
type Transition struct {
	From   State
	To     State
	Intent IntentKind
	Err    error
}

func (t Transition) Ok() bool { return t.Err == nil }

// Controller drives one person's pass through the flow. It is not safe for
// concurrent use; hosts serialize calls per session.
type Controller struct {
	history   *HistoryService
	scorer    *Scorer
	questions []models.Question
	now       func() time.Time

	state    State
	identity *models.Identity
	notFound bool

	symptomHistory []models.SymptomHistoryEntry
	painHistory    []models.PainHistoryEntry

	answers     []models.RecordedAnswer
	painDraft   *PainDraft
	symptomView int
	painView    int

	lastSaveErr error
}

// NewController starts a session in the intro state. A nil question list
// selects the built-in bank.
func NewController(history *HistoryService, questions []models.Question) *Controller {
	if questions == nil {
		questions = models.Questions()
	}
	return &Controller{
		history:   history,
		scorer:    NewScorer(questions),
		questions: questions,
		now:       func() time.Time { return time.Now().UTC() },
		state:     StateIntro,
	}
}

func (c *Controller) State() State { return c.state }

// Identity returns a copy of the active identity.
func (c *Controller) Identity() (models.Identity, bool) {
	if c.identity == nil {
		return models.Identity{}, false
	}
	return *c.identity, true
}

// AnswerSet returns the answers given so far in the open assessment.
func (c *Controller) AnswerSet() []models.RecordedAnswer {
	return append([]models.RecordedAnswer(nil), c.answers...)
}

func (c *Controller) SymptomHistory() []models.SymptomHistoryEntry {
	return append([]models.SymptomHistoryEntry(nil), c.symptomHistory...)
}

func (c *Controller) PainHistory() []models.PainHistoryEntry {
	return append([]models.PainHistoryEntry(nil), c.painHistory...)
}

// LastSaveError is the error of the most recent failed history save, if any.
func (c *Controller) LastSaveError() error { return c.lastSaveErr }

// Dispatch applies in. Guards run before any mutation, so a rejected intent
// changes nothing.
func (c *Controller) Dispatch(in Intent) Transition {
	if in == nil {
		return Transition{From: c.state, To: c.state, Err: NewInvalidTransitionError("nil intent")}
	}
	c.notFound = false
	t := c.step(in)
	if t.Ok() && c.state == StateAssessment && len(c.questions) > 0 && len(c.answers) == len(c.questions) {
		done := c.step(completeAssessment{})
		t.To = done.To
		t.Err = done.Err
	}
	return t
}

func (c *Controller) step(in Intent) Transition {
	from := c.state
	t := Transition{From: from, To: from, Intent: in.Kind()}
	to, ok := Allowed(from, in.Kind())
	if !ok {
		t.Err = NewInvalidTransitionError(fmt.Sprintf("%s is not allowed in %s", in.Kind(), from))
		return t
	}
	if to.RequiresIdentity() && c.identity == nil && in.Kind() != IntentRegister && in.Kind() != IntentSearch {
		t.Err = NewInvalidTransitionError(fmt.Sprintf("%s requires an active identity", to))
		return t
	}
	if err := c.apply(in); err != nil {
		t.Err = err
		return t
	}
	c.state = to
	t.To = to
	return t
}

// apply validates in against the current data and then mutates.
func (c *Controller) apply(in Intent) error {
	switch v := in.(type) {
	case Register:
		return c.register(v.Profile)
	case Search:
		return c.search(v.Email)
	case SwitchPerson:
		c.reset()
	case StartAssessment:
		if len(c.questions) == 0 {
			return NewInvalidError("question bank is empty")
		}
		c.answers = nil
	case Answer:
		if !v.Value.Valid() {
			return NewInvalidError(fmt.Sprintf("unknown answer value %q", v.Value))
		}
		q := c.questions[len(c.answers)]
		c.answers = append(c.answers, RecordAnswer(q, v.Value))
	case completeAssessment:
		c.completeAssessment()
	case StartPainMap:
		c.painDraft = NewPainDraft()
	case SetPainLevel:
		return c.painDraft.SetLevel(v.PartID, v.Level)
	case SetPainNotes:
		return c.painDraft.SetNotes(v.PartID, v.Notes)
	case ClearPainMap:
		c.painDraft.Clear()
	case SavePainMap:
		c.savePainMap()
	case CancelPainMap:
		c.painDraft = nil
	case SelectSymptomEntry:
		if v.Index < 0 || v.Index >= len(c.symptomHistory) {
			return NewNotFoundError(fmt.Sprintf("no symptom entry at index %d", v.Index))
		}
		c.symptomView = v.Index
	case SelectPainEntry:
		if v.Index < 0 || v.Index >= len(c.painHistory) {
			return NewNotFoundError(fmt.Sprintf("no pain entry at index %d", v.Index))
		}
		c.painView = v.Index
	case ViewLastSymptom:
		if len(c.symptomHistory) == 0 {
			return NewNotFoundError("no symptom history yet")
		}
		c.symptomView = len(c.symptomHistory) - 1
	case ViewLastPain:
		if len(c.painHistory) == 0 {
			return NewNotFoundError("no pain history yet")
		}
		c.painView = len(c.painHistory) - 1
	}
	return nil
}

// ValidateProfile checks a registration form and returns it with the email normalized.
func ValidateProfile(p models.Identity) (models.Identity, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = utils.NormalizeEmail(p.Email)
	p.BirthDate = strings.TrimSpace(p.BirthDate)
	var missing []string
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if p.Email == "" {
		missing = append(missing, "email")
	}
	if p.BirthDate == "" {
		missing = append(missing, "birthDate")
	}
	if p.Gender == "" {
		missing = append(missing, "gender")
	}
	if len(missing) > 0 {
		return p, NewInvalidError("missing fields: " + strings.Join(missing, ", "))
	}
	if _, err := time.Parse(models.BirthDateLayout, p.BirthDate); err != nil {
		return p, NewInvalidError(fmt.Sprintf("birthDate %q is not YYYY-MM-DD", p.BirthDate))
	}
	if !p.Gender.Valid() {
		return p, NewInvalidError(fmt.Sprintf("unknown gender %q", p.Gender))
	}
	return p, nil
}

// register activates p and attaches any history already stored for its email.
// The profile itself is only written with the first saved entry.
func (c *Controller) register(p models.Identity) error {
	p, err := ValidateProfile(p)
	if err != nil {
		return err
	}
	var rec models.Record
	if c.history != nil {
		rec, _ = c.history.Load(p.Email)
	}
	c.activate(p, rec)
	return nil
}

func (c *Controller) search(email string) error {
	key := utils.NormalizeEmail(email)
	if key == "" {
		return NewInvalidError("email is required")
	}
	var (
		rec models.Record
		ok  bool
	)
	if c.history != nil {
		rec, ok = c.history.Load(key)
	}
	if !ok {
		c.notFound = true
		return NewNotFoundError(fmt.Sprintf("no record for %s", key))
	}
	c.activate(rec.Identity, rec)
	return nil
}

func (c *Controller) activate(id models.Identity, rec models.Record) {
	c.reset()
	c.identity = &id
	c.symptomHistory = rec.History
	c.painHistory = rec.PainHistory
}

func (c *Controller) reset() {
	c.identity = nil
	c.symptomHistory = nil
	c.painHistory = nil
	c.answers = nil
	c.painDraft = nil
	c.symptomView = 0
	c.painView = 0
}

func (c *Controller) completeAssessment() {
	entry := NewSymptomEntry(c.answers)
	entry.Date = c.now()
	c.lastSaveErr = nil
	if c.history != nil {
		rec, err := c.history.AppendSymptom(*c.identity, entry)
		if err == nil {
			c.symptomHistory = rec.History
			c.painHistory = rec.PainHistory
			c.symptomView = len(c.symptomHistory) - 1
			return
		}
		c.lastSaveErr = err
		log.Printf("session: save symptom entry for %s: %v", c.identity.Email, err)
	}
	c.symptomHistory = append(c.symptomHistory, entry)
	c.symptomView = len(c.symptomHistory) - 1
}

func (c *Controller) savePainMap() {
	entry := NewPainEntry(c.painDraft.Map())
	entry.Date = c.now()
	c.painDraft = nil
	c.lastSaveErr = nil
	if c.history != nil {
		rec, err := c.history.AppendPain(*c.identity, entry)
		if err == nil {
			c.symptomHistory = rec.History
			c.painHistory = rec.PainHistory
			c.painView = len(c.painHistory) - 1
			return
		}
		c.lastSaveErr = err
		log.Printf("session: save pain entry for %s: %v", c.identity.Email, err)
	}
	c.painHistory = append(c.painHistory, entry)
	c.painView = len(c.painHistory) - 1
}
