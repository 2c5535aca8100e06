package services

import (
	"time"

	"github.com/soaringjerry/Oasis/internal/models"
)

// View is a read-only snapshot of the controller for rendering. Exactly one
// of the screen payloads is set, matching State. A state that needs an
// identity but has none is reported with Renderable false and no payload.
type View struct {
	State      State            `json:"state"`
	Renderable bool             `json:"renderable"`
	Identity   *models.Identity `json:"identity,omitempty"`
	Age        int              `json:"age,omitempty"`
	NotFound   bool             `json:"notFound,omitempty"`

	Menu        *MenuView        `json:"menu,omitempty"`
	Assessment  *AssessmentView  `json:"assessment,omitempty"`
	Results     *ResultsView     `json:"results,omitempty"`
	PainMapping *PainMappingView `json:"painMapping,omitempty"`
	PainResults *PainResultsView `json:"painResults,omitempty"`
	History     *HistoryView     `json:"history,omitempty"`
}

type MenuView struct {
	HasSymptomHistory bool `json:"hasSymptomHistory"`
	HasPainHistory    bool `json:"hasPainHistory"`
}

// Progress is the position in the assessment. Current is 1-based.
type Progress struct {
	Current int `json:"current"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

type AssessmentView struct {
	Question models.Question         `json:"question"`
	Progress Progress                `json:"progress"`
	Options  []models.AnswerValue    `json:"options"`
	Answers  []models.RecordedAnswer `json:"answers"`
}

type ResultsView struct {
	EntryIndex   int                     `json:"entryIndex"`
	EntryID      string                  `json:"entryId,omitempty"`
	Date         time.Time               `json:"date"`
	Total        TotalScore              `json:"total"`
	Categories   []CategorySummary       `json:"categories"`
	Answers      []models.RecordedAnswer `json:"answers"`
	Evolution    []TrendPoint            `json:"evolution"`
	HistoryCount int                     `json:"historyCount"`
}

type PainMappingView struct {
	PainMap models.PainMap `json:"painMap"`
	Total   int            `json:"total"`
}

type PainResultsView struct {
	EntryIndex   int              `json:"entryIndex"`
	EntryID      string           `json:"entryId,omitempty"`
	Date         time.Time        `json:"date"`
	PainMap      models.PainMap   `json:"painMap"`
	Total        int              `json:"total"`
	Previous     models.PainMap   `json:"previous,omitempty"`
	Comparisons  []PainComparison `json:"comparisons"`
	Evolution    []TrendPoint     `json:"evolution"`
	HistoryCount int              `json:"historyCount"`
}

type HistoryView struct {
	Symptom []models.SymptomHistoryEntry `json:"symptom"`
	Pain    []models.PainHistoryEntry    `json:"pain"`
}

// View snapshots the current screen.
func (c *Controller) View() View {
	v := View{State: c.state, NotFound: c.notFound}
	if c.identity != nil {
		id := *c.identity
		v.Identity = &id
		if age := id.Age(c.now()); age >= 0 {
			v.Age = age
		}
	}
	if c.state.RequiresIdentity() && c.identity == nil {
		return v
	}
	v.Renderable = true
	switch c.state {
	case StateMenu:
		v.Menu = &MenuView{HasSymptomHistory: len(c.symptomHistory) > 0, HasPainHistory: len(c.painHistory) > 0}
	case StateAssessment:
		v.Assessment = c.assessmentView()
	case StateResults:
		v.Results = c.resultsView()
	case StatePainMapping:
		m := models.PainMap{}
		if c.painDraft != nil {
			m = c.painDraft.Map()
		}
		v.PainMapping = &PainMappingView{PainMap: m, Total: PainTotal(m)}
	case StatePainResults:
		v.PainResults = c.painResultsView()
	case StateHistory:
		v.History = &HistoryView{Symptom: c.SymptomHistory(), Pain: c.PainHistory()}
	}
	return v
}

func (c *Controller) assessmentView() *AssessmentView {
	total := len(c.questions)
	i := len(c.answers)
	if i >= total {
		i = total - 1
	}
	return &AssessmentView{
		Question: c.questions[i],
		Progress: Progress{Current: i + 1, Total: total, Percent: Percentage(i, total)},
		Options:  models.AnswerOptions(),
		Answers:  c.AnswerSet(),
	}
}

// resultsView shows the stored totals of the selected entry; only the
// category breakdown is derived from its answers.
func (c *Controller) resultsView() *ResultsView {
	if c.symptomView < 0 || c.symptomView >= len(c.symptomHistory) {
		return nil
	}
	e := c.symptomHistory[c.symptomView]
	card := c.scorer.Score(e.Answers)
	return &ResultsView{
		EntryIndex: c.symptomView,
		EntryID:    e.ID,
		Date:       e.Date,
		Total: TotalScore{
			Score:      e.TotalScore,
			Max:        e.MaxScore,
			Percentage: e.Percentage,
			Severity:   SeverityFor(float64(e.Percentage)),
		},
		Categories:   card.Categories(),
		Answers:      append([]models.RecordedAnswer(nil), e.Answers...),
		Evolution:    SymptomTrend(c.symptomHistory),
		HistoryCount: len(c.symptomHistory),
	}
}

func (c *Controller) painResultsView() *PainResultsView {
	if c.painView < 0 || c.painView >= len(c.painHistory) {
		return nil
	}
	e := c.painHistory[c.painView]
	prev, _ := PreviousPainMap(c.painHistory, c.painView)
	var cmp []PainComparison
	for _, part := range models.BodyParts() {
		_, inCur := e.PainMap[part.ID]
		_, inPrev := prev[part.ID]
		if inCur || inPrev {
			cmp = append(cmp, ComparePart(e.PainMap, prev, part.ID))
		}
	}
	return &PainResultsView{
		EntryIndex:   c.painView,
		EntryID:      e.ID,
		Date:         e.Date,
		PainMap:      e.PainMap.Clone(),
		Total:        e.TotalScore,
		Previous:     prev,
		Comparisons:  cmp,
		Evolution:    PainTrend(c.painHistory, e.PainMap, c.now()),
		HistoryCount: len(c.painHistory),
	}
}
