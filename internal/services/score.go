package services

import (
	"math"

	"github.com/soaringjerry/Oasis/internal/models"
)

// Severity bands a percentage for display.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
)

// GaugeLevels is the number of segments of a category gauge.
const GaugeLevels = 5

// SeverityFor bands p: low up to 30%, moderate up to 60%, high above.
func SeverityFor(p float64) Severity {
	switch {
	case p > 60:
		return SeverityHigh
	case p > 30:
		return SeverityModerate
	default:
		return SeverityLow
	}
}

// FilledLevels returns how many of GaugeLevels segments p fills, rounding up.
func FilledLevels(p float64) int {
	if p <= 0 {
		return 0
	}
	n := int(math.Ceil(p * GaugeLevels / 100))
	if n > GaugeLevels {
		n = GaugeLevels
	}
	return n
}

// Percentage returns round(100*score/max), 0 when max is 0.
func Percentage(score, max int) int {
	if max <= 0 {
		return 0
	}
	return int(math.Round(float64(score) * 100 / float64(max)))
}

// CategorySummary aggregates the answers of one question category.
type CategorySummary struct {
	Label      string                  `json:"label"`
	Score      int                     `json:"score"`
	MaxScore   int                     `json:"maxScore"`
	Percentage float64                 `json:"percentage"`
	Severity   Severity                `json:"severity"`
	Filled     int                     `json:"filled"`
	Members    []models.RecordedAnswer `json:"members"`
}

// TotalScore is the grand total of an answer set.
type TotalScore struct {
	Score      int      `json:"score"`
	Max        int      `json:"max"`
	Percentage int      `json:"percentage"`
	Severity   Severity `json:"severity"`
}

// Scorecard is the result of scoring an answer set.
type Scorecard struct {
	// Order lists category labels in question-bank order.
	Order       []string                   `json:"order"`
	PerCategory map[string]CategorySummary `json:"perCategory"`
	Total       TotalScore                 `json:"total"`
}

// Categories returns the summaries in Order.
func (s Scorecard) Categories() []CategorySummary {
	out := make([]CategorySummary, 0, len(s.Order))
	for _, label := range s.Order {
		out = append(out, s.PerCategory[label])
	}
	return out
}

// Scorer rolls answers up into categories of a fixed question bank.
type Scorer struct {
	categories []string
	categoryOf map[int]string
}

func NewScorer(questions []models.Question) *Scorer {
	s := &Scorer{categories: models.Categories(questions), categoryOf: make(map[int]string, len(questions))}
	for _, q := range questions {
		s.categoryOf[q.ID] = q.Category
	}
	return s
}

// DefaultScorer scores against the built-in question bank.
func DefaultScorer() *Scorer { return NewScorer(models.Questions()) }

// Score is a pure function of answers. Every category of the bank is present,
// zeroed when unanswered. Answers to unknown question ids count toward the
// total only.
func (s *Scorer) Score(answers []models.RecordedAnswer) Scorecard {
	card := Scorecard{
		Order:       append([]string(nil), s.categories...),
		PerCategory: make(map[string]CategorySummary, len(s.categories)),
	}
	for _, label := range s.categories {
		card.PerCategory[label] = CategorySummary{Label: label, Severity: SeverityLow, Members: []models.RecordedAnswer{}}
	}
	for _, a := range answers {
		card.Total.Score += a.Score
		card.Total.Max += models.MaxAnswerPoints
		label, ok := s.categoryOf[a.QuestionID]
		if !ok {
			continue
		}
		cat := card.PerCategory[label]
		cat.Score += a.Score
		cat.MaxScore += models.MaxAnswerPoints
		cat.Members = append(cat.Members, a)
		card.PerCategory[label] = cat
	}
	for label, cat := range card.PerCategory {
		if cat.MaxScore > 0 {
			cat.Percentage = float64(cat.Score) / float64(cat.MaxScore) * 100
		}
		cat.Severity = SeverityFor(cat.Percentage)
		cat.Filled = FilledLevels(cat.Percentage)
		card.PerCategory[label] = cat
	}
	card.Total.Percentage = Percentage(card.Total.Score, card.Total.Max)
	card.Total.Severity = SeverityFor(float64(card.Total.Percentage))
	return card
}

// RecordAnswer snapshots question q answered with v.
func RecordAnswer(q models.Question, v models.AnswerValue) models.RecordedAnswer {
	return models.RecordedAnswer{QuestionID: q.ID, QuestionText: q.Text, Answer: v, Score: v.Points()}
}

// NewSymptomEntry builds the history entry for a completed answer set.
func NewSymptomEntry(answers []models.RecordedAnswer) models.SymptomHistoryEntry {
	total := 0
	for _, a := range answers {
		total += a.Score
	}
	max := models.MaxAnswerPoints * len(answers)
	return models.SymptomHistoryEntry{
		TotalScore: total,
		MaxScore:   max,
		Percentage: Percentage(total, max),
		Answers:    append([]models.RecordedAnswer(nil), answers...),
	}
}
