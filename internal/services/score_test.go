package services

import (
	"reflect"
	"testing"

	"github.com/soaringjerry/Oasis/internal/models"
)

func answersFor(t *testing.T, ids []int, values []models.AnswerValue) []models.RecordedAnswer {
	t.Helper()
	out := make([]models.RecordedAnswer, 0, len(ids))
	for i, id := range ids {
		q, ok := models.QuestionByID(id)
		if !ok {
			t.Fatalf("question %d missing", id)
		}
		out = append(out, RecordAnswer(q, values[i]))
	}
	return out
}

func TestPercentage(t *testing.T) {
	cases := []struct {
		score, max, want int
	}{
		{0, 0, 0},
		{4, 9, 44},
		{1, 2, 50},
		{2, 3, 67},
		{189, 189, 100},
	}
	for _, c := range cases {
		if got := Percentage(c.score, c.max); got != c.want {
			t.Fatalf("Percentage(%d,%d)=%d, want %d", c.score, c.max, got, c.want)
		}
	}
}

func TestScoreSingleCategory(t *testing.T) {
	// questions 1..3 all belong to "Cabeça"
	answers := answersFor(t, []int{1, 2, 3}, []models.AnswerValue{models.AnswerNot, models.AnswerSometimes, models.AnswerOften})
	card := DefaultScorer().Score(answers)
	want := TotalScore{Score: 4, Max: 9, Percentage: 44, Severity: SeverityModerate}
	if card.Total != want {
		t.Fatalf("total=%+v, want %+v", card.Total, want)
	}
	head := card.PerCategory["Cabeça"]
	if head.Score != 4 || head.MaxScore != 9 || len(head.Members) != 3 {
		t.Fatalf("category=%+v", head)
	}
	if head.Filled != 3 {
		t.Fatalf("filled=%d", head.Filled)
	}
}

func TestScoreEmptyAnswerSet(t *testing.T) {
	card := DefaultScorer().Score(nil)
	if card.Total.Score != 0 || card.Total.Max != 0 || card.Total.Percentage != 0 {
		t.Fatalf("total=%+v", card.Total)
	}
	if len(card.PerCategory) != 14 || len(card.Order) != 14 {
		t.Fatalf("all categories must be present, got %d", len(card.PerCategory))
	}
	for _, c := range card.Categories() {
		if c.Score != 0 || c.Percentage != 0 || c.Members == nil {
			t.Fatalf("category %s not zeroed: %+v", c.Label, c)
		}
	}
}

func TestScoreAllOften(t *testing.T) {
	var answers []models.RecordedAnswer
	for _, q := range models.Questions() {
		answers = append(answers, RecordAnswer(q, models.AnswerOften))
	}
	card := DefaultScorer().Score(answers)
	if card.Total.Score != 189 || card.Total.Max != 189 || card.Total.Percentage != 100 {
		t.Fatalf("total=%+v", card.Total)
	}
	if card.Total.Severity != SeverityHigh {
		t.Fatalf("severity=%s", card.Total.Severity)
	}
	entry := NewSymptomEntry(answers)
	if entry.Percentage != 100 || entry.MaxScore != 189 || entry.TotalScore != 189 {
		t.Fatalf("entry=%+v", entry)
	}
}

func TestScoreSumsMatchTotals(t *testing.T) {
	values := models.AnswerOptions()
	var answers []models.RecordedAnswer
	for i, q := range models.Questions() {
		answers = append(answers, RecordAnswer(q, values[i%len(values)]))
	}
	// unknown question ids still count toward the total
	answers = append(answers, models.RecordedAnswer{QuestionID: 999, Answer: models.AnswerOften, Score: 3})
	card := DefaultScorer().Score(answers)
	sum := 0
	for _, a := range answers {
		sum += a.Score
	}
	if card.Total.Score != sum || card.Total.Max != 3*len(answers) {
		t.Fatalf("total=%+v sum=%d count=%d", card.Total, sum, len(answers))
	}
	catSum := 0
	for _, c := range card.Categories() {
		catSum += c.Score
	}
	if catSum != sum-3 {
		t.Fatalf("category sum=%d, want %d", catSum, sum-3)
	}
}

func TestScoreIsPure(t *testing.T) {
	answers := answersFor(t, []int{4, 12, 63}, []models.AnswerValue{models.AnswerOften, models.AnswerNot, models.AnswerSometimes})
	s := DefaultScorer()
	a, b := s.Score(answers), s.Score(answers)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("scoring the same answers twice differs")
	}
}

func TestSeverityAndGauge(t *testing.T) {
	cases := []struct {
		p      float64
		sev    Severity
		filled int
	}{
		{0, SeverityLow, 0},
		{30, SeverityLow, 2},
		{30.1, SeverityModerate, 2},
		{60, SeverityModerate, 3},
		{61, SeverityHigh, 4},
		{100, SeverityHigh, 5},
	}
	for _, c := range cases {
		if got := SeverityFor(c.p); got != c.sev {
			t.Fatalf("SeverityFor(%v)=%s, want %s", c.p, got, c.sev)
		}
		if got := FilledLevels(c.p); got != c.filled {
			t.Fatalf("FilledLevels(%v)=%d, want %d", c.p, got, c.filled)
		}
	}
}
