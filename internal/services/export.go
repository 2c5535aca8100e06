package services

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"
	"time"

	"github.com/soaringjerry/Oasis/internal/models"
)

// ExportKind selects one of the CSV layouts.
type ExportKind string

const (
	ExportSymptomLong ExportKind = "symptom-long"
	ExportSymptomWide ExportKind = "symptom-wide"
	ExportPain        ExportKind = "pain"
)

func ParseExportKind(s string) (ExportKind, bool) {
	switch k := ExportKind(s); k {
	case ExportSymptomLong, ExportSymptomWide, ExportPain:
		return k, true
	case "":
		return ExportSymptomLong, true
	}
	return "", false
}

// Export renders the history of rec in the requested layout.
func Export(kind ExportKind, rec models.Record, scorer *Scorer) ([]byte, error) {
	switch kind {
	case ExportSymptomWide:
		return ExportSymptomWideCSV(rec.History, scorer)
	case ExportPain:
		return ExportPainCSV(rec.PainHistory)
	default:
		return ExportSymptomLongCSV(rec.History)
	}
}

func stamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// ExportSymptomLongCSV writes one row per recorded answer.
func ExportSymptomLongCSV(history []models.SymptomHistoryEntry) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"entry_id", "date", "question_id", "question_text", "answer", "score"})
	for _, e := range history {
		for _, a := range e.Answers {
			rec := []string{
				e.ID,
				stamp(e.Date),
				strconv.Itoa(a.QuestionID),
				a.QuestionText,
				string(a.Answer),
				strconv.Itoa(a.Score),
			}
			if err := w.Write(rec); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ExportSymptomWideCSV writes one row per assessment with its stored totals
// and one percentage column per category, in question-bank order.
func ExportSymptomWideCSV(history []models.SymptomHistoryEntry, scorer *Scorer) ([]byte, error) {
	if scorer == nil {
		scorer = DefaultScorer()
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"entry_id", "date", "total_score", "max_score", "percentage"}
	header = append(header, scorer.categories...)
	_ = w.Write(header)
	for _, e := range history {
		card := scorer.Score(e.Answers)
		row := make([]string, 0, len(header))
		row = append(row, e.ID, stamp(e.Date), strconv.Itoa(e.TotalScore), strconv.Itoa(e.MaxScore), strconv.Itoa(e.Percentage))
		for _, cat := range card.Categories() {
			row = append(row, strconv.FormatFloat(cat.Percentage, 'f', 1, 64))
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ExportPainCSV writes one row per annotated region, regions sorted by id.
func ExportPainCSV(history []models.PainHistoryEntry) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"entry_id", "date", "total_score", "body_part_id", "body_part_name", "level", "notes"})
	for _, e := range history {
		ids := make([]string, 0, len(e.PainMap))
		for id := range e.PainMap {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			p := e.PainMap[id]
			rec := []string{
				e.ID,
				stamp(e.Date),
				strconv.Itoa(e.TotalScore),
				id,
				p.BodyPartName,
				strconv.Itoa(p.Level),
				p.Notes,
			}
			if err := w.Write(rec); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
