package services

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/soaringjerry/Oasis/internal/models"
)

func readCSV(b []byte) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(string(b)))
	return r.ReadAll()
}

var exportDate = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func TestExportSymptomLongCSV(t *testing.T) {
	history := []models.SymptomHistoryEntry{{
		ID: "h1", Date: exportDate,
		Answers: []models.RecordedAnswer{
			{QuestionID: 1, QuestionText: "Dor, pressão?", Answer: models.AnswerOften, Score: 3},
			{QuestionID: 2, QuestionText: "q2", Answer: models.AnswerNot, Score: 0},
		},
	}}
	b, err := ExportSymptomLongCSV(history)
	if err != nil {
		t.Fatalf("export long: %v", err)
	}
	recs, err := readCSV(b)
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("want 3 rows, got %d", len(recs))
	}
	if got := strings.Join(recs[0], ","); got != "entry_id,date,question_id,question_text,answer,score" {
		t.Fatalf("bad header: %s", got)
	}
	if recs[1][1] != "2024-01-02T03:04:05Z" || recs[1][3] != "Dor, pressão?" || recs[1][4] != "often" {
		t.Fatalf("row: %v", recs[1])
	}
}

func TestExportSymptomWideCSV(t *testing.T) {
	history := []models.SymptomHistoryEntry{
		{ID: "h1", Date: exportDate, TotalScore: 4, MaxScore: 9, Percentage: 44, Answers: []models.RecordedAnswer{
			{QuestionID: 1, Score: 3}, {QuestionID: 2, Score: 1}, {QuestionID: 3, Score: 0},
		}},
	}
	b, err := ExportSymptomWideCSV(history, NewScorer(smallBank))
	if err != nil {
		t.Fatalf("export wide: %v", err)
	}
	recs, err := readCSV(b)
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if strings.Join(recs[0], ",") != "entry_id,date,total_score,max_score,percentage,A,B" {
		t.Fatalf("header mismatch: %v", recs[0])
	}
	if strings.Join(recs[1][2:], ",") != "4,9,44,66.7,0.0" {
		t.Fatalf("row mismatch: %v", recs[1])
	}
}

func TestExportPainCSV(t *testing.T) {
	history := []models.PainHistoryEntry{{
		ID: "p1", Date: exportDate, TotalScore: 5,
		PainMap: models.PainMap{
			"pelvis":     {BodyPartID: "pelvis", BodyPartName: "Pelve", Level: 2},
			"knee-right": {BodyPartID: "knee-right", BodyPartName: "Joelho Direito", Level: 3, Notes: "rigidez"},
		},
	}}
	b, err := ExportPainCSV(history)
	if err != nil {
		t.Fatalf("export pain: %v", err)
	}
	recs, err := readCSV(b)
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(recs) != 3 || recs[1][3] != "knee-right" || recs[1][6] != "rigidez" || recs[2][3] != "pelvis" {
		t.Fatalf("rows: %v", recs)
	}
}

func TestParseExportKind(t *testing.T) {
	if k, ok := ParseExportKind(""); !ok || k != ExportSymptomLong {
		t.Fatalf("default kind: %q %v", k, ok)
	}
	if _, ok := ParseExportKind("xlsx"); ok {
		t.Fatal("unknown kind accepted")
	}
	out, err := Export(ExportPain, models.Record{}, nil)
	if err != nil || !strings.HasPrefix(string(out), "entry_id,date,total_score,body_part_id") {
		t.Fatalf("export pain header: %q %v", out, err)
	}
}
