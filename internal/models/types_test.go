package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestQuestionBank(t *testing.T) {
	qs := Questions()
	if len(qs) != 63 {
		t.Fatalf("want 63 questions, got %d", len(qs))
	}
	ids := map[int]bool{}
	for _, q := range qs {
		if ids[q.ID] {
			t.Fatalf("duplicate question id %d", q.ID)
		}
		ids[q.ID] = true
	}
	cats := Categories(qs)
	if len(cats) != 14 {
		t.Fatalf("want 14 categories, got %d: %v", len(cats), cats)
	}
	if cats[0] != "Cabeça" || cats[len(cats)-1] != "Metabolismo" {
		t.Fatalf("categories out of order: %v", cats)
	}
	if q, ok := QuestionByID(28); !ok || q.Category != "Cardíaco" {
		t.Fatalf("lookup 28: %+v %v", q, ok)
	}
}

func TestBodyParts(t *testing.T) {
	parts := BodyParts()
	if len(parts) != 57 {
		t.Fatalf("want 57 regions, got %d", len(parts))
	}
	p, ok := BodyPartByID("knee-right")
	if !ok || p.Side != BodyFront {
		t.Fatalf("knee-right: %+v %v", p, ok)
	}
	if _, ok := BodyPartByID("tail"); ok {
		t.Fatal("unexpected region")
	}
}

func TestParseAnswerValue(t *testing.T) {
	cases := []struct {
		in   string
		want AnswerValue
	}{
		{"often", AnswerOften},
		{" Sometimes ", AnswerSometimes},
		{"Não", AnswerNot},
		{"Ocasionalmente", AnswerSometimes},
		{"Frequentemente", AnswerOften},
	}
	for _, c := range cases {
		got, err := ParseAnswerValue(c.in)
		if err != nil || got != c.want {
			t.Fatalf("ParseAnswerValue(%q)=%q,%v want %q", c.in, got, err, c.want)
		}
	}
	if _, err := ParseAnswerValue("always"); err == nil {
		t.Fatal("expected error for unknown value")
	}
	if AnswerNot.Points() != 0 || AnswerSometimes.Points() != 1 || AnswerOften.Points() != 3 {
		t.Fatal("point mapping changed")
	}
}

func TestLegacyRecordDecodes(t *testing.T) {
	raw := `{"name":"Ana","email":"ana@example.com","birthDate":"1990-05-01","gender":"feminino",
	"history":[{"date":"2024-03-01T10:00:00.000Z","totalScore":3,"maxScore":3,"percentage":100,
	"answers":[{"questionId":1,"questionText":"Teve dor de cabeça?","answer":"Frequentemente","score":3}]}]}`
	var r Record
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r.Email != "ana@example.com" || len(r.History) != 1 || r.History[0].Answers[0].Answer != AnswerOften {
		t.Fatalf("unexpected record: %+v", r)
	}
	if r.PainHistory != nil {
		t.Fatalf("missing painHistory should decode as nil")
	}
}

func TestRecordPatchApply(t *testing.T) {
	p1 := []PainHistoryEntry{{TotalScore: 4}}
	base := Record{
		Identity:    Identity{Name: "Old", Email: "a@b.c", BirthDate: "1980-01-01", Gender: GenderMale},
		History:     []SymptomHistoryEntry{{TotalScore: 1}},
		PainHistory: p1,
	}
	h2 := []SymptomHistoryEntry{{TotalScore: 1}, {TotalScore: 2}}
	got := RecordPatch{History: &h2}.Apply(base)
	if len(got.History) != 2 {
		t.Fatalf("history not replaced: %+v", got.History)
	}
	if len(got.PainHistory) != 1 || got.PainHistory[0].TotalScore != 4 {
		t.Fatalf("pain history wiped: %+v", got.PainHistory)
	}
	if got.Name != "Old" || got.Gender != GenderMale {
		t.Fatalf("profile changed: %+v", got.Identity)
	}

	name := "New"
	got = RecordPatch{Name: &name}.Apply(base)
	if got.Name != "New" || got.Email != "a@b.c" || got.BirthDate != "1980-01-01" {
		t.Fatalf("name patch leaked: %+v", got.Identity)
	}

	got.History[0].TotalScore = 99
	if base.History[0].TotalScore != 1 {
		t.Fatal("Apply aliased the base history")
	}
}

func TestRecordCloneCopiesPainMaps(t *testing.T) {
	src := Record{
		Identity: Identity{Email: "a@b.c"},
		PainHistory: []PainHistoryEntry{
			{TotalScore: 3, PainMap: PainMap{"neck": {BodyPartID: "neck", Level: 3}}},
			{TotalScore: 0},
		},
	}
	cp := src.Clone()
	cp.PainHistory[0].PainMap["neck"] = PainEntry{BodyPartID: "neck", Level: 9}
	cp.PainHistory[0].PainMap["pelvis"] = PainEntry{BodyPartID: "pelvis", Level: 1}
	if src.PainHistory[0].PainMap["neck"].Level != 3 || len(src.PainHistory[0].PainMap) != 1 {
		t.Fatalf("clone shares the pain map: %+v", src.PainHistory[0].PainMap)
	}
	if cp.PainHistory[1].PainMap != nil {
		t.Fatalf("nil pain map should stay nil: %+v", cp.PainHistory[1].PainMap)
	}

	patched := RecordPatch{PainHistory: &src.PainHistory}.Apply(Record{})
	patched.PainHistory[0].PainMap["neck"] = PainEntry{BodyPartID: "neck", Level: 1}
	if src.PainHistory[0].PainMap["neck"].Level != 3 {
		t.Fatal("Apply shares the patch pain map")
	}
}

func TestIdentityAge(t *testing.T) {
	id := Identity{BirthDate: "1990-06-15"}
	if got := id.Age(time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)); got != 33 {
		t.Fatalf("day before birthday: %d", got)
	}
	if got := id.Age(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)); got != 34 {
		t.Fatalf("on birthday: %d", got)
	}
	if got := (Identity{BirthDate: "soon"}).Age(time.Now()); got != -1 {
		t.Fatalf("bad date: %d", got)
	}
}
