package db

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/soaringjerry/Oasis/internal/models"
)

func TestRecordRepositoryRoundTrip(t *testing.T) {
	repo := NewRecordRepository(NewMemoryKV(), "")
	recs, err := repo.LoadRecords()
	if err != nil || len(recs) != 0 {
		t.Fatalf("empty store: %v %v", recs, err)
	}
	in := []models.Record{
		{
			Identity: models.Identity{Name: "Ana", Email: "ana@example.com", BirthDate: "1990-01-01", Gender: models.GenderFemale},
			History: []models.SymptomHistoryEntry{{
				Date:       time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
				TotalScore: 3, MaxScore: 3, Percentage: 100,
				Answers: []models.RecordedAnswer{{QuestionID: 1, QuestionText: "q", Answer: models.AnswerOften, Score: 3}},
			}},
			PainHistory: []models.PainHistoryEntry{{
				TotalScore: 7,
				PainMap:    models.PainMap{"shoulder-left": {BodyPartID: "shoulder-left", Level: 7}},
			}},
		},
		{Identity: models.Identity{Name: "Bia", Email: "bia@example.com"}},
	}
	if err := repo.SaveRecords(in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := repo.LoadRecords()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 2 || out[0].Email != "ana@example.com" || out[1].Name != "Bia" {
		t.Fatalf("order or content lost: %+v", out)
	}
	if out[0].History[0].Answers[0].Answer != models.AnswerOften || out[0].PainHistory[0].PainMap["shoulder-left"].Level != 7 {
		t.Fatalf("history lost: %+v", out[0])
	}
}

func TestRecordRepositoryMalformed(t *testing.T) {
	kv := NewMemoryKV()
	repo := NewRecordRepository(kv, "k")
	for _, raw := range []string{`{"name":"x"}`, `not json`, `"text"`} {
		_ = kv.Set("k", []byte(raw))
		if _, err := repo.LoadRecords(); !errors.Is(err, ErrMalformed) {
			t.Fatalf("%s: want ErrMalformed, got %v", raw, err)
		}
	}
}

func TestDecodeRecordsSkipsBadElements(t *testing.T) {
	recs, err := DecodeRecords([]byte(`[{"email":"a@b.c","history":"oops"}, 42, {"email":"ok@b.c"}]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(recs) != 1 || recs[0].Email != "ok@b.c" {
		t.Fatalf("unexpected records: %+v", recs)
	}
}

func TestSaveRecordsKeepsUndecodableElements(t *testing.T) {
	kv := NewMemoryKV()
	repo := NewRecordRepository(kv, "")
	ana := `{"name":"Ana","email":"ana@example.com","history":[{"date":"2024-03-01T10:00:00Z","answers":[{"questionId":1,"answer":"Às vezes","score":1}]}]}`
	if err := kv.Set(DefaultStoreKey, []byte("["+ana+`,{"name":"Caio","email":"caio@example.com"}]`)); err != nil {
		t.Fatal(err)
	}
	recs, err := repo.LoadRecords()
	if err != nil || len(recs) != 1 || recs[0].Email != "caio@example.com" {
		t.Fatalf("load: %+v %v", recs, err)
	}
	recs = append(recs, models.Record{Identity: models.Identity{Name: "Bo", Email: "bo@example.com"}})
	if err := repo.SaveRecords(recs); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, _ := kv.Get(DefaultStoreKey)
	if !strings.Contains(string(raw), "Às vezes") || !strings.Contains(string(raw), "ana@example.com") {
		t.Fatalf("undecodable element dropped: %s", raw)
	}
	out, err := repo.LoadRecords()
	if err != nil || len(out) != 2 || out[0].Email != "caio@example.com" || out[1].Email != "bo@example.com" {
		t.Fatalf("reload: %+v %v", out, err)
	}
}

func TestSaveRecordsWritesEmptyLists(t *testing.T) {
	kv := NewMemoryKV()
	repo := NewRecordRepository(kv, "")
	recs := []models.Record{{
		Identity:    models.Identity{Name: "Bo", Email: "bo@example.com"},
		PainHistory: []models.PainHistoryEntry{{TotalScore: 0}},
	}}
	if err := repo.SaveRecords(recs); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, _ := kv.Get(DefaultStoreKey)
	for _, want := range []string{`"history":[]`, `"painMap":{}`} {
		if !strings.Contains(string(raw), want) {
			t.Fatalf("missing %s in %s", want, raw)
		}
	}
	if strings.Contains(string(raw), "null") {
		t.Fatalf("null list stored: %s", raw)
	}
	if recs[0].History != nil || recs[0].PainHistory[0].PainMap != nil {
		t.Fatal("SaveRecords changed its input")
	}
	if err := repo.SaveRecords(nil); err != nil {
		t.Fatalf("save empty: %v", err)
	}
	if raw, _ := kv.Get(DefaultStoreKey); string(raw) != "[]" {
		t.Fatalf("empty list stored as %s", raw)
	}
}

func TestSaveRecordsRefusesUnreadableStore(t *testing.T) {
	inner := NewMemoryKV()
	right, err := NewSealedKV(inner, "right")
	if err != nil {
		t.Fatal(err)
	}
	if err := NewRecordRepository(right, "").SaveRecords([]models.Record{
		{Identity: models.Identity{Email: "a@example.com"}},
		{Identity: models.Identity{Email: "b@example.com"}},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	wrong, err := NewSealedKV(inner, "wrong")
	if err != nil {
		t.Fatal(err)
	}
	repo := NewRecordRepository(wrong, "")
	if _, err := repo.LoadRecords(); !errors.Is(err, ErrSealed) {
		t.Fatalf("load with wrong passphrase: %v", err)
	}
	err = repo.SaveRecords([]models.Record{{Identity: models.Identity{Email: "c@example.com"}}})
	if !errors.Is(err, ErrSealed) {
		t.Fatalf("save over unreadable store: %v", err)
	}
	recs, err := NewRecordRepository(right, "").LoadRecords()
	if err != nil || len(recs) != 2 {
		t.Fatalf("store must stay readable with the right passphrase: %+v %v", recs, err)
	}
}
