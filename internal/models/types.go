package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// AnswerValue is one of the three fixed answer options of the questionnaire.
type AnswerValue string

const (
	AnswerNot       AnswerValue = "not"
	AnswerSometimes AnswerValue = "sometimes"
	AnswerOften     AnswerValue = "often"
)

// MaxAnswerPoints is the point value of the highest answer option.
const MaxAnswerPoints = 3

var answerPoints = map[AnswerValue]int{
	AnswerNot:       0,
	AnswerSometimes: 1,
	AnswerOften:     3,
}

// Labels written by the first browser-only release of the product.
var legacyAnswerLabels = map[string]AnswerValue{
	"não":            AnswerNot,
	"nao":            AnswerNot,
	"ocasionalmente": AnswerSometimes,
	"frequentemente": AnswerOften,
}

// AnswerOptions lists the options in display order.
func AnswerOptions() []AnswerValue {
	return []AnswerValue{AnswerNot, AnswerSometimes, AnswerOften}
}

// Points returns the fixed point value bound to the option.
func (v AnswerValue) Points() int { return answerPoints[v] }

// Valid reports whether v is one of the three options.
func (v AnswerValue) Valid() bool {
	_, ok := answerPoints[v]
	return ok
}

// ParseAnswerValue accepts canonical values and the legacy Portuguese labels.
func ParseAnswerValue(s string) (AnswerValue, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if v := AnswerValue(key); v.Valid() {
		return v, nil
	}
	if v, ok := legacyAnswerLabels[key]; ok {
		return v, nil
	}
	return "", fmt.Errorf("unknown answer value %q", s)
}

func (v *AnswerValue) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseAnswerValue(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Question is an immutable entry of the fixed question bank.
type Question struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

// RecordedAnswer snapshots the question text so stored history renders the
// same after the bank is edited.
type RecordedAnswer struct {
	QuestionID   int         `json:"questionId"`
	QuestionText string      `json:"questionText"`
	Answer       AnswerValue `json:"answer"`
	Score        int         `json:"score"`
}

// SymptomHistoryEntry is one completed assessment.
type SymptomHistoryEntry struct {
	ID         string           `json:"id,omitempty"`
	Date       time.Time        `json:"date"`
	TotalScore int              `json:"totalScore"`
	MaxScore   int              `json:"maxScore"`
	Percentage int              `json:"percentage"`
	Answers    []RecordedAnswer `json:"answers"`
}

// PainEntry annotates one body region.
type PainEntry struct {
	BodyPartID   string `json:"bodyPartId"`
	BodyPartName string `json:"bodyPartName"`
	Level        int    `json:"level"`
	Notes        string `json:"notes"`
}

// PainMap is keyed by body part id, one entry per region touched.
type PainMap map[string]PainEntry

// Clone returns an independent copy of m.
func (m PainMap) Clone() PainMap {
	out := make(PainMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// PainHistoryEntry is one saved pain-mapping session.
type PainHistoryEntry struct {
	ID         string    `json:"id,omitempty"`
	Date       time.Time `json:"date"`
	TotalScore int       `json:"totalScore"`
	PainMap    PainMap   `json:"painMap"`
}

type Gender string

const (
	GenderMale   Gender = "masculino"
	GenderFemale Gender = "feminino"
)

func (g Gender) Valid() bool { return g == GenderMale || g == GenderFemale }

// BirthDateLayout is the layout of Identity.BirthDate.
const BirthDateLayout = "2006-01-02"

// Identity is a person; Email is a lookup key, not a credential.
type Identity struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	BirthDate string `json:"birthDate"`
	Gender    Gender `json:"gender"`
}

// Age returns completed years at now, or -1 when BirthDate does not parse.
func (id Identity) Age(now time.Time) int {
	birth, err := time.Parse(BirthDateLayout, strings.TrimSpace(id.BirthDate))
	if err != nil {
		return -1
	}
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// Record is the stored unit: profile fields plus both history lists.
type Record struct {
	Identity
	History     []SymptomHistoryEntry `json:"history"`
	PainHistory []PainHistoryEntry    `json:"painHistory"`
}

// ErrMalformedRecords reports a stored record list that is not a JSON array.
var ErrMalformedRecords = errors.New("record store: malformed data")

// Clone deep-copies the history slices and pain maps so callers cannot alias stored data.
func (r Record) Clone() Record {
	out := r
	out.History = append([]SymptomHistoryEntry(nil), r.History...)
	out.PainHistory = clonePainHistory(r.PainHistory)
	return out
}

func clonePainHistory(in []PainHistoryEntry) []PainHistoryEntry {
	if in == nil {
		return nil
	}
	out := make([]PainHistoryEntry, len(in))
	for i, e := range in {
		if e.PainMap != nil {
			e.PainMap = e.PainMap.Clone()
		}
		out[i] = e
	}
	return out
}

// RecordPatch lists the fields an upsert replaces. Nil fields are preserved.
type RecordPatch struct {
	Name        *string
	Email       *string
	BirthDate   *string
	Gender      *Gender
	History     *[]SymptomHistoryEntry
	PainHistory *[]PainHistoryEntry
}

// ProfilePatch replaces every profile field with the values in id.
func ProfilePatch(id Identity) RecordPatch {
	return RecordPatch{Name: &id.Name, Email: &id.Email, BirthDate: &id.BirthDate, Gender: &id.Gender}
}

// Apply merges p onto r field by field.
func (p RecordPatch) Apply(r Record) Record {
	out := r.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Email != nil {
		out.Email = *p.Email
	}
	if p.BirthDate != nil {
		out.BirthDate = *p.BirthDate
	}
	if p.Gender != nil {
		out.Gender = *p.Gender
	}
	if p.History != nil {
		out.History = append([]SymptomHistoryEntry(nil), (*p.History)...)
	}
	if p.PainHistory != nil {
		out.PainHistory = clonePainHistory(*p.PainHistory)
	}
	return out
}
