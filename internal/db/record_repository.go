package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/soaringjerry/Oasis/internal/models"
)

// DefaultStoreKey is the fixed key the record list lives under.
const DefaultStoreKey = "oasis_app_data_v1"

// ErrMalformed reports stored bytes that are not a JSON list of records.
var ErrMalformed = models.ErrMalformedRecords

// RecordRepository serializes the ordered record list as one JSON array under a single key.
type RecordRepository struct {
	kv  KV
	key string
}

func NewRecordRepository(kv KV, key string) *RecordRepository {
	if key == "" {
		key = DefaultStoreKey
	}
	return &RecordRepository{kv: kv, key: key}
}

// LoadRecords returns every stored record. A missing key is an empty list.
// Elements that do not decode as a record are skipped; a value that is not
// a JSON array yields ErrMalformed.
func (r *RecordRepository) LoadRecords() ([]models.Record, error) {
	raw, err := r.kv.Get(r.key)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return DecodeRecords(raw)
}

// SaveRecords overwrites the stored list with records. Stored elements that
// do not decode as a record are written back unchanged after them, so the
// current value is read first and a failed read aborts the save.
func (r *RecordRepository) SaveRecords(records []models.Record) error {
	kept, err := r.undecodable()
	if err != nil {
		return err
	}
	elems := make([]json.RawMessage, 0, len(records)+len(kept))
	for _, rec := range records {
		b, err := json.Marshal(storable(rec))
		if err != nil {
			return fmt.Errorf("encode records: %w", err)
		}
		elems = append(elems, b)
	}
	elems = append(elems, kept...)
	b, err := json.Marshal(elems)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	return r.kv.Set(r.key, b)
}

// undecodable returns the stored elements DecodeRecords skips. A value that
// is not an array has nothing worth keeping.
func (r *RecordRepository) undecodable() ([]json.RawMessage, error) {
	raw, err := r.kv.Get(r.key)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read records before save: %w", err)
	}
	_, kept, err := splitRecords(raw)
	if errors.Is(err, ErrMalformed) {
		return nil, nil
	}
	return kept, err
}

// storable writes empty lists as [] rather than null.
func storable(rec models.Record) models.Record {
	rec = rec.Clone()
	if rec.History == nil {
		rec.History = []models.SymptomHistoryEntry{}
	}
	if rec.PainHistory == nil {
		rec.PainHistory = []models.PainHistoryEntry{}
	}
	for i := range rec.History {
		if rec.History[i].Answers == nil {
			rec.History[i].Answers = []models.RecordedAnswer{}
		}
	}
	for i := range rec.PainHistory {
		if rec.PainHistory[i].PainMap == nil {
			rec.PainHistory[i].PainMap = models.PainMap{}
		}
	}
	return rec
}

// DecodeRecords parses a serialized record list.
func DecodeRecords(raw []byte) ([]models.Record, error) {
	out, _, err := splitRecords(raw)
	return out, err
}

// splitRecords separates the elements that decode as records from the raw
// elements that do not.
func splitRecords(raw []byte) ([]models.Record, []json.RawMessage, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	out := make([]models.Record, 0, len(elems))
	var kept []json.RawMessage
	for i, el := range elems {
		var rec models.Record
		if err := json.Unmarshal(el, &rec); err != nil {
			log.Printf("record store: skip element %d: %v", i, err)
			kept = append(kept, el)
			continue
		}
		out = append(out, rec)
	}
	return out, kept, nil
}
