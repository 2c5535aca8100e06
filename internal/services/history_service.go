package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/soaringjerry/Oasis/internal/models"
	"github.com/soaringjerry/Oasis/internal/utils"
)

// RecordRepository loads and saves the whole per-identity record list.
type RecordRepository interface {
	LoadRecords() ([]models.Record, error)
	SaveRecords(records []models.Record) error
}

// HistoryKind selects one of the two history lists of a record.
type HistoryKind string

const (
	HistorySymptom HistoryKind = "symptom"
	HistoryPain    HistoryKind = "pain"
)

// HistoryService is the per-identity history store. Email is a lookup key
// compared after trimming and case folding. Writes hold mu from load to save,
// so one HistoryService may be shared by concurrent sessions.
type HistoryService struct {
	mu          sync.Mutex
	repo        RecordRepository
	now         func() time.Time
	idGenerator func() string
}

func NewHistoryService(repo RecordRepository) *HistoryService {
	return &HistoryService{
		repo:        repo,
		now:         func() time.Time { return time.Now().UTC() },
		idGenerator: uuid.NewString,
	}
}

// loadAll never fails: unreadable or malformed data is logged and read as empty.
func (s *HistoryService) loadAll() []models.Record {
	if s.repo == nil {
		return nil
	}
	recs, err := s.repo.LoadRecords()
	if err != nil {
		log.Printf("history store: %v", NewMalformedStoreError("treating store as empty: "+err.Error()))
		return nil
	}
	return recs
}

// loadForWrite reads the list a save will replace. Only a malformed value
// reads as empty; any other failure is returned so nothing gets overwritten.
func (s *HistoryService) loadForWrite() ([]models.Record, error) {
	recs, err := s.repo.LoadRecords()
	switch {
	case err == nil:
		return recs, nil
	case errors.Is(err, models.ErrMalformedRecords):
		log.Printf("history store: %v", NewMalformedStoreError("replacing malformed store: "+err.Error()))
		return nil, nil
	default:
		return nil, fmt.Errorf("history store: load before save: %w", err)
	}
}

func indexOf(recs []models.Record, email string) int {
	for i, r := range recs {
		if utils.SameEmail(r.Email, email) {
			return i
		}
	}
	return -1
}

// Load returns the record stored for email.
func (s *HistoryService) Load(email string) (models.Record, bool) {
	if strings.TrimSpace(email) == "" {
		return models.Record{}, false
	}
	recs := s.loadAll()
	i := indexOf(recs, email)
	if i < 0 {
		return models.Record{}, false
	}
	return recs[i].Clone(), true
}

// Upsert merges patch onto the record for email, or inserts a new record.
// Fields absent from patch keep their stored value. The record stays keyed
// by email even when patch carries a different one.
func (s *HistoryService) Upsert(email string, patch models.RecordPatch) (models.Record, error) {
	return s.update(email, func(models.Record) models.RecordPatch { return patch })
}

// update runs load, merge and save under mu. build derives the patch from
// the record currently stored for email.
func (s *HistoryService) update(email string, build func(current models.Record) models.RecordPatch) (models.Record, error) {
	key := utils.NormalizeEmail(email)
	if key == "" {
		return models.Record{}, NewInvalidError("email is required")
	}
	if s.repo == nil {
		return models.Record{}, errors.New("history service repository is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	recs, err := s.loadForWrite()
	if err != nil {
		return models.Record{}, err
	}
	i := indexOf(recs, key)
	var current models.Record
	if i >= 0 {
		current = recs[i].Clone()
	}
	merged := build(current).Apply(current)
	// the stored email is always the normalized lookup key
	merged.Email = key
	if i >= 0 {
		recs[i] = merged
	} else {
		recs = append(recs, merged)
	}
	if err := s.repo.SaveRecords(recs); err != nil {
		return models.Record{}, err
	}
	return merged.Clone(), nil
}

// AppendSymptom appends e to the symptom history of id and saves the full
// record: the profile of id plus both history lists.
func (s *HistoryService) AppendSymptom(id models.Identity, e models.SymptomHistoryEntry) (models.Record, error) {
	return s.append(id, func(r *models.Record) {
		s.stamp(&e.ID, &e.Date)
		r.History = append(r.History, e)
	})
}

// AppendPain appends e to the pain history of id; see AppendSymptom.
func (s *HistoryService) AppendPain(id models.Identity, e models.PainHistoryEntry) (models.Record, error) {
	return s.append(id, func(r *models.Record) {
		s.stamp(&e.ID, &e.Date)
		r.PainHistory = append(r.PainHistory, e)
	})
}

func (s *HistoryService) stamp(id *string, date *time.Time) {
	if *id == "" {
		*id = s.idGenerator()
	}
	if date.IsZero() {
		*date = s.now()
	}
}

func (s *HistoryService) append(id models.Identity, add func(*models.Record)) (models.Record, error) {
	return s.update(id.Email, func(current models.Record) models.RecordPatch {
		add(&current)
		patch := models.ProfilePatch(id)
		patch.History = &current.History
		patch.PainHistory = &current.PainHistory
		return patch
	})
}

// Import upserts every record with a non-blank email, keeping existing
// entries and appending the imported ones. It returns how many records were written.
func (s *HistoryService) Import(records []models.Record) (int, error) {
	n := 0
	for _, r := range records {
		if strings.TrimSpace(r.Email) == "" {
			continue
		}
		_, err := s.update(r.Email, func(current models.Record) models.RecordPatch {
			history := append(current.History, r.History...)
			pain := append(current.PainHistory, r.PainHistory...)
			patch := models.ProfilePatch(r.Identity)
			patch.History = &history
			patch.PainHistory = &pain
			return patch
		})
		if err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
