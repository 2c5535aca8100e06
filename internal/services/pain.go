package services

import (
	"fmt"

	"github.com/soaringjerry/Oasis/internal/models"
)

const (
	MinPainLevel = 0
	MaxPainLevel = 10
)

// PainTotal sums the level of every entry; annotated but painless regions add 0.
func PainTotal(m models.PainMap) int {
	total := 0
	for _, e := range m {
		total += e.Level
	}
	return total
}

// PainComparison is the level of one region in two sessions. A side without an entry reads 0.
type PainComparison struct {
	PartID   string `json:"partId"`
	Current  int    `json:"current"`
	Previous int    `json:"previous"`
	Delta    int    `json:"delta"`
}

func ComparePart(current, previous models.PainMap, partID string) PainComparison {
	c := PainComparison{PartID: partID}
	if e, ok := current[partID]; ok {
		c.Current = e.Level
	}
	if e, ok := previous[partID]; ok {
		c.Previous = e.Level
	}
	c.Delta = c.Current - c.Previous
	return c
}

// PreviousPainMap returns the map of the session immediately before history[index].
func PreviousPainMap(history []models.PainHistoryEntry, index int) (models.PainMap, bool) {
	if index <= 0 || index >= len(history) {
		return nil, false
	}
	return history[index-1].PainMap.Clone(), true
}

// NewPainEntry snapshots m into a history entry.
func NewPainEntry(m models.PainMap) models.PainHistoryEntry {
	return models.PainHistoryEntry{TotalScore: PainTotal(m), PainMap: m.Clone()}
}

// PainDraft is the pain map of an open pain-mapping session. Level and notes
// of a region are set independently.
type PainDraft struct {
	entries models.PainMap
}

func NewPainDraft() *PainDraft { return &PainDraft{entries: models.PainMap{}} }

func (d *PainDraft) entry(partID string) (models.PainEntry, error) {
	part, ok := models.BodyPartByID(partID)
	if !ok {
		return models.PainEntry{}, NewInvalidError(fmt.Sprintf("unknown body part %q", partID))
	}
	e, ok := d.entries[partID]
	if !ok {
		e = models.PainEntry{BodyPartID: part.ID}
	}
	e.BodyPartName = part.Name
	return e, nil
}

// SetLevel sets the level of a region, keeping its notes.
func (d *PainDraft) SetLevel(partID string, level int) error {
	if level < MinPainLevel || level > MaxPainLevel {
		return NewInvalidError(fmt.Sprintf("pain level %d outside %d-%d", level, MinPainLevel, MaxPainLevel))
	}
	e, err := d.entry(partID)
	if err != nil {
		return err
	}
	e.Level = level
	d.entries[partID] = e
	return nil
}

// SetNotes sets the notes of a region, keeping its level (0 for a new region).
func (d *PainDraft) SetNotes(partID, notes string) error {
	e, err := d.entry(partID)
	if err != nil {
		return err
	}
	e.Notes = notes
	d.entries[partID] = e
	return nil
}

func (d *PainDraft) Clear() { d.entries = models.PainMap{} }

// Map returns a copy of the current map.
func (d *PainDraft) Map() models.PainMap { return d.entries.Clone() }

func (d *PainDraft) Total() int { return PainTotal(d.entries) }
