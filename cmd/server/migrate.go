package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	dbstore "github.com/soaringjerry/Oasis/internal/db"
	"github.com/soaringjerry/Oasis/internal/services"
)

// ImportLegacyIfNeeded seeds an empty store from a snapshot of the
// browser-era record list. A store that already holds records is left alone.
func ImportLegacyIfNeeded(snapshotPath string, repo services.RecordRepository, history *services.HistoryService) (int, error) {
	if snapshotPath == "" {
		return 0, nil
	}
	existing, err := repo.LoadRecords()
	if err != nil {
		return 0, fmt.Errorf("check store: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil // already imported
	}
	raw, err := os.ReadFile(snapshotPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("read legacy snapshot: %w", err)
	}
	records, err := dbstore.DecodeRecords(raw)
	if err != nil {
		return 0, fmt.Errorf("decode legacy snapshot: %w", err)
	}
	log.Printf("First run detected, importing %d records from legacy snapshot %s...", len(records), snapshotPath)
	n, err := history.Import(records)
	if err != nil {
		return n, fmt.Errorf("import records: %w", err)
	}
	log.Printf("Legacy import completed: %d records.", n)
	return n, nil
}
