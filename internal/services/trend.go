package services

import (
	"sort"
	"time"

	"github.com/soaringjerry/Oasis/internal/models"
)

const trendDayLayout = "2006-01-02"

// TrendPoint is one entry of an evolution chart.
type TrendPoint struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

// SymptomTrend charts the stored percentage of every assessment, oldest first.
func SymptomTrend(history []models.SymptomHistoryEntry) []TrendPoint {
	entries := append([]models.SymptomHistoryEntry(nil), history...)
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date.Before(entries[j].Date) })
	out := make([]TrendPoint, 0, len(entries))
	for _, e := range entries {
		out = append(out, TrendPoint{Date: e.Date.Format(trendDayLayout), Value: e.Percentage})
	}
	return out
}

// PainTrend charts the total of every pain session. Without history it
// returns one point for current at now.
func PainTrend(history []models.PainHistoryEntry, current models.PainMap, now time.Time) []TrendPoint {
	if len(history) == 0 {
		return []TrendPoint{{Date: now.Format(trendDayLayout), Value: PainTotal(current)}}
	}
	entries := append([]models.PainHistoryEntry(nil), history...)
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date.Before(entries[j].Date) })
	out := make([]TrendPoint, 0, len(entries))
	for _, e := range entries {
		out = append(out, TrendPoint{Date: e.Date.Format(trendDayLayout), Value: e.TotalScore})
	}
	return out
}
