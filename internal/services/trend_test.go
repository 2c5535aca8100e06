package services

import (
	"testing"
	"time"

	"github.com/soaringjerry/Oasis/internal/models"
)

func TestSymptomTrendOrdersByDate(t *testing.T) {
	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 1, 0)
	got := SymptomTrend([]models.SymptomHistoryEntry{{Date: d2, Percentage: 20}, {Date: d1, Percentage: 60}})
	if len(got) != 2 || got[0] != (TrendPoint{Date: "2024-01-01", Value: 60}) || got[1].Value != 20 {
		t.Fatalf("trend: %+v", got)
	}
}

func TestPainTrend(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	current := models.PainMap{"pelvis": {Level: 4}, "knee-right": {Level: 1}}
	got := PainTrend(nil, current, now)
	if len(got) != 1 || got[0] != (TrendPoint{Date: "2024-05-01", Value: 5}) {
		t.Fatalf("empty history: %+v", got)
	}
	got = PainTrend([]models.PainHistoryEntry{{Date: now, TotalScore: 7}}, current, now)
	if len(got) != 1 || got[0].Value != 7 {
		t.Fatalf("stored totals: %+v", got)
	}
}
