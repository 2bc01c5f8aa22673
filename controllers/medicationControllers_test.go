package controllers

import (
	"testing"
	"time"

	"health-connect/models"
)

func TestBuildWeekLedger(t *testing.T) {
	today := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	entries := []models.AdherenceEntry{
		{MedicationID: 1, Date: today, Taken: true},
		{MedicationID: 1, Date: today.AddDate(0, 0, -2), Taken: true},
		{MedicationID: 1, Date: today.AddDate(0, 0, -6), Taken: false},
	}

	ledger := buildWeekLedger(entries, today)

	if len(ledger) != 7 {
		t.Fatalf("ledger length = %d, want 7", len(ledger))
	}
	if !ledger[0].Date.Equal(today.AddDate(0, 0, -6)) {
		t.Errorf("ledger[0].Date = %v, want oldest day first", ledger[0].Date)
	}
	if !ledger[6].Date.Equal(today) {
		t.Errorf("ledger[6].Date = %v, want today last", ledger[6].Date)
	}
	if !ledger[6].Taken {
		t.Error("today's entry should be taken")
	}
	if !ledger[4].Taken {
		t.Error("entry two days ago should be taken")
	}
	// days without an entry default to not taken
	if ledger[1].Taken || ledger[2].Taken || ledger[3].Taken || ledger[5].Taken {
		t.Error("missing days should default to not taken")
	}
}

func TestAdherencePercentage(t *testing.T) {
	tests := []struct {
		taken int
		want  int
	}{
		{0, 0},
		{1, 14},
		{2, 29},
		{3, 43},
		{4, 57},
		{5, 71},
		{6, 86},
		{7, 100},
	}

	for _, tt := range tests {
		ledger := make([]models.AdherenceEntry, 7)
		for i := 0; i < tt.taken; i++ {
			ledger[i].Taken = true
		}
		if got := models.AdherencePercentage(ledger); got != tt.want {
			t.Errorf("AdherencePercentage with %d taken = %d, want %d", tt.taken, got, tt.want)
		}
	}
}

func TestMedicationInputValidation(t *testing.T) {
	base := medicationInput{
		Name:      "Lisinopril",
		Dosage:    "10mg",
		Frequency: "once_daily",
		TimeOfDay: []string{"morning"},
		StartDate: "2026-01-15",
	}

	if _, errMsg := base.toMedication(1); errMsg != "" {
		t.Fatalf("valid input rejected: %s", errMsg)
	}

	bad := base
	bad.Frequency = "hourly"
	if _, errMsg := bad.toMedication(1); errMsg == "" {
		t.Error("invalid frequency accepted")
	}

	bad = base
	bad.TimeOfDay = []string{"midnight"}
	if _, errMsg := bad.toMedication(1); errMsg == "" {
		t.Error("invalid time of day accepted")
	}

	bad = base
	bad.StartDate = "15/01/2026"
	if _, errMsg := bad.toMedication(1); errMsg == "" {
		t.Error("invalid start date accepted")
	}

	withDates := base
	withDates.EndDate = "2026-07-15"
	withDates.RefillDate = "2026-05-01"
	med, errMsg := withDates.toMedication(1)
	if errMsg != "" {
		t.Fatalf("input with dates rejected: %s", errMsg)
	}
	if med.EndDate == nil || med.RefillDate == nil {
		t.Error("end and refill dates should be set")
	}
}
