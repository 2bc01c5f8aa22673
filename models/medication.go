package models

import (
	"time"

	"github.com/lib/pq"
)

var MedicationFrequencies = []string{
	"once_daily", "twice_daily", "three_times_daily",
	"four_times_daily", "as_needed", "weekly",
}

var TimesOfDay = []string{"morning", "afternoon", "evening", "bedtime"}

type Medication struct {
	MedicationID   uint           `gorm:"primaryKey" json:"id"`
	PatientID      uint           `json:"patient_id" gorm:"not null;index"`
	Name           string         `json:"name" gorm:"not null"`
	Dosage         string         `json:"dosage" gorm:"not null"`
	Frequency      string         `json:"frequency" gorm:"not null"`
	TimeOfDay      pq.StringArray `json:"timeOfDay" gorm:"type:text[]"`
	StartDate      time.Time      `json:"startDate" gorm:"not null"`
	EndDate        *time.Time     `json:"endDate,omitempty"`
	Instructions   string         `json:"instructions"`
	RefillDate     *time.Time     `json:"refillDate,omitempty"`
	RefillReminder bool           `json:"refillReminder"`
	CreatedAt      time.Time      `json:"createdAt" gorm:"autoCreateTime"`

	Adherence []AdherenceEntry `json:"adherence,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// AdherenceEntry records whether a medication was taken on one calendar
// day. One entry per (medication, day).
type AdherenceEntry struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	MedicationID uint      `json:"-" gorm:"not null;uniqueIndex:idx_medication_day"`
	Date         time.Time `json:"date" gorm:"not null;uniqueIndex:idx_medication_day"`
	Taken        bool      `json:"taken"`
}

// AdherencePercentage rolls a 7-day ledger up into a whole percent,
// rounded to nearest.
func AdherencePercentage(entries []AdherenceEntry) int {
	taken := 0
	for _, e := range entries {
		if e.Taken {
			taken++
		}
	}
	return int(float64(taken)/7.0*100.0 + 0.5)
}
