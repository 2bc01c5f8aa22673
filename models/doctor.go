package models

import "github.com/lib/pq"

type Doctor struct {
	DoctorID      uint           `gorm:"primaryKey" json:"id"`
	Name          string         `json:"name" gorm:"not null"`
	Specialty     string         `json:"specialty" gorm:"not null"`
	Experience    int            `json:"experience"`
	Rating        float64        `json:"rating"`
	AvailableDays pq.StringArray `json:"availableDays" gorm:"type:text[]"`
	// Daily availability window, e.g. "09:00-17:00"
	AvailableTime string `json:"availableTime"`
}
