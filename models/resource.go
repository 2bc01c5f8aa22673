package models

import "github.com/lib/pq"

type Resource struct {
	ResourceID uint           `gorm:"primaryKey" json:"id"`
	Name       string         `json:"name" gorm:"not null"`
	Type       string         `json:"type" gorm:"not null"`
	Address    string         `json:"address"`
	Phone      string         `json:"phone"`
	Website    string         `json:"website"`
	Hours      string         `json:"hours"`
	// Distance from the service area center, in miles
	Distance float64        `json:"distance"`
	Services pq.StringArray `json:"services" gorm:"type:text[]"`
}
