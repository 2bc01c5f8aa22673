package models

type Symptom struct {
	SymptomID uint   `gorm:"primaryKey" json:"id"`
	Name      string `json:"name" gorm:"unique;not null"`
}
