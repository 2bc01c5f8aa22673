package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Patient struct {
	PatientID   uint      `gorm:"primaryKey" json:"id"`
	FirstName   string    `json:"firstName" gorm:"not null"`
	LastName    string    `json:"lastName" gorm:"not null"`
	Email       string    `json:"email" gorm:"unique;not null"`
	Password    string    `json:"password,omitempty" gorm:"not null"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	Gender      string    `json:"gender"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	ZipCode     string    `json:"zipCode"`

	EmergencyContactName         string `json:"emergencyContactName"`
	EmergencyContactRelationship string `json:"emergencyContactRelationship"`
	EmergencyContactPhone        string `json:"emergencyContactPhone"`

	Allergies   string `json:"allergies"`
	Medications string `json:"medications"`
	Conditions  string `json:"conditions"`

	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

type PatientClaims struct {
	PatientID uint   `json:"patientID"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// PatientSummary is the account shape echoed back by register and login,
// password excluded.
type PatientSummary struct {
	ID          uint      `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	Gender      string    `json:"gender"`
	Phone       string    `json:"phone"`
}

func (p Patient) Summary() PatientSummary {
	return PatientSummary{
		ID:          p.PatientID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		DateOfBirth: p.DateOfBirth,
		Gender:      p.Gender,
		Phone:       p.Phone,
	}
}
