package models

import "time"

const (
	ConsultationTypeVideo = "video"
	ConsultationTypePhone = "phone"

	ConsultationStatusPending   = "pending"
	ConsultationStatusConfirmed = "confirmed"
	ConsultationStatusCompleted = "completed"
	ConsultationStatusCancelled = "cancelled"
)

type Consultation struct {
	ConsultationID uint      `gorm:"primaryKey" json:"id"`
	PatientID      uint      `json:"patient_id" gorm:"not null;index"`
	DoctorID       uint      `json:"doctor_id" gorm:"not null"`
	DoctorName     string    `json:"doctorName"`
	Specialty      string    `json:"specialty"`
	Date           time.Time `json:"date" gorm:"not null"`
	// 30-minute slot label, e.g. "10:30-11:00"
	TimeSlot            string     `json:"time_slot"`
	Type                string     `json:"type" gorm:"not null"`
	Status              string     `json:"status" gorm:"not null"`
	Reason              string     `json:"reason"`
	Notes               string     `json:"notes"`
	FollowUpRecommended bool       `json:"followUpRecommended"`
	FollowUpDate        *time.Time `json:"followUpDate,omitempty"`
	CreatedAt           time.Time  `json:"createdAt" gorm:"autoCreateTime"`
}
