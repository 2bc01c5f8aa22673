package controllers

import (
	"errors"

	"health-connect/models"
)

// Wizard steps. Each step holds the selections accumulated so far;
// re-selecting an earlier choice clears everything downstream of it.
const (
	StepSelectSpecialty = 1
	StepSelectDoctor    = 2
	StepSelectDateTime  = 3
	StepConfirm         = 4
)

var (
	ErrNoSpecialty       = errors.New("select a specialty first")
	ErrNoDoctor          = errors.New("select a doctor first")
	ErrNoSlot            = errors.New("select a time slot first")
	ErrUnknownSpecialty  = errors.New("unknown specialty")
	ErrSpecialtyMismatch = errors.New("doctor does not practice the chosen specialty")
)

// BookingSession is the state of one patient's consultation-booking
// wizard: specialty, doctor, date/time, confirm.
type BookingSession struct {
	SessionID string `json:"session_id"`
	PatientID uint   `json:"patient_id"`
	Step      int    `json:"step"`

	Specialty  string `json:"specialty,omitempty"`
	DoctorID   uint   `json:"doctor_id,omitempty"`
	DoctorName string `json:"doctor_name,omitempty"`
	Date       string `json:"date,omitempty"`
	TimeSlot   string `json:"time_slot,omitempty"`
}

func NewBookingSession(sessionID string, patientID uint) *BookingSession {
	return &BookingSession{SessionID: sessionID, PatientID: patientID, Step: StepSelectSpecialty}
}

// SelectSpecialty sets the specialty and clears any doctor, date and slot
// chosen under a previous specialty.
func (s *BookingSession) SelectSpecialty(specialty string, known []string) error {
	if specialty == "" {
		return ErrNoSpecialty
	}
	found := false
	for _, k := range known {
		if k == specialty {
			found = true
			break
		}
	}
	if !found {
		return ErrUnknownSpecialty
	}

	s.Specialty = specialty
	s.DoctorID = 0
	s.DoctorName = ""
	s.Date = ""
	s.TimeSlot = ""
	s.Step = StepSelectDoctor
	return nil
}

// SelectDoctor records the chosen doctor. The doctor's specialty must
// equal the chosen specialty exactly, case-sensitively. Clears any date
// and slot chosen under a previous doctor.
func (s *BookingSession) SelectDoctor(doctor models.Doctor) error {
	if s.Specialty == "" {
		return ErrNoSpecialty
	}
	if doctor.Specialty != s.Specialty {
		return ErrSpecialtyMismatch
	}

	s.DoctorID = doctor.DoctorID
	s.DoctorName = doctor.Name
	s.Date = ""
	s.TimeSlot = ""
	s.Step = StepSelectDateTime
	return nil
}

// SelectSlot records the date and time slot for the chosen doctor.
func (s *BookingSession) SelectSlot(date, timeSlot string) error {
	if s.DoctorID == 0 {
		return ErrNoDoctor
	}
	if date == "" || timeSlot == "" {
		return ErrNoSlot
	}

	s.Date = date
	s.TimeSlot = timeSlot
	s.Step = StepConfirm
	return nil
}

// ReadyToConfirm reports whether the wizard holds everything booking
// needs.
func (s *BookingSession) ReadyToConfirm() error {
	if s.Specialty == "" {
		return ErrNoSpecialty
	}
	if s.DoctorID == 0 {
		return ErrNoDoctor
	}
	if s.Date == "" || s.TimeSlot == "" {
		return ErrNoSlot
	}
	return nil
}
