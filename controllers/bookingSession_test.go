package controllers

import (
	"testing"

	"health-connect/models"
)

func newTestSession() *BookingSession {
	return NewBookingSession("session-1", 42)
}

func TestWizardHappyPath(t *testing.T) {
	s := newTestSession()

	if s.Step != StepSelectSpecialty {
		t.Fatalf("new session step = %d, want %d", s.Step, StepSelectSpecialty)
	}

	if err := s.SelectSpecialty("Cardiologist", models.Specialties); err != nil {
		t.Fatalf("SelectSpecialty: %v", err)
	}
	if s.Step != StepSelectDoctor {
		t.Errorf("step after specialty = %d, want %d", s.Step, StepSelectDoctor)
	}

	doctor := models.Doctor{DoctorID: 4, Name: "Dr. Michael Chen", Specialty: "Cardiologist"}
	if err := s.SelectDoctor(doctor); err != nil {
		t.Fatalf("SelectDoctor: %v", err)
	}
	if s.Step != StepSelectDateTime {
		t.Errorf("step after doctor = %d, want %d", s.Step, StepSelectDateTime)
	}

	if err := s.SelectSlot("2026-09-03", "10:30-11:00"); err != nil {
		t.Fatalf("SelectSlot: %v", err)
	}
	if s.Step != StepConfirm {
		t.Errorf("step after slot = %d, want %d", s.Step, StepConfirm)
	}

	if err := s.ReadyToConfirm(); err != nil {
		t.Errorf("ReadyToConfirm: %v", err)
	}
}

func TestReselectingSpecialtyClearsDownstream(t *testing.T) {
	s := newTestSession()

	if err := s.SelectSpecialty("Cardiologist", models.Specialties); err != nil {
		t.Fatalf("SelectSpecialty: %v", err)
	}
	doctor := models.Doctor{DoctorID: 4, Name: "Dr. Michael Chen", Specialty: "Cardiologist"}
	if err := s.SelectDoctor(doctor); err != nil {
		t.Fatalf("SelectDoctor: %v", err)
	}
	if err := s.SelectSlot("2026-09-03", "10:30-11:00"); err != nil {
		t.Fatalf("SelectSlot: %v", err)
	}

	if err := s.SelectSpecialty("Dermatologist", models.Specialties); err != nil {
		t.Fatalf("re-select specialty: %v", err)
	}

	if s.DoctorID != 0 || s.DoctorName != "" {
		t.Errorf("doctor not cleared: id=%d name=%q", s.DoctorID, s.DoctorName)
	}
	if s.Date != "" || s.TimeSlot != "" {
		t.Errorf("date/slot not cleared: date=%q slot=%q", s.Date, s.TimeSlot)
	}
	if s.Step != StepSelectDoctor {
		t.Errorf("step after re-select = %d, want %d", s.Step, StepSelectDoctor)
	}
}

func TestReselectingDoctorClearsDateAndSlot(t *testing.T) {
	s := newTestSession()

	if err := s.SelectSpecialty("Cardiologist", models.Specialties); err != nil {
		t.Fatalf("SelectSpecialty: %v", err)
	}
	chen := models.Doctor{DoctorID: 4, Name: "Dr. Michael Chen", Specialty: "Cardiologist"}
	if err := s.SelectDoctor(chen); err != nil {
		t.Fatalf("SelectDoctor: %v", err)
	}
	if err := s.SelectSlot("2026-09-03", "10:30-11:00"); err != nil {
		t.Fatalf("SelectSlot: %v", err)
	}

	martinez := models.Doctor{DoctorID: 5, Name: "Dr. Jessica Martinez", Specialty: "Cardiologist"}
	if err := s.SelectDoctor(martinez); err != nil {
		t.Fatalf("re-select doctor: %v", err)
	}

	if s.Date != "" || s.TimeSlot != "" {
		t.Errorf("date/slot not cleared: date=%q slot=%q", s.Date, s.TimeSlot)
	}
	if s.Specialty != "Cardiologist" {
		t.Errorf("specialty lost on doctor re-select: %q", s.Specialty)
	}
	if s.Step != StepSelectDateTime {
		t.Errorf("step after doctor re-select = %d, want %d", s.Step, StepSelectDateTime)
	}
}

func TestWizardGuards(t *testing.T) {
	s := newTestSession()

	if err := s.SelectSpecialty("", models.Specialties); err != ErrNoSpecialty {
		t.Errorf("empty specialty: got %v, want %v", err, ErrNoSpecialty)
	}
	if err := s.SelectSpecialty("Astrologist", models.Specialties); err != ErrUnknownSpecialty {
		t.Errorf("unknown specialty: got %v, want %v", err, ErrUnknownSpecialty)
	}
	if err := s.SelectDoctor(models.Doctor{DoctorID: 1, Specialty: "Cardiologist"}); err != ErrNoSpecialty {
		t.Errorf("doctor before specialty: got %v, want %v", err, ErrNoSpecialty)
	}
	if err := s.SelectSlot("2026-09-03", "10:30-11:00"); err != ErrNoDoctor {
		t.Errorf("slot before doctor: got %v, want %v", err, ErrNoDoctor)
	}
	if err := s.ReadyToConfirm(); err == nil {
		t.Error("ReadyToConfirm on empty session should fail")
	}

	if err := s.SelectSpecialty("Cardiologist", models.Specialties); err != nil {
		t.Fatalf("SelectSpecialty: %v", err)
	}
	// exact, case-sensitive specialty match
	if err := s.SelectDoctor(models.Doctor{DoctorID: 6, Specialty: "cardiologist"}); err != ErrSpecialtyMismatch {
		t.Errorf("case-mismatched specialty: got %v, want %v", err, ErrSpecialtyMismatch)
	}
	if err := s.SelectDoctor(models.Doctor{DoctorID: 6, Specialty: "Dermatologist"}); err != ErrSpecialtyMismatch {
		t.Errorf("wrong specialty: got %v, want %v", err, ErrSpecialtyMismatch)
	}
}
