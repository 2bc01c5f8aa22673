package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"health-connect/configuration"
	"health-connect/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errSlotTaken = errors.New("slot already booked")

const (
	// A wizard session lives half an hour between interactions.
	bookingSessionTTL = 30 * time.Minute
	// A selected slot is held for five minutes while the patient confirms.
	slotHoldTTL = 5 * time.Minute

	calendarDays = 14
)

func bookingSessionKey(patientID uint) string {
	return fmt.Sprintf("booking:%d", patientID)
}

func slotHoldKey(doctorID uint, date, timeSlot string) string {
	return fmt.Sprintf("hold:%d:%s:%s", doctorID, date, timeSlot)
}

func loadBookingSession(patientID uint) (*BookingSession, error) {
	value, err := configuration.GetRedis(bookingSessionKey(patientID))
	if err != nil {
		return nil, err
	}
	var session BookingSession
	if err := json.Unmarshal([]byte(value), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func saveBookingSession(session *BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return configuration.SetRedis(bookingSessionKey(session.PatientID), data, bookingSessionTTL)
}

// loadOrStartBookingSession returns the patient's wizard state, creating
// a fresh one when none exists or the old one expired.
func loadOrStartBookingSession(patientID uint) *BookingSession {
	if session, err := loadBookingSession(patientID); err == nil {
		return session
	}
	return NewBookingSession(uuid.NewString(), patientID)
}

// splits an availability window string into start and end time
func splitAvailabilityTime(availabilityTime string) (startTime, endTime string) {
	parts := strings.Split(availabilityTime, "-")
	if len(parts) != 2 {
		return "", ""
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}

// Dividing time between start and end time into slots with the specified
// interval
func divideSlots(startTime, endTime string, interval time.Duration) []string {
	start, _ := time.Parse("15:04", startTime)
	end, _ := time.Parse("15:04", endTime)

	var slots []string
	for t := start; t.Before(end); t = t.Add(interval) {
		slotEnd := t.Add(interval)
		slots = append(slots, fmt.Sprintf("%s-%s", t.Format("15:04"), slotEnd.Format("15:04")))
	}
	return slots
}

// filterSlots removes every slot present in taken from slots.
func filterSlots(slots []string, taken map[string]bool) []string {
	open := make([]string, 0, len(slots))
	for _, slot := range slots {
		if !taken[slot] {
			open = append(open, slot)
		}
	}
	return open
}

// slotStart resolves a slot label like "10:30-11:00" on the given day to
// the timestamp the consultation starts at.
func slotStart(date time.Time, timeSlot string) (time.Time, error) {
	startLabel, _ := splitAvailabilityTime(timeSlot)
	start, err := time.Parse("15:04", startLabel)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		start.Hour(), start.Minute(), 0, 0, date.Location()), nil
}

// bookedSlotsFor returns the slot labels already taken by pending or
// confirmed consultations for the doctor on the given day.
func bookedSlotsFor(doctorID uint, date time.Time) (map[string]bool, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var bookings []models.Consultation
	err := configuration.DB.
		Where("doctor_id = ? AND date >= ? AND date < ? AND (status = ? OR status = ?)",
			doctorID, dayStart, dayEnd,
			models.ConsultationStatusPending, models.ConsultationStatusConfirmed).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}

	taken := make(map[string]bool)
	for _, booking := range bookings {
		taken[booking.TimeSlot] = true
	}
	return taken, nil
}

// heldSlotsFor marks slots currently held by other patients' wizards.
func heldSlotsFor(doctorID uint, dateStr string, slots []string, ownSessionID string) map[string]bool {
	held := make(map[string]bool)
	for _, slot := range slots {
		holder, err := configuration.GetRedis(slotHoldKey(doctorID, dateStr, slot))
		if err == nil && holder != ownSessionID {
			held[slot] = true
		}
	}
	return held
}

// GetSpecialties lists the bookable specialties
func GetSpecialties(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": models.Specialties})
}

// GetDoctorsBySpecialty returns the doctors whose specialty equals the
// path parameter exactly.
func GetDoctorsBySpecialty(c *gin.Context) {
	specialty := c.Param("specialty")

	var doctors []models.Doctor
	if err := configuration.DB.Where("specialty = ?", specialty).Find(&doctors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Couldn't get doctor details"})
		return
	}
	if len(doctors) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No doctors found with the specified specialty"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Doctors list fetched successfully",
		"data":    doctors,
	})
}

// GetBookingCalendar offers the next 14 consecutive days. Every doctor is
// offered the full range; days without availability simply yield no slots.
func GetBookingCalendar(c *gin.Context) {
	today := time.Now()
	dates := make([]gin.H, 0, calendarDays)
	for i := 0; i < calendarDays; i++ {
		day := today.AddDate(0, 0, i)
		dates = append(dates, gin.H{
			"date":    day.Format("2006-01-02"),
			"weekday": day.Weekday().String(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": dates})
}

// GetAvailableTimeSlots returns the open 30-minute slots for a doctor on
// a date: the doctor's availability window minus booked and held slots.
// Deterministic per (doctor, date).
func GetAvailableTimeSlots(c *gin.Context) {
	doctorID := c.Param("doctor_id")
	dateStr := c.Query("date")

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	if date.Before(time.Now().Truncate(24 * time.Hour)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date cannot be in the past"})
		return
	}

	var doctor models.Doctor
	if err := configuration.DB.First(&doctor, doctorID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}

	startTime, endTime := splitAvailabilityTime(doctor.AvailableTime)
	slots := divideSlots(startTime, endTime, 30*time.Minute)

	booked, err := bookedSlotsFor(doctor.DoctorID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}
	open := filterSlots(slots, booked)

	session := loadOrStartBookingSession(c.GetUint("patientID"))
	open = filterSlots(open, heldSlotsFor(doctor.DoctorID, dateStr, open, session.SessionID))

	c.JSON(http.StatusOK, gin.H{
		"message":              "Time slots fetched successfully",
		"date":                 dateStr,
		"available_time_slots": open,
	})
}

// GetBookingSession returns the current wizard state
func GetBookingSession(c *gin.Context) {
	session := loadOrStartBookingSession(c.GetUint("patientID"))
	c.JSON(http.StatusOK, gin.H{"data": session})
}

// SelectBookingSpecialty is wizard step 1. Re-selecting clears doctor,
// date and slot.
func SelectBookingSpecialty(c *gin.Context) {
	var input struct {
		Specialty string `json:"specialty" binding:"required"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := loadOrStartBookingSession(c.GetUint("patientID"))
	releaseSlotHold(session)

	if err := session.SelectSpecialty(input.Specialty, models.Specialties); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := saveBookingSession(session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save booking progress"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": session})
}

// SelectBookingDoctor is wizard step 2
func SelectBookingDoctor(c *gin.Context) {
	var input struct {
		DoctorID uint `json:"doctor_id" binding:"required"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := loadOrStartBookingSession(c.GetUint("patientID"))

	var doctor models.Doctor
	if err := configuration.DB.First(&doctor, input.DoctorID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}

	releaseSlotHold(session)

	if err := session.SelectDoctor(doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := saveBookingSession(session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save booking progress"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": session})
}

// SelectBookingSlot is wizard step 3. Placing a selection takes a
// short-lived hold on the slot so two wizards cannot carry the same slot
// into confirmation.
func SelectBookingSlot(c *gin.Context) {
	var input struct {
		Date     string `json:"date" binding:"required"`
		TimeSlot string `json:"time" binding:"required"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}
	if date.Before(time.Now().Truncate(24 * time.Hour)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date cannot be in the past"})
		return
	}
	if date.After(time.Now().AddDate(0, 0, calendarDays)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date is beyond the booking calendar"})
		return
	}

	session := loadOrStartBookingSession(c.GetUint("patientID"))
	if session.DoctorID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrNoDoctor.Error()})
		return
	}

	var doctor models.Doctor
	if err := configuration.DB.First(&doctor, session.DoctorID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}

	startTime, endTime := splitAvailabilityTime(doctor.AvailableTime)
	slots := divideSlots(startTime, endTime, 30*time.Minute)
	booked, err := bookedSlotsFor(doctor.DoctorID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bookings"})
		return
	}

	valid := false
	for _, slot := range filterSlots(slots, booked) {
		if slot == input.TimeSlot {
			valid = true
			break
		}
	}
	if !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Appointment time slot not available"})
		return
	}

	// Move the hold before taking the new one
	releaseSlotHold(session)

	acquired, err := configuration.SetNXRedis(
		slotHoldKey(doctor.DoctorID, input.Date, input.TimeSlot), session.SessionID, slotHoldTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reserve time slot"})
		return
	}
	if !acquired {
		c.JSON(http.StatusConflict, gin.H{"error": "Time slot was just taken, please pick another"})
		return
	}

	if err := session.SelectSlot(input.Date, input.TimeSlot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := saveBookingSession(session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save booking progress"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": session})
}

// ConfirmBooking is wizard step 4: materialize the consultation with
// status confirmed, clear the wizard and notify the patient.
func ConfirmBooking(c *gin.Context) {
	var input struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Type == "" {
		input.Type = models.ConsultationTypeVideo
	}
	if input.Type != models.ConsultationTypeVideo && input.Type != models.ConsultationTypePhone {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Consultation type must be video or phone"})
		return
	}

	patientID := c.GetUint("patientID")
	session, err := loadBookingSession(patientID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No booking in progress"})
		return
	}
	if err := session.ReadyToConfirm(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", session.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}
	scheduledAt, err := slotStart(date, session.TimeSlot)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time slot"})
		return
	}

	booking := models.Consultation{
		PatientID:  patientID,
		DoctorID:   session.DoctorID,
		DoctorName: session.DoctorName,
		Specialty:  session.Specialty,
		Date:       scheduledAt,
		TimeSlot:   session.TimeSlot,
		Type:       input.Type,
		Status:     models.ConsultationStatusConfirmed,
		Reason:     input.Reason,
	}

	// Re-check slot uniqueness inside the transaction so a hold that
	// expired mid-wizard cannot double book.
	err = configuration.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Consultation
		err := tx.Where("doctor_id = ? AND date = ? AND (status = ? OR status = ?)",
			booking.DoctorID, booking.Date,
			models.ConsultationStatusPending, models.ConsultationStatusConfirmed).
			First(&existing).Error
		if err == nil {
			return errSlotTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		if errors.Is(err, errSlotTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Another appointment has already been booked for the same date and time slot with the doctor"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book consultation"})
		return
	}

	releaseSlotHold(session)
	if err := configuration.DelRedis(bookingSessionKey(patientID)); err != nil {
		log.Println("Failed to clear booking session:", err)
	}

	var patient models.Patient
	if err := configuration.DB.First(&patient, patientID).Error; err == nil {
		go func() {
			if err := sendBookingConfirmation(booking, patient); err != nil {
				log.Println("Failed to send confirmation email:", err)
			}
		}()
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Consultation booked successfully",
		"Data":    booking,
	})
}

// AbandonBooking discards the wizard and releases any held slot
func AbandonBooking(c *gin.Context) {
	patientID := c.GetUint("patientID")
	if session, err := loadBookingSession(patientID); err == nil {
		releaseSlotHold(session)
	}
	if err := configuration.DelRedis(bookingSessionKey(patientID)); err != nil {
		log.Println("Failed to clear booking session:", err)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

// releaseSlotHold frees the slot hold owned by this session, if any
func releaseSlotHold(session *BookingSession) {
	if session.DoctorID == 0 || session.Date == "" || session.TimeSlot == "" {
		return
	}
	key := slotHoldKey(session.DoctorID, session.Date, session.TimeSlot)
	holder, err := configuration.GetRedis(key)
	if err != nil || holder != session.SessionID {
		return
	}
	if err := configuration.DelRedis(key); err != nil {
		log.Println("Failed to release slot hold:", err)
	}
}
