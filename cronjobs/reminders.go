package cronjobs

import (
	"fmt"
	"log"
	"os"
	"time"

	"health-connect/controllers"
	"health-connect/models"

	"github.com/go-co-op/gocron"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// ReminderService sends medication refill and consultation reminders
type ReminderService struct {
	DB *gorm.DB
}

func NewReminderService(db *gorm.DB) *ReminderService {
	return &ReminderService{DB: db}
}

// StartReminderCron schedules the reminder workers: consultation
// reminders every 15 minutes, refill reminders once a day.
func (rs *ReminderService) StartReminderCron() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(15).Minutes().Do(func() {
		if err := rs.SendConsultationReminders(); err != nil {
			log.Printf("Error sending consultation reminders: %v", err)
		}
	})

	scheduler.Every(1).Day().At("08:00").Do(func() {
		if err := rs.SendRefillReminders(); err != nil {
			log.Printf("Error sending refill reminders: %v", err)
		}
	})

	scheduler.StartAsync()
	log.Println("Reminder cron jobs started")

	return scheduler
}

// SendConsultationReminders notifies patients whose confirmed
// consultations start roughly three hours from now.
func (rs *ReminderService) SendConsultationReminders() error {
	now := time.Now()
	startWindow := now.Add(2*time.Hour + 53*time.Minute)
	endWindow := now.Add(3*time.Hour + 7*time.Minute)

	var consultations []models.Consultation
	if err := rs.DB.
		Where("status = ? AND date BETWEEN ? AND ?",
			models.ConsultationStatusConfirmed, startWindow, endWindow).
		Find(&consultations).Error; err != nil {
		return fmt.Errorf("failed to query upcoming consultations: %w", err)
	}

	for _, consultation := range consultations {
		var patient models.Patient
		if err := rs.DB.First(&patient, consultation.PatientID).Error; err != nil {
			log.Printf("Failed to find patient for consultation ID %d: %v", consultation.ConsultationID, err)
			continue
		}

		body := fmt.Sprintf("Reminder: your %s consultation with %s starts at %s today.",
			consultation.Type, consultation.DoctorName, consultation.TimeSlot)

		if err := controllers.SendEmail("Consultation reminder", body, patient.Email, "", nil); err != nil {
			log.Printf("Failed to email reminder to patient %d: %v", patient.PatientID, err)
		}
		if patient.Phone != "" {
			if err := sendSMS(patient.Phone, body); err != nil {
				log.Printf("Failed to SMS reminder to patient %d: %v", patient.PatientID, err)
			}
		}
	}
	return nil
}

// SendRefillReminders emails patients whose flagged medications run out
// within the next three days.
func (rs *ReminderService) SendRefillReminders() error {
	today := time.Now().Truncate(24 * time.Hour)
	cutoff := today.AddDate(0, 0, 3)

	var medications []models.Medication
	if err := rs.DB.
		Where("refill_reminder = ? AND refill_date IS NOT NULL AND refill_date BETWEEN ? AND ?",
			true, today, cutoff).
		Find(&medications).Error; err != nil {
		return fmt.Errorf("failed to query medications due for refill: %w", err)
	}

	for _, med := range medications {
		var patient models.Patient
		if err := rs.DB.First(&patient, med.PatientID).Error; err != nil {
			log.Printf("Failed to find patient for medication ID %d: %v", med.MedicationID, err)
			continue
		}

		body := fmt.Sprintf("Your medication %s (%s) is due for a refill on %s.",
			med.Name, med.Dosage, med.RefillDate.Format("2006-01-02"))

		if err := controllers.SendEmail("Medication refill reminder", body, patient.Email, "", nil); err != nil {
			log.Printf("Failed to email refill reminder to patient %d: %v", patient.PatientID, err)
		}
	}
	return nil
}

// sendSMS delivers a reminder over Twilio. Skipped silently when the
// Twilio environment is not configured.
func sendSMS(to, body string) error {
	accountSID := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTHTOKEN")
	from := os.Getenv("TWILIO_PHONENUMBER")
	if accountSID == "" || authToken == "" || from == "" {
		return nil
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(body)

	_, err := client.Api.CreateMessage(params)
	return err
}
