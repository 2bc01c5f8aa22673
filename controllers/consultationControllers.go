package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"health-connect/configuration"
	"health-connect/models"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// GetConsultations lists the patient's consultations, soonest first
func GetConsultations(c *gin.Context) {
	patientID := c.GetUint("patientID")

	var consultations []models.Consultation
	if err := configuration.DB.
		Where("patient_id = ?", patientID).
		Order("date asc").
		Find(&consultations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Couldn't get consultations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Consultations fetched successfully",
		"data":    consultations,
	})
}

// CancelConsultation moves a pending or confirmed consultation to
// cancelled, freeing its slot for other patients.
func CancelConsultation(c *gin.Context) {
	patientID := c.GetUint("patientID")
	id := c.Param("id")

	var consultation models.Consultation
	if err := configuration.DB.
		Where("consultation_id = ? AND patient_id = ?", id, patientID).
		First(&consultation).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Consultation not found"})
		return
	}

	if consultation.Status != models.ConsultationStatusPending &&
		consultation.Status != models.ConsultationStatusConfirmed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only pending or confirmed consultations can be cancelled"})
		return
	}

	consultation.Status = models.ConsultationStatusCancelled
	if err := configuration.DB.Save(&consultation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel consultation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Consultation cancelled",
		"data":    consultation,
	})
}

// sendBookingConfirmation emails the patient a confirmation with a PDF
// summary attached. Best effort, callers log failures.
func sendBookingConfirmation(booking models.Consultation, patient models.Patient) error {
	pdfSummary, err := generateConsultationPDF(booking, patient)
	if err != nil {
		return err
	}

	msg := fmt.Sprintf(
		"Your %s consultation with %s (%s) on %s at %s is confirmed.",
		booking.Type, booking.DoctorName, booking.Specialty,
		booking.Date.Format("2006-01-02"), booking.TimeSlot)

	return SendEmail("Consultation confirmed", msg, patient.Email, "consultation.pdf", pdfSummary)
}

// generateConsultationPDF renders the booking confirmation document
func generateConsultationPDF(booking models.Consultation, patient models.Patient) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 100, 80)
	pdf.CellFormat(0, 10, "HealthConnect - Teleconsultation Booking", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Consultation Confirmation", "1", 1, "C", false, 0, "")
	addDetail(pdf, "Patient", patient.FirstName+" "+patient.LastName, true)
	addDetail(pdf, "Doctor", booking.DoctorName, true)
	addDetail(pdf, "Specialty", booking.Specialty, true)
	addDetail(pdf, "Date", booking.Date.Format("2006-01-02"), true)
	addDetail(pdf, "Time Slot", booking.TimeSlot, true)
	addDetail(pdf, "Type", booking.Type, false)
	addDetail(pdf, "Status", booking.Status, false)
	if booking.Reason != "" {
		addDetail(pdf, "Reason", booking.Reason, false)
	}

	pdf.SetY(pdf.GetY() + 8)
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 5, "Please join the consultation a few minutes early. You can reschedule or cancel from the portal.", "", "L", false)

	pdf.SetY(pdf.GetY() + 12)
	pdf.CellFormat(0, 10, "This is a computer generated document", "", 1, "R", false, 0, "")

	var pdfBuffer bytes.Buffer
	if err := pdf.Output(&pdfBuffer); err != nil {
		return nil, err
	}
	return pdfBuffer.Bytes(), nil
}

// addDetail adds a label/value line to the PDF
func addDetail(pdf *gofpdf.Fpdf, label, value string, isHeader bool) {
	if isHeader {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetFillColor(255, 255, 255)
	} else {
		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
	}
	pdf.CellFormat(45, 10, label, "1", 0, "", false, 0, "")
	pdf.CellFormat(0, 10, value, "1", 1, "", false, 0, "")
}
