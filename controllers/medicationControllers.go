package controllers

import (
	"net/http"
	"time"

	"health-connect/configuration"
	"health-connect/models"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

type medicationInput struct {
	Name           string   `json:"name" binding:"required"`
	Dosage         string   `json:"dosage" binding:"required"`
	Frequency      string   `json:"frequency" binding:"required"`
	TimeOfDay      []string `json:"timeOfDay"`
	StartDate      string   `json:"startDate" binding:"required"`
	EndDate        string   `json:"endDate"`
	Instructions   string   `json:"instructions"`
	RefillDate     string   `json:"refillDate"`
	RefillReminder bool     `json:"refillReminder"`
}

func (in medicationInput) toMedication(patientID uint) (models.Medication, string) {
	if !containsString(models.MedicationFrequencies, in.Frequency) {
		return models.Medication{}, "Invalid frequency"
	}
	for _, tod := range in.TimeOfDay {
		if !containsString(models.TimesOfDay, tod) {
			return models.Medication{}, "Invalid time of day"
		}
	}

	start, err := time.Parse("2006-01-02", in.StartDate)
	if err != nil {
		return models.Medication{}, "Invalid start date format"
	}

	med := models.Medication{
		PatientID:      patientID,
		Name:           in.Name,
		Dosage:         in.Dosage,
		Frequency:      in.Frequency,
		TimeOfDay:      pq.StringArray(in.TimeOfDay),
		StartDate:      start,
		Instructions:   in.Instructions,
		RefillReminder: in.RefillReminder,
	}

	if in.EndDate != "" {
		end, err := time.Parse("2006-01-02", in.EndDate)
		if err != nil {
			return models.Medication{}, "Invalid end date format"
		}
		med.EndDate = &end
	}
	if in.RefillDate != "" {
		refill, err := time.Parse("2006-01-02", in.RefillDate)
		if err != nil {
			return models.Medication{}, "Invalid refill date format"
		}
		med.RefillDate = &refill
	}
	return med, ""
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// GetMedications lists the patient's medications
func GetMedications(c *gin.Context) {
	patientID := c.GetUint("patientID")

	var medications []models.Medication
	if err := configuration.DB.
		Where("patient_id = ?", patientID).
		Order("created_at asc").
		Find(&medications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Couldn't get medications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Medications fetched successfully",
		"data":    medications,
	})
}

// AddMedication creates a medication record
func AddMedication(c *gin.Context) {
	var input medicationInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	med, errMsg := input.toMedication(c.GetUint("patientID"))
	if errMsg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}

	if err := configuration.DB.Create(&med).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add medication"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Medication added successfully",
		"data":    med,
	})
}

// UpdateMedication replaces a medication record, keyed by id
func UpdateMedication(c *gin.Context) {
	patientID := c.GetUint("patientID")
	id := c.Param("id")

	var existing models.Medication
	if err := configuration.DB.
		Where("medication_id = ? AND patient_id = ?", id, patientID).
		First(&existing).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Medication not found"})
		return
	}

	var input medicationInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	med, errMsg := input.toMedication(patientID)
	if errMsg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMsg})
		return
	}
	med.MedicationID = existing.MedicationID
	med.CreatedAt = existing.CreatedAt

	if err := configuration.DB.Save(&med).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update medication"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Medication updated successfully",
		"data":    med,
	})
}

// DeleteMedication hard-removes a medication and its adherence ledger
func DeleteMedication(c *gin.Context) {
	patientID := c.GetUint("patientID")
	id := c.Param("id")

	var med models.Medication
	if err := configuration.DB.
		Where("medication_id = ? AND patient_id = ?", id, patientID).
		First(&med).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Medication not found"})
		return
	}

	if err := configuration.DB.Where("medication_id = ?", med.MedicationID).
		Delete(&models.AdherenceEntry{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete medication"})
		return
	}
	if err := configuration.DB.Delete(&med).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete medication"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Medication deleted successfully"})
}

// ToggleAdherence flips (or sets) the taken flag for one calendar day of
// the trailing week. Entries are keyed by explicit date, never by
// position.
func ToggleAdherence(c *gin.Context) {
	patientID := c.GetUint("patientID")
	id := c.Param("id")

	var input struct {
		Date  string `json:"date" binding:"required"`
		Taken *bool  `json:"taken"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	day, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	today := time.Now().Truncate(24 * time.Hour)
	if day.After(today) || day.Before(today.AddDate(0, 0, -6)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date must fall within the last 7 days"})
		return
	}

	var med models.Medication
	if err := configuration.DB.
		Where("medication_id = ? AND patient_id = ?", id, patientID).
		First(&med).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Medication not found"})
		return
	}

	var entry models.AdherenceEntry
	err = configuration.DB.
		Where("medication_id = ? AND date = ?", med.MedicationID, day).
		First(&entry).Error
	if err != nil {
		entry = models.AdherenceEntry{MedicationID: med.MedicationID, Date: day, Taken: true}
		if input.Taken != nil {
			entry.Taken = *input.Taken
		}
		if err := configuration.DB.Create(&entry).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record adherence"})
			return
		}
	} else {
		if input.Taken != nil {
			entry.Taken = *input.Taken
		} else {
			entry.Taken = !entry.Taken
		}
		if err := configuration.DB.Save(&entry).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record adherence"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"Status": "Success", "data": entry})
}

// GetAdherence returns the trailing 7-day ledger and its percentage
func GetAdherence(c *gin.Context) {
	patientID := c.GetUint("patientID")
	id := c.Param("id")

	var med models.Medication
	if err := configuration.DB.
		Where("medication_id = ? AND patient_id = ?", id, patientID).
		First(&med).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Medication not found"})
		return
	}

	today := time.Now().Truncate(24 * time.Hour)
	weekStart := today.AddDate(0, 0, -6)

	var entries []models.AdherenceEntry
	if err := configuration.DB.
		Where("medication_id = ? AND date >= ? AND date <= ?", med.MedicationID, weekStart, today).
		Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Couldn't get adherence log"})
		return
	}

	ledger := buildWeekLedger(entries, today)

	c.JSON(http.StatusOK, gin.H{
		"Status":     "Success",
		"data":       ledger,
		"percentage": models.AdherencePercentage(ledger),
	})
}

// buildWeekLedger fills the trailing 7 calendar days oldest-first, with
// days lacking an entry defaulting to not taken.
func buildWeekLedger(entries []models.AdherenceEntry, today time.Time) []models.AdherenceEntry {
	byDay := make(map[string]models.AdherenceEntry, len(entries))
	for _, e := range entries {
		byDay[e.Date.Format("2006-01-02")] = e
	}

	ledger := make([]models.AdherenceEntry, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		if e, ok := byDay[day.Format("2006-01-02")]; ok {
			ledger = append(ledger, e)
		} else {
			ledger = append(ledger, models.AdherenceEntry{Date: day, Taken: false})
		}
	}
	return ledger
}
