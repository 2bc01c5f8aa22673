package controllers

import (
	"net/http"
	"time"

	"health-connect/configuration"
	"health-connect/models"

	"github.com/gin-gonic/gin"
)

// GetDashboard aggregates the patient's home view: upcoming
// consultations, active medications with today's adherence, and the
// latest reading of each metric type.
func GetDashboard(c *gin.Context) {
	patientID := c.GetUint("patientID")
	now := time.Now()

	var upcoming []models.Consultation
	if err := configuration.DB.
		Where("patient_id = ? AND date >= ? AND (status = ? OR status = ?)",
			patientID, now,
			models.ConsultationStatusPending, models.ConsultationStatusConfirmed).
		Order("date asc").
		Limit(3).
		Find(&upcoming).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Couldn't get consultations"})
		return
	}

	today := now.Truncate(24 * time.Hour)

	var medications []models.Medication
	if err := configuration.DB.
		Where("patient_id = ? AND (end_date IS NULL OR end_date >= ?)", patientID, today).
		Order("created_at asc").
		Find(&medications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Couldn't get medications"})
		return
	}

	medsToday := make([]gin.H, 0, len(medications))
	for _, med := range medications {
		var entry models.AdherenceEntry
		takenToday := false
		if err := configuration.DB.
			Where("medication_id = ? AND date = ?", med.MedicationID, today).
			First(&entry).Error; err == nil {
			takenToday = entry.Taken
		}
		medsToday = append(medsToday, gin.H{
			"medication": med,
			"takenToday": takenToday,
		})
	}

	latestMetrics := make(map[string]any)
	for _, metricType := range []string{
		models.MetricBloodPressure, models.MetricBloodGlucose,
		models.MetricWeight, models.MetricHeartRate,
	} {
		var metric models.HealthMetric
		if err := configuration.DB.
			Where("patient_id = ? AND type = ?", patientID, metricType).
			Order("date desc, created_at desc").
			First(&metric).Error; err == nil {
			latestMetrics[metricType] = metricResponse(metric)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"Status": "Success",
		"data": gin.H{
			"upcomingConsultations": upcoming,
			"medications":           medsToday,
			"latestMetrics":         latestMetrics,
		},
	})
}
