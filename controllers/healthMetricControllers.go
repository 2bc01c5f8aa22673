package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"health-connect/configuration"
	"health-connect/models"

	"github.com/gin-gonic/gin"
)

// MetricStatus is the classification attached to every returned reading
type MetricStatus struct {
	Status string `json:"status"`
	Tier   string `json:"tier"`
}

// ClassifyBloodPressure applies the standard bands in order; the first
// matching band wins.
func ClassifyBloodPressure(systolic, diastolic int) MetricStatus {
	switch {
	case systolic < 120 && diastolic < 80:
		return MetricStatus{"Normal", "normal"}
	case systolic >= 120 && systolic <= 129 && diastolic < 80:
		return MetricStatus{"Elevated", "caution"}
	case (systolic >= 130 && systolic <= 139) || (diastolic >= 80 && diastolic <= 89):
		return MetricStatus{"Stage 1 Hypertension", "warning"}
	case systolic >= 140 || diastolic >= 90:
		return MetricStatus{"Stage 2 Hypertension", "critical"}
	}
	return MetricStatus{"Unknown", "unknown"}
}

// ClassifyBloodGlucose picks the threshold table by meal status
func ClassifyBloodGlucose(value float64, mealStatus string) MetricStatus {
	if mealStatus == "fasting" {
		switch {
		case value < 70:
			return MetricStatus{"Low", "warning"}
		case value <= 99:
			return MetricStatus{"Normal", "normal"}
		case value <= 125:
			return MetricStatus{"Prediabetes", "caution"}
		default:
			return MetricStatus{"Diabetes", "critical"}
		}
	}
	switch {
	case value < 70:
		return MetricStatus{"Low", "warning"}
	case value < 140:
		return MetricStatus{"Normal", "normal"}
	case value <= 199:
		return MetricStatus{"Elevated", "caution"}
	default:
		return MetricStatus{"High", "critical"}
	}
}

// ClassifyHeartRate only evaluates thresholds for resting readings; any
// other activity level gets a neutral label.
func ClassifyHeartRate(value float64, activityLevel string) MetricStatus {
	if activityLevel != "resting" {
		return MetricStatus{"Activity", "neutral"}
	}
	switch {
	case value < 60:
		return MetricStatus{"Low", "caution"}
	case value <= 100:
		return MetricStatus{"Normal", "normal"}
	default:
		return MetricStatus{"Elevated", "warning"}
	}
}

// ClassifyMetric dispatches on the reading's category tag
func ClassifyMetric(m models.HealthMetric) MetricStatus {
	switch m.Type {
	case models.MetricBloodPressure:
		if m.Systolic != nil && m.Diastolic != nil {
			return ClassifyBloodPressure(*m.Systolic, *m.Diastolic)
		}
	case models.MetricBloodGlucose:
		if m.Value != nil {
			return ClassifyBloodGlucose(*m.Value, m.MealStatus)
		}
	case models.MetricHeartRate:
		if m.Value != nil {
			return ClassifyHeartRate(*m.Value, m.ActivityLevel)
		}
	case models.MetricWeight:
		return MetricStatus{"Recorded", "neutral"}
	}
	return MetricStatus{"Unknown", "unknown"}
}

func metricResponse(m models.HealthMetric) gin.H {
	return gin.H{
		"id":        m.MetricID,
		"type":      m.Type,
		"date":      m.Date.Format("2006-01-02"),
		"time":      m.Time,
		"values":    m.Values(),
		"notes":     m.Notes,
		"status":    ClassifyMetric(m),
		"createdAt": m.CreatedAt,
	}
}

// GetHealthMetrics lists readings, optionally filtered by type, newest
// first, each with its classification.
func GetHealthMetrics(c *gin.Context) {
	patientID := c.GetUint("patientID")

	query := configuration.DB.Where("patient_id = ?", patientID)
	if metricType := c.Query("type"); metricType != "" {
		query = query.Where("type = ?", metricType)
	}

	var metrics []models.HealthMetric
	if err := query.Order("date desc, created_at desc").Find(&metrics).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Couldn't get health metrics"})
		return
	}

	data := make([]gin.H, 0, len(metrics))
	for _, m := range metrics {
		data = append(data, metricResponse(m))
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Health metrics fetched successfully",
		"data":    data,
	})
}

// AddHealthMetric records a reading. The values payload must match the
// shape of the category tag.
func AddHealthMetric(c *gin.Context) {
	var input struct {
		Type   string          `json:"type" binding:"required"`
		Date   string          `json:"date" binding:"required"`
		Time   string          `json:"time"`
		Values json.RawMessage `json:"values" binding:"required"`
		Notes  string          `json:"notes"`
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

	metric := models.HealthMetric{
		PatientID: c.GetUint("patientID"),
		Type:      input.Type,
		Date:      date,
		Time:      input.Time,
		Notes:     input.Notes,
	}
	if err := metric.SetValues(input.Values); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := configuration.DB.Create(&metric).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add health metric"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Health metric recorded successfully",
		"data":    metricResponse(metric),
	})
}

// DeleteHealthMetric hard-removes a reading
func DeleteHealthMetric(c *gin.Context) {
	patientID := c.GetUint("patientID")
	id := c.Param("id")

	var metric models.HealthMetric
	if err := configuration.DB.
		Where("metric_id = ? AND patient_id = ?", id, patientID).
		First(&metric).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Health metric not found"})
		return
	}

	if err := configuration.DB.Delete(&metric).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete health metric"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"Status": "Success", "Message": "Health metric deleted successfully"})
}
