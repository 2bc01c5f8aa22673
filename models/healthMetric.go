package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	MetricBloodPressure = "bloodPressure"
	MetricBloodGlucose  = "bloodGlucose"
	MetricWeight        = "weight"
	MetricHeartRate     = "heartRate"
)

var MealStatuses = []string{"fasting", "before_meal", "after_meal"}
var ActivityLevels = []string{"resting", "light_activity", "after_exercise"}

type HealthMetric struct {
	MetricID  uint      `gorm:"primaryKey" json:"id"`
	PatientID uint      `json:"-" gorm:"not null;index"`
	Type      string    `json:"type" gorm:"not null"`
	Date      time.Time `json:"date" gorm:"not null"`
	Time      string    `json:"time"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`

	// Category-specific columns. Which of these are populated is
	// determined by Type; the JSON surface is the tagged union below.
	Systolic      *int     `json:"-"`
	Diastolic     *int     `json:"-"`
	Value         *float64 `json:"-"`
	Unit          string   `json:"-"`
	MealStatus    string   `json:"-"`
	ActivityLevel string   `json:"-"`
}

type BloodPressureValues struct {
	Systolic  int `json:"systolic"`
	Diastolic int `json:"diastolic"`
}

type BloodGlucoseValues struct {
	Value      float64 `json:"value"`
	Unit       string  `json:"unit"`
	MealStatus string  `json:"mealStatus"`
}

type WeightValues struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type HeartRateValues struct {
	Value         float64 `json:"value"`
	ActivityLevel string  `json:"activityLevel"`
}

// Values assembles the category-specific payload for the metric's type.
func (m HealthMetric) Values() any {
	switch m.Type {
	case MetricBloodPressure:
		v := BloodPressureValues{}
		if m.Systolic != nil {
			v.Systolic = *m.Systolic
		}
		if m.Diastolic != nil {
			v.Diastolic = *m.Diastolic
		}
		return v
	case MetricBloodGlucose:
		v := BloodGlucoseValues{Unit: m.Unit, MealStatus: m.MealStatus}
		if m.Value != nil {
			v.Value = *m.Value
		}
		return v
	case MetricWeight:
		v := WeightValues{Unit: m.Unit}
		if m.Value != nil {
			v.Value = *m.Value
		}
		return v
	case MetricHeartRate:
		v := HeartRateValues{ActivityLevel: m.ActivityLevel}
		if m.Value != nil {
			v.Value = *m.Value
		}
		return v
	}
	return nil
}

// SetValues decodes raw into the payload shape dictated by m.Type and
// stores it in the typed columns. Rejects payloads that don't fit the
// category.
func (m *HealthMetric) SetValues(raw json.RawMessage) error {
	dec := func(v any) error {
		d := json.NewDecoder(bytes.NewReader(raw))
		d.DisallowUnknownFields()
		return d.Decode(v)
	}

	switch m.Type {
	case MetricBloodPressure:
		var v BloodPressureValues
		if err := dec(&v); err != nil {
			return fmt.Errorf("invalid blood pressure values: %w", err)
		}
		if v.Systolic <= 0 || v.Diastolic <= 0 {
			return errors.New("systolic and diastolic readings are required")
		}
		m.Systolic, m.Diastolic = &v.Systolic, &v.Diastolic
	case MetricBloodGlucose:
		var v BloodGlucoseValues
		if err := dec(&v); err != nil {
			return fmt.Errorf("invalid blood glucose values: %w", err)
		}
		if v.Value <= 0 {
			return errors.New("glucose value is required")
		}
		if v.Unit == "" {
			v.Unit = "mg/dL"
		}
		if !contains(MealStatuses, v.MealStatus) {
			return errors.New("invalid meal status")
		}
		m.Value, m.Unit, m.MealStatus = &v.Value, v.Unit, v.MealStatus
	case MetricWeight:
		var v WeightValues
		if err := dec(&v); err != nil {
			return fmt.Errorf("invalid weight values: %w", err)
		}
		if v.Value <= 0 {
			return errors.New("weight value is required")
		}
		if v.Unit == "" {
			v.Unit = "kg"
		}
		m.Value, m.Unit = &v.Value, v.Unit
	case MetricHeartRate:
		var v HeartRateValues
		if err := dec(&v); err != nil {
			return fmt.Errorf("invalid heart rate values: %w", err)
		}
		if v.Value <= 0 {
			return errors.New("heart rate value is required")
		}
		if !contains(ActivityLevels, v.ActivityLevel) {
			return errors.New("invalid activity level")
		}
		m.Value, m.ActivityLevel = &v.Value, v.ActivityLevel
	default:
		return fmt.Errorf("unknown metric type %q", m.Type)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
