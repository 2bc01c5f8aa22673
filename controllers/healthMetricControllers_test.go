package controllers

import "testing"

func TestClassifyBloodPressure(t *testing.T) {
	tests := []struct {
		systolic, diastolic int
		want                string
	}{
		{119, 79, "Normal"},
		{125, 78, "Elevated"},
		{135, 85, "Stage 1 Hypertension"},
		{145, 95, "Stage 2 Hypertension"},
		// boundary: 120 systolic leaves Normal even with normal diastolic
		{120, 79, "Elevated"},
		{129, 79, "Elevated"},
		// elevated systolic with stage-1 diastolic is stage 1
		{125, 85, "Stage 1 Hypertension"},
		{130, 70, "Stage 1 Hypertension"},
		{139, 89, "Stage 1 Hypertension"},
		{140, 70, "Stage 2 Hypertension"},
		{110, 90, "Stage 2 Hypertension"},
		{119, 80, "Stage 1 Hypertension"},
	}

	for _, tt := range tests {
		got := ClassifyBloodPressure(tt.systolic, tt.diastolic)
		if got.Status != tt.want {
			t.Errorf("ClassifyBloodPressure(%d, %d) = %q, want %q",
				tt.systolic, tt.diastolic, got.Status, tt.want)
		}
	}
}

func TestClassifyBloodGlucose(t *testing.T) {
	tests := []struct {
		value      float64
		mealStatus string
		want       string
	}{
		{65, "fasting", "Low"},
		{70, "fasting", "Normal"},
		{99, "fasting", "Normal"},
		{100, "fasting", "Prediabetes"},
		{125, "fasting", "Prediabetes"},
		{126, "fasting", "Diabetes"},
		{65, "after_meal", "Low"},
		{139, "after_meal", "Normal"},
		{140, "after_meal", "Elevated"},
		{199, "before_meal", "Elevated"},
		{200, "after_meal", "High"},
	}

	for _, tt := range tests {
		got := ClassifyBloodGlucose(tt.value, tt.mealStatus)
		if got.Status != tt.want {
			t.Errorf("ClassifyBloodGlucose(%v, %q) = %q, want %q",
				tt.value, tt.mealStatus, got.Status, tt.want)
		}
	}
}

func TestClassifyHeartRate(t *testing.T) {
	tests := []struct {
		value         float64
		activityLevel string
		want          string
	}{
		{55, "resting", "Low"},
		{60, "resting", "Normal"},
		{100, "resting", "Normal"},
		{101, "resting", "Elevated"},
		// non-resting readings get the neutral label, no thresholds
		{140, "light_activity", "Activity"},
		{55, "after_exercise", "Activity"},
	}

	for _, tt := range tests {
		got := ClassifyHeartRate(tt.value, tt.activityLevel)
		if got.Status != tt.want {
			t.Errorf("ClassifyHeartRate(%v, %q) = %q, want %q",
				tt.value, tt.activityLevel, got.Status, tt.want)
		}
	}
}
