package models

import (
	"encoding/json"
	"testing"
)

func TestSetValuesBloodPressure(t *testing.T) {
	m := HealthMetric{Type: MetricBloodPressure}
	if err := m.SetValues(json.RawMessage(`{"systolic":125,"diastolic":82}`)); err != nil {
		t.Fatalf("SetValues: %v", err)
	}

	values, ok := m.Values().(BloodPressureValues)
	if !ok {
		t.Fatalf("Values() = %T, want BloodPressureValues", m.Values())
	}
	if values.Systolic != 125 || values.Diastolic != 82 {
		t.Errorf("values = %+v", values)
	}
}

func TestSetValuesRejectsMixedPayload(t *testing.T) {
	// payload shape is determined by the category tag: glucose fields on
	// a blood pressure reading must be rejected
	m := HealthMetric{Type: MetricBloodPressure}
	err := m.SetValues(json.RawMessage(`{"systolic":125,"diastolic":82,"mealStatus":"fasting"}`))
	if err == nil {
		t.Error("mixed payload accepted for blood pressure")
	}

	m = HealthMetric{Type: MetricWeight}
	if err := m.SetValues(json.RawMessage(`{"value":70.5,"activityLevel":"resting"}`)); err == nil {
		t.Error("heart rate field accepted on weight reading")
	}
}

func TestSetValuesGlucoseDefaultsAndValidation(t *testing.T) {
	m := HealthMetric{Type: MetricBloodGlucose}
	if err := m.SetValues(json.RawMessage(`{"value":95,"mealStatus":"fasting"}`)); err != nil {
		t.Fatalf("SetValues: %v", err)
	}
	if m.Unit != "mg/dL" {
		t.Errorf("unit = %q, want default mg/dL", m.Unit)
	}

	m = HealthMetric{Type: MetricBloodGlucose}
	if err := m.SetValues(json.RawMessage(`{"value":95,"mealStatus":"brunch"}`)); err == nil {
		t.Error("invalid meal status accepted")
	}
}

func TestSetValuesHeartRate(t *testing.T) {
	m := HealthMetric{Type: MetricHeartRate}
	if err := m.SetValues(json.RawMessage(`{"value":72,"activityLevel":"resting"}`)); err != nil {
		t.Fatalf("SetValues: %v", err)
	}

	m = HealthMetric{Type: MetricHeartRate}
	if err := m.SetValues(json.RawMessage(`{"value":72,"activityLevel":"sprinting"}`)); err == nil {
		t.Error("invalid activity level accepted")
	}
}

func TestSetValuesUnknownType(t *testing.T) {
	m := HealthMetric{Type: "temperature"}
	if err := m.SetValues(json.RawMessage(`{"value":37}`)); err == nil {
		t.Error("unknown metric type accepted")
	}
}

func TestValuesRoundTrip(t *testing.T) {
	m := HealthMetric{Type: MetricWeight}
	if err := m.SetValues(json.RawMessage(`{"value":70.5}`)); err != nil {
		t.Fatalf("SetValues: %v", err)
	}
	values, ok := m.Values().(WeightValues)
	if !ok {
		t.Fatalf("Values() = %T, want WeightValues", m.Values())
	}
	if values.Value != 70.5 || values.Unit != "kg" {
		t.Errorf("values = %+v", values)
	}
}
