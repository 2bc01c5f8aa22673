package controllers

import "testing"

func TestEvaluateAssessmentUrgency(t *testing.T) {
	tests := []struct {
		name     string
		symptoms []string
		severity string
		duration string
		want     string
	}{
		{"mild cold", []string{"Cough", "Sore throat"}, "mild", "few_days", "low"},
		{"red flag symptom", []string{"Chest pain"}, "mild", "few_days", "high"},
		{"breathing trouble", []string{"Shortness of breath", "Cough"}, "moderate", "few_days", "high"},
		{"severe severity", []string{"Headache"}, "severe", "few_days", "high"},
		{"fever escalates", []string{"Fever", "Fatigue"}, "moderate", "few_days", "medium"},
		{"long duration escalates", []string{"Headache"}, "mild", "more_than_week", "medium"},
		{"plain fatigue", []string{"Fatigue"}, "moderate", "few_days", "low"},
	}

	for _, tt := range tests {
		got := EvaluateAssessment(tt.symptoms, tt.severity, tt.duration)
		if got.UrgencyLevel != tt.want {
			t.Errorf("%s: urgency = %q, want %q", tt.name, got.UrgencyLevel, tt.want)
		}
		if len(got.PossibleConditions) == 0 {
			t.Errorf("%s: no conditions returned", tt.name)
		}
		if got.Recommendation == "" {
			t.Errorf("%s: empty recommendation", tt.name)
		}
	}
}

func TestEvaluateAssessmentFollowUp(t *testing.T) {
	low := EvaluateAssessment([]string{"Fatigue"}, "mild", "few_days")
	if low.FollowUpRecommended {
		t.Error("short mild complaint should not recommend follow-up")
	}

	persistent := EvaluateAssessment([]string{"Fatigue"}, "mild", "more_than_week")
	if !persistent.FollowUpRecommended {
		t.Error("persistent complaint should recommend follow-up")
	}

	urgent := EvaluateAssessment([]string{"Chest pain"}, "mild", "few_days")
	if !urgent.FollowUpRecommended {
		t.Error("high urgency should recommend follow-up")
	}
}

func TestEvaluateAssessmentConditions(t *testing.T) {
	got := EvaluateAssessment([]string{"Cough", "Fever"}, "mild", "few_days")
	found := false
	for _, c := range got.PossibleConditions {
		if c.Name == "Common Cold" {
			found = true
		}
	}
	if !found {
		t.Error("cough+fever should suggest Common Cold")
	}

	// unmatched symptoms still produce a fallback condition
	got = EvaluateAssessment([]string{"Joint pain"}, "mild", "few_days")
	if len(got.PossibleConditions) == 0 {
		t.Error("fallback condition missing for unmatched symptoms")
	}
}
