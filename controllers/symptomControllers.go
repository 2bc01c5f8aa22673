package controllers

import (
	"net/http"
	"strings"

	"health-connect/configuration"
	"health-connect/models"

	"github.com/gin-gonic/gin"
)

// SearchSymptoms returns the symptom catalog, optionally narrowed by a
// case-insensitive substring search.
func SearchSymptoms(c *gin.Context) {
	var symptoms []models.Symptom
	if err := configuration.DB.Order("name asc").Find(&symptoms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Couldn't get symptoms"})
		return
	}

	term := strings.ToLower(c.Query("search"))
	if term != "" {
		matched := make([]models.Symptom, 0, len(symptoms))
		for _, s := range symptoms {
			if strings.Contains(strings.ToLower(s.Name), term) {
				matched = append(matched, s)
			}
		}
		symptoms = matched
	}

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Symptoms fetched successfully",
		"data":    symptoms,
	})
}

type PossibleCondition struct {
	Name        string   `json:"name"`
	Probability string   `json:"probability"`
	Description string   `json:"description"`
	SelfCare    []string `json:"selfCare"`
	Urgency     string   `json:"urgency"`
}

type Assessment struct {
	PossibleConditions  []PossibleCondition `json:"possibleConditions"`
	Recommendation      string              `json:"recommendation"`
	UrgencyLevel        string              `json:"urgencyLevel"`
	FollowUpRecommended bool                `json:"followUpRecommended"`
}

// Symptoms that always escalate the assessment regardless of reported
// severity.
var redFlagSymptoms = map[string]bool{
	"Chest pain":          true,
	"Shortness of breath": true,
}

var escalatingSymptoms = map[string]bool{
	"Fever":     true,
	"Vomiting":  true,
	"Dizziness": true,
}

// EvaluateAssessment is the triage rule set: red-flag symptoms or severe
// self-reported severity give high urgency; feverish or persistent
// complaints give medium; everything else is low. This is a triage
// placeholder, not medical inference.
func EvaluateAssessment(symptomNames []string, severity, duration string) Assessment {
	urgency := "low"
	for _, name := range symptomNames {
		if redFlagSymptoms[name] {
			urgency = "high"
		}
	}
	if severity == "severe" {
		urgency = "high"
	}
	if urgency == "low" {
		for _, name := range symptomNames {
			if escalatingSymptoms[name] {
				urgency = "medium"
			}
		}
		if duration == "more_than_week" {
			urgency = "medium"
		}
	}

	conditions := matchConditions(symptomNames, urgency)

	var recommendation string
	switch urgency {
	case "high":
		recommendation = "Your symptoms may indicate a condition requiring prompt medical attention. Please contact a healthcare provider or emergency services now."
	case "medium":
		recommendation = "Your symptoms warrant a consultation with a healthcare provider within the next day or two. Monitor for any worsening."
	default:
		recommendation = "Your symptoms suggest non-urgent conditions. Self-care measures are recommended, but consult a healthcare provider if symptoms worsen or persist beyond 7 days."
	}

	return Assessment{
		PossibleConditions:  conditions,
		Recommendation:      recommendation,
		UrgencyLevel:        urgency,
		FollowUpRecommended: urgency != "low" || duration == "more_than_week",
	}
}

func matchConditions(symptomNames []string, urgency string) []PossibleCondition {
	has := make(map[string]bool, len(symptomNames))
	for _, name := range symptomNames {
		has[name] = true
	}

	var conditions []PossibleCondition

	if urgency == "high" && (has["Chest pain"] || has["Shortness of breath"]) {
		conditions = append(conditions, PossibleCondition{
			Name:        "Cardiopulmonary condition",
			Probability: "Unknown",
			Description: "Chest pain or breathing difficulty can have serious causes that need professional evaluation.",
			SelfCare:    []string{"Do not wait for symptoms to pass", "Seek medical attention promptly"},
			Urgency:     "high",
		})
	}
	if has["Cough"] || has["Sore throat"] || has["Fever"] {
		conditions = append(conditions, PossibleCondition{
			Name:        "Common Cold",
			Probability: "High",
			Description: "A viral infection of the upper respiratory tract.",
			SelfCare: []string{
				"Rest and stay hydrated",
				"Take over-the-counter pain relievers if needed",
				"Use a humidifier to ease congestion",
			},
			Urgency: "low",
		})
	}
	if has["Nausea"] || has["Vomiting"] || has["Diarrhea"] || has["Abdominal pain"] {
		conditions = append(conditions, PossibleCondition{
			Name:        "Gastroenteritis",
			Probability: "Medium",
			Description: "An intestinal infection causing digestive upset.",
			SelfCare: []string{
				"Sip clear fluids to stay hydrated",
				"Ease back into bland foods",
				"Rest until symptoms settle",
			},
			Urgency: "low",
		})
	}
	if has["Headache"] || has["Fatigue"] || has["Muscle aches"] {
		conditions = append(conditions, PossibleCondition{
			Name:        "Tension or viral fatigue",
			Probability: "Medium",
			Description: "Stress, poor sleep or a mild viral illness commonly cause these symptoms together.",
			SelfCare: []string{
				"Prioritize sleep and hydration",
				"Limit screen time and take breaks",
			},
			Urgency: "low",
		})
	}
	if has["Rash"] {
		conditions = append(conditions, PossibleCondition{
			Name:        "Contact Dermatitis",
			Probability: "Medium",
			Description: "Skin irritation from an allergen or irritant.",
			SelfCare: []string{
				"Avoid suspected irritants",
				"Apply a cool compress or soothing lotion",
			},
			Urgency: "low",
		})
	}

	if len(conditions) == 0 {
		conditions = append(conditions, PossibleCondition{
			Name:        "Seasonal Allergies",
			Probability: "Medium",
			Description: "An allergic response to seasonal allergens like pollen.",
			SelfCare: []string{
				"Avoid known allergens",
				"Consider over-the-counter antihistamines",
				"Use a saline nasal spray to clear sinuses",
			},
			Urgency: "low",
		})
	}

	return conditions
}

// AssessSymptoms runs the triage rules over the selected symptoms
func AssessSymptoms(c *gin.Context) {
	var input struct {
		SymptomIDs         []uint `json:"symptom_ids" binding:"required"`
		Age                string `json:"age"`
		Gender             string `json:"gender"`
		Duration           string `json:"duration"`
		Severity           string `json:"severity"`
		ExistingConditions string `json:"existingConditions"`
		Medications        string `json:"medications"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(input.SymptomIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Select at least one symptom"})
		return
	}

	var symptoms []models.Symptom
	if err := configuration.DB.Where("symptom_id IN ?", input.SymptomIDs).Find(&symptoms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Couldn't get symptoms"})
		return
	}
	if len(symptoms) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown symptoms"})
		return
	}

	names := make([]string, 0, len(symptoms))
	for _, s := range symptoms {
		names = append(names, s.Name)
	}

	assessment := EvaluateAssessment(names, input.Severity, input.Duration)

	c.JSON(http.StatusOK, gin.H{
		"Status":  "Success",
		"Message": "Assessment completed",
		"data":    assessment,
	})
}
