package controllers

import (
	"net/http"
	"time"

	"health-connect/configuration"
	"health-connect/models"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the full account record, hash excluded
func GetProfile(c *gin.Context) {
	patientID := c.GetUint("patientID")

	var patient models.Patient
	if err := configuration.DB.First(&patient, patientID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	patient.Password = ""
	c.JSON(http.StatusOK, patient)
}

type profileUpdateInput struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zipCode"`

	EmergencyContact *struct {
		Name         string `json:"name"`
		Relationship string `json:"relationship"`
		Phone        string `json:"phone"`
	} `json:"emergencyContact"`

	Allergies   string `json:"allergies"`
	Medications string `json:"medications"`
	Conditions  string `json:"conditions"`
}

// UpdateProfile applies a partial update: only fields present in the
// request body are written.
func UpdateProfile(c *gin.Context) {
	patientID := c.GetUint("patientID")

	var input profileUpdateInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var patient models.Patient
	if err := configuration.DB.First(&patient, patientID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	updates := map[string]any{}
	if input.FirstName != "" {
		updates["first_name"] = input.FirstName
	}
	if input.LastName != "" {
		updates["last_name"] = input.LastName
	}
	if input.Phone != "" {
		updates["phone"] = input.Phone
	}
	if input.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", input.DateOfBirth)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date of birth format"})
			return
		}
		updates["date_of_birth"] = dob
	}
	if input.Gender != "" {
		updates["gender"] = input.Gender
	}
	if input.Address != "" {
		updates["address"] = input.Address
	}
	if input.City != "" {
		updates["city"] = input.City
	}
	if input.State != "" {
		updates["state"] = input.State
	}
	if input.ZipCode != "" {
		updates["zip_code"] = input.ZipCode
	}
	if input.EmergencyContact != nil {
		updates["emergency_contact_name"] = input.EmergencyContact.Name
		updates["emergency_contact_relationship"] = input.EmergencyContact.Relationship
		updates["emergency_contact_phone"] = input.EmergencyContact.Phone
	}
	if input.Allergies != "" {
		updates["allergies"] = input.Allergies
	}
	if input.Medications != "" {
		updates["medications"] = input.Medications
	}
	if input.Conditions != "" {
		updates["conditions"] = input.Conditions
	}

	if len(updates) > 0 {
		if err := configuration.DB.Model(&patient).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
	}

	patient.Password = ""
	c.JSON(http.StatusOK, patient)
}
