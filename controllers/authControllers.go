package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"health-connect/authentication"
	"health-connect/configuration"
	"health-connect/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	DateOfBirth string `json:"dateOfBirth" binding:"required"`
	Gender      string `json:"gender" binding:"required"`
	Phone       string `json:"phone"`
}

// PatientRegister creates an account and returns a bearer token with the
// account summary.
func PatientRegister(c *gin.Context) {
	var input RegisterInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dob, err := time.Parse("2006-01-02", input.DateOfBirth)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date of birth format"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var existing models.Patient
	if err := configuration.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	patient := models.Patient{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       email,
		Password:    string(hashedPassword),
		DateOfBirth: dob,
		Gender:      input.Gender,
		Phone:       input.Phone,
	}

	if err := configuration.DB.Create(&patient).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	token, err := authentication.GeneratePatientToken(patient.PatientID, patient.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  patient.Summary(),
	})
}

// PatientLogin handles the patient login process. Unknown email and wrong
// password yield the same response.
func PatientLogin(c *gin.Context) {
	var loginReq struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.BindJSON(&loginReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(loginReq.Email))

	var patient models.Patient
	if err := configuration.DB.Where("email = ?", email).First(&patient).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(patient.Password), []byte(loginReq.Password)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := authentication.GeneratePatientToken(patient.PatientID, patient.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  patient.Summary(),
	})
}

// CurrentPatient returns the authenticated account, hash excluded.
func CurrentPatient(c *gin.Context) {
	patientID := c.GetUint("patientID")

	var patient models.Patient
	if err := configuration.DB.First(&patient, patientID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	patient.Password = ""
	c.JSON(http.StatusOK, patient)
}
