package authentication

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"health-connect/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Bearer tokens stay valid for 7 days; verification is a stateless
// signature check, there is no revocation list.
const TokenValidity = 7 * 24 * time.Hour

func jwtKey() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Println("WARNING: JWT_SECRET not set, using insecure default key")
		secret = "secret"
	}
	return []byte(secret)
}

// GeneratePatientToken issues a signed bearer token for a patient
func GeneratePatientToken(patientID uint, email string) (string, error) {

	claims := &models.PatientClaims{
		PatientID: patientID,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenValidity)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		}}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtKey())
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// AuthenticatePatient parses and validates a signed token, returning the
// patient identity carried in its claims.
func AuthenticatePatient(signedStringToken string) (string, uint, error) {
	var patientClaims models.PatientClaims
	token, err := jwt.ParseWithClaims(signedStringToken, &patientClaims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtKey(), nil
	})

	if err != nil {
		return "", 0, err
	}
	if !token.Valid {
		return "", 0, errors.New("token is not valid")
	}

	claims, ok := token.Claims.(*models.PatientClaims)
	if !ok {
		return "", 0, errors.New("couldn't parse claims")
	}

	return claims.Email, claims.PatientID, nil
}

// PatientAuthMiddleware gates protected routes on a valid bearer token
// and stores the patient id on the request context.
func PatientAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")

		if tokenString == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "User Authorization is missing"})
			return
		}

		authHeader := strings.Replace(tokenString, "Bearer ", "", 1)
		_, patientID, err := AuthenticatePatient(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": err.Error()})
			return
		}
		c.Set("patientID", patientID)
		c.Next()
	}
}
