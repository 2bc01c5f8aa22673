package authentication

import (
	"testing"
	"time"

	"health-connect/models"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GeneratePatientToken(42, "jane@example.com")
	if err != nil {
		t.Fatalf("GeneratePatientToken: %v", err)
	}

	email, patientID, err := AuthenticatePatient(token)
	if err != nil {
		t.Fatalf("AuthenticatePatient: %v", err)
	}
	if patientID != 42 {
		t.Errorf("patientID = %d, want 42", patientID)
	}
	if email != "jane@example.com" {
		t.Errorf("email = %q, want jane@example.com", email)
	}
}

func TestTokenCarriesSevenDayExpiry(t *testing.T) {
	token, err := GeneratePatientToken(1, "a@b.com")
	if err != nil {
		t.Fatalf("GeneratePatientToken: %v", err)
	}

	var claims models.PatientClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("parse issued token: %v", err)
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining < TokenValidity-time.Minute || remaining > TokenValidity {
		t.Errorf("token validity = %v, want about %v", remaining, TokenValidity)
	}
}

func TestAuthenticateRejectsGarbage(t *testing.T) {
	if _, _, err := AuthenticatePatient("not-a-token"); err == nil {
		t.Error("garbage token accepted")
	}
}

func TestAuthenticateRejectsWrongKey(t *testing.T) {
	claims := &models.PatientClaims{
		PatientID: 7,
		Email:     "x@y.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("some-other-key"))
	if err != nil {
		t.Fatalf("sign with wrong key: %v", err)
	}

	if _, _, err := AuthenticatePatient(signed); err == nil {
		t.Error("token signed with wrong key accepted")
	}
}

func TestAuthenticateRejectsExpired(t *testing.T) {
	claims := &models.PatientClaims{
		PatientID: 7,
		Email:     "x@y.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtKey())
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	if _, _, err := AuthenticatePatient(signed); err == nil {
		t.Error("expired token accepted")
	}
}
