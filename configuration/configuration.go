package configuration

import (
	"log"
	"os"

	"health-connect/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// hold connection to db
var DB *gorm.DB

// initializing db connection
func ConfigDB() {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}
	dsn := os.Getenv("DB")
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Failed to connect to the database")
	}

	DB.AutoMigrate(
		&models.Patient{},
		&models.Doctor{},
		&models.Consultation{},
		&models.Medication{},
		&models.AdherenceEntry{},
		&models.HealthMetric{},
		&models.Resource{},
		&models.Symptom{},
	)

	models.SeedCatalogs(DB)
}
