package handlers

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/quantumapps-dev/pspacademy/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Profile{},
		&models.Application{},
		&models.Registration{},
		&models.RegistrationHistory{},
		&models.Reservation{},
		&models.TrainingClass{},
		&models.ClassSession{},
		&models.Enrollment{},
	)
	if err != nil {
		t.Fatalf("failed to auto migrate: %v", err)
	}

	return db
}

func createTestProfile(t *testing.T, db *gorm.DB, email string) models.Profile {
	t.Helper()
	profile := models.Profile{
		FirstName: "Taylor",
		LastName:  "Vance",
		Unit:      "B Company",
		Email:     email,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}
	return profile
}
