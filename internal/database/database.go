package database

import (
	"log"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/quantumapps-dev/pspacademy/internal/config"
	"github.com/quantumapps-dev/pspacademy/internal/models"
	"github.com/quantumapps-dev/pspacademy/internal/rbac"
)

func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto Migrate
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
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	if cfg.SeedRoles {
		SeedRoles(db)
	}

	return db
}

// SeedRoles installs the default role set, skipping roles that already exist
// so operator edits survive restarts.
func SeedRoles(db *gorm.DB) {
	for name, matrix := range rbac.DefaultRoles() {
		var existing models.Role
		if err := db.Where("name = ?", name).First(&existing).Error; err == nil {
			continue
		}
		role := models.Role{
			Name:        name,
			Permissions: datatypes.NewJSONType(matrix),
		}
		if err := db.Create(&role).Error; err != nil {
			log.Printf("Failed to seed role %s: %v", name, err)
		}
	}
}
