package models

import (
	"time"

	"gorm.io/gorm"
)

type RegistrationFields struct {
	ArrivalDate         time.Time `json:"arrival_date"`
	DepartureDate       time.Time `json:"departure_date"`
	DietaryRestrictions string    `json:"dietary_restrictions"`
	EmergencyContact    string    `json:"emergency_contact"`
	Cancelled           bool      `json:"cancelled"`
	Note                string    `json:"note"`
}

type Registration struct {
	gorm.Model
	ProfileID          uint    `json:"profile_id" gorm:"uniqueIndex:idx_profile_term"`
	Term               string  `json:"term" gorm:"uniqueIndex:idx_profile_term"`
	Profile            Profile `gorm:"foreignKey:ProfileID"`
	RegistrationFields `gorm:"embedded"`
}

// RegistrationHistory keeps a snapshot of every registration write so intake
// staff can see what changed between submissions.
type RegistrationHistory struct {
	gorm.Model
	RegistrationID     uint   `json:"registration_id"`
	ProfileID          uint   `json:"profile_id"`
	Term               string `json:"term"`
	RegistrationFields `gorm:"embedded"`
}
