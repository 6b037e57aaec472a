package models

import (
	"gorm.io/gorm"
)

type Profile struct {
	gorm.Model
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Rank        string `json:"rank"`
	Unit        string `json:"unit" gorm:"index"`
	Email       string `json:"email" gorm:"uniqueIndex"`
	Phone       string `json:"phone"`
	Specialties string `json:"specialties"`
}
