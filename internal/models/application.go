package models

import (
	"time"

	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

type Application struct {
	gorm.Model
	FirstName  string            `json:"first_name"`
	LastName   string            `json:"last_name"`
	Email      string            `json:"email" gorm:"index"`
	Phone      string            `json:"phone"`
	Program    string            `json:"program"`
	Education  string            `json:"education"`
	Motivation string            `json:"motivation"`
	Status     ApplicationStatus `json:"status" gorm:"size:32;index;default:'pending'"`
	ReviewedBy string            `json:"reviewed_by"`
	ReviewNote string            `json:"review_note"`
	DecidedAt  *time.Time        `json:"decided_at"`
}
