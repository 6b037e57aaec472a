package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ClassStatus string

const (
	ClassDraft  ClassStatus = "draft"
	ClassOpen   ClassStatus = "open"
	ClassClosed ClassStatus = "closed"
)

// MaterialFile records metadata about an uploaded course material. Only the
// name and size are kept; file bytes are never persisted.
type MaterialFile struct {
	Name      string    `json:"name"`
	SizeBytes int64     `json:"size_bytes"`
	AddedAt   time.Time `json:"added_at"`
}

type TrainingClass struct {
	gorm.Model
	Title          string                             `json:"title"`
	CurriculumCode string                             `json:"curriculum_code" gorm:"uniqueIndex"`
	Instructor     string                             `json:"instructor"`
	Capacity       int                                `json:"capacity"`
	Description    string                             `json:"description"`
	Status         ClassStatus                        `json:"status" gorm:"size:32;default:'draft'"`
	Materials      datatypes.JSONType[[]MaterialFile] `json:"materials"`
}

type ClassSession struct {
	gorm.Model
	ClassID   uint          `json:"class_id" gorm:"index"`
	Class     TrainingClass `json:"-" gorm:"foreignKey:ClassID"`
	Date      time.Time     `json:"date"`
	StartTime string        `json:"start_time" gorm:"size:5"` // "HH:MM"
	EndTime   string        `json:"end_time" gorm:"size:5"`
	Location  string        `json:"location"`
}

type Enrollment struct {
	gorm.Model
	ClassID   uint          `json:"class_id" gorm:"uniqueIndex:idx_class_profile"`
	ProfileID uint          `json:"profile_id" gorm:"uniqueIndex:idx_class_profile"`
	Class     TrainingClass `json:"-" gorm:"foreignKey:ClassID"`
	Profile   Profile       `json:"profile" gorm:"foreignKey:ProfileID"`
}
