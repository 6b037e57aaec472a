package models

import (
	"time"
)

type FacilityType string

const (
	FacilityDorm         FacilityType = "dorm"
	FacilityClassroom    FacilityType = "classroom"
	FacilityRange        FacilityType = "range"
	FacilityAmphitheater FacilityType = "amphitheater"
	FacilityAuditorium   FacilityType = "auditorium"
	FacilityGym          FacilityType = "gym"
	FacilityPool         FacilityType = "pool"
	FacilityOther        FacilityType = "other"
)

var FacilityTypes = []FacilityType{
	FacilityDorm,
	FacilityClassroom,
	FacilityRange,
	FacilityAmphitheater,
	FacilityAuditorium,
	FacilityGym,
	FacilityPool,
	FacilityOther,
}

// UnitScoped reports whether reservations of this facility type are keyed to a
// numbered unit (dorm room, classroom code). All other types are booked as a
// single shared instance per type.
func (f FacilityType) UnitScoped() bool {
	return f == FacilityDorm || f == FacilityClassroom
}

func (f FacilityType) Valid() bool {
	for _, t := range FacilityTypes {
		if f == t {
			return true
		}
	}
	return false
}

type ReservationStatus string

const (
	ReservationActive    ReservationStatus = "active"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
)

type Reservation struct {
	ID              string            `json:"id" gorm:"primaryKey;size:36"`
	FacilityType    FacilityType      `json:"facility_type" gorm:"size:32;index:idx_facility"`
	FacilityUnit    string            `json:"facility_unit" gorm:"size:64;index:idx_facility"`
	ContactName     string            `json:"contact_name"`
	ContactEmail    string            `json:"contact_email"`
	CheckIn         time.Time         `json:"check_in"`
	CheckOut        time.Time         `json:"check_out"`
	Purpose         string            `json:"purpose"`
	SpecialRequests string            `json:"special_requests"`
	Status          ReservationStatus `json:"status" gorm:"size:32;index"`
	NeedsCleaning   bool              `json:"needs_cleaning"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
