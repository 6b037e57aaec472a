package handlers

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"gorm.io/gorm"

	"github.com/quantumapps-dev/pspacademy/internal/config"
	"github.com/quantumapps-dev/pspacademy/internal/models"
)

type RegistrationHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewRegistrationHandler(db *gorm.DB, cfg *config.Config) *RegistrationHandler {
	return &RegistrationHandler{db: db, cfg: cfg}
}

type RegistrationRequest struct {
	Body struct {
		ProfileID           uint      `json:"profile_id" doc:"Trainee profile id" required:"true"`
		Term                string    `json:"term" doc:"Program term, e.g. 2026-spring" required:"true"`
		ArrivalDate         time.Time `json:"arrival_date" doc:"Date of arrival"`
		DepartureDate       time.Time `json:"departure_date" doc:"Date of departure"`
		DietaryRestrictions string    `json:"dietary_restrictions" doc:"Dietary restrictions or allergies"`
		EmergencyContact    string    `json:"emergency_contact" doc:"Emergency contact name and phone"`
		Cancelled           bool      `json:"cancelled" doc:"Whether the registration is cancelled"`
		Note                string    `json:"note"`
	}
}

type RegistrationResponse struct {
	Body struct {
		ID      uint   `json:"id"`
		Message string `json:"message"`
	}
}

func (h *RegistrationHandler) termEnabled(term string) bool {
	for _, t := range h.cfg.EnabledTerms {
		if t == term {
			return true
		}
	}
	return false
}

// HandleRegister upserts the trainee's registration for a term and snapshots
// every write into RegistrationHistory.
func (h *RegistrationHandler) HandleRegister(ctx context.Context, input *RegistrationRequest) (*RegistrationResponse, error) {
	if !h.termEnabled(input.Body.Term) {
		return nil, huma.Error400BadRequest("Registration is not open for term " + input.Body.Term)
	}

	if input.Body.ArrivalDate.After(input.Body.DepartureDate) {
		return nil, huma.Error400BadRequest("Arrival date cannot be after departure date")
	}

	var profile models.Profile
	if err := h.db.WithContext(ctx).First(&profile, input.Body.ProfileID).Error; err != nil {
		return nil, huma.Error404NotFound("Profile not found")
	}

	var registration models.Registration
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.FirstOrInit(&registration, models.Registration{
			ProfileID: input.Body.ProfileID,
			Term:      input.Body.Term,
		}).Error; err != nil {
			return err
		}

		registration.RegistrationFields = models.RegistrationFields{
			ArrivalDate:         input.Body.ArrivalDate,
			DepartureDate:       input.Body.DepartureDate,
			DietaryRestrictions: input.Body.DietaryRestrictions,
			EmergencyContact:    input.Body.EmergencyContact,
			Cancelled:           input.Body.Cancelled,
			Note:                input.Body.Note,
		}

		if err := tx.Save(&registration).Error; err != nil {
			return err
		}

		// Save history snapshot
		history := models.RegistrationHistory{
			RegistrationID:     registration.ID,
			ProfileID:          registration.ProfileID,
			Term:               registration.Term,
			RegistrationFields: registration.RegistrationFields,
		}

		return tx.Create(&history).Error
	})

	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to process registration: " + err.Error())
	}

	res := &RegistrationResponse{}
	res.Body.ID = registration.ID
	res.Body.Message = "Registration processed successfully"
	return res, nil
}

type RegistrationHistoryRequest struct {
	ProfileID uint   `query:"profile_id" doc:"Trainee profile id" required:"true"`
	Term      string `query:"term" doc:"Optional term filter"`
}

type RegistrationHistoryResponse struct {
	Body []models.RegistrationHistory
}

func (h *RegistrationHandler) HandleHistory(ctx context.Context, input *RegistrationHistoryRequest) (*RegistrationHistoryResponse, error) {
	q := h.db.WithContext(ctx).Where("profile_id = ?", input.ProfileID)
	if input.Term != "" {
		q = q.Where("term = ?", input.Term)
	}

	var history []models.RegistrationHistory
	if err := q.Order("created_at desc").Find(&history).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to load history: " + err.Error())
	}

	return &RegistrationHistoryResponse{Body: history}, nil
}
