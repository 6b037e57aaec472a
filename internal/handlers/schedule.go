package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"gorm.io/gorm"

	"github.com/quantumapps-dev/pspacademy/internal/models"
)

type ScheduleHandler struct {
	db *gorm.DB
}

func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{db: db}
}

type CreateSessionRequest struct {
	ClassID uint `path:"classID"`
	Body    struct {
		Date      time.Time `json:"date" required:"true"`
		StartTime string    `json:"start_time" doc:"HH:MM" pattern:"^([01][0-9]|2[0-3]):[0-5][0-9]$" required:"true"`
		EndTime   string    `json:"end_time" doc:"HH:MM" pattern:"^([01][0-9]|2[0-3]):[0-5][0-9]$" required:"true"`
		Location  string    `json:"location"`
	}
}

type SessionResponse struct {
	Body models.ClassSession
}

func (h *ScheduleHandler) HandleCreateSession(ctx context.Context, input *CreateSessionRequest) (*SessionResponse, error) {
	var class models.TrainingClass
	if err := h.db.WithContext(ctx).First(&class, input.ClassID).Error; err != nil {
		return nil, huma.Error404NotFound("Class not found")
	}

	if input.Body.EndTime <= input.Body.StartTime {
		return nil, huma.Error400BadRequest("Session end time must be after start time")
	}

	session := models.ClassSession{
		ClassID:   class.ID,
		Date:      input.Body.Date,
		StartTime: input.Body.StartTime,
		EndTime:   input.Body.EndTime,
		Location:  input.Body.Location,
	}

	if err := h.db.WithContext(ctx).Create(&session).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to create session: " + err.Error())
	}

	return &SessionResponse{Body: session}, nil
}

type ListSessionsRequest struct {
	ClassID uint `path:"classID"`
}

type ListSessionsResponse struct {
	Body []models.ClassSession
}

func (h *ScheduleHandler) HandleListSessions(ctx context.Context, input *ListSessionsRequest) (*ListSessionsResponse, error) {
	var sessions []models.ClassSession
	err := h.db.WithContext(ctx).
		Where("class_id = ?", input.ClassID).
		Order("date asc, start_time asc").
		Find(&sessions).Error
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list sessions: " + err.Error())
	}

	return &ListSessionsResponse{Body: sessions}, nil
}

type EnrollRequest struct {
	ClassID uint `path:"classID"`
	Body    struct {
		ProfileID uint `json:"profile_id" required:"true"`
	}
}

type EnrollResponse struct {
	Body struct {
		ID      uint   `json:"id"`
		Message string `json:"message"`
	}
}

// HandleEnroll adds a trainee to a class roster. The class must be open, have
// seats left, and not already contain the trainee.
func (h *ScheduleHandler) HandleEnroll(ctx context.Context, input *EnrollRequest) (*EnrollResponse, error) {
	var class models.TrainingClass
	if err := h.db.WithContext(ctx).First(&class, input.ClassID).Error; err != nil {
		return nil, huma.Error404NotFound("Class not found")
	}

	if class.Status != models.ClassOpen {
		return nil, huma.Error409Conflict("Class is not open for enrollment")
	}

	var profile models.Profile
	if err := h.db.WithContext(ctx).First(&profile, input.Body.ProfileID).Error; err != nil {
		return nil, huma.Error404NotFound("Profile not found")
	}

	var enrollment models.Enrollment
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Enrollment
		if err := tx.Where("class_id = ? AND profile_id = ?", class.ID, profile.ID).First(&existing).Error; err == nil {
			return huma.Error409Conflict("Trainee is already enrolled in this class")
		} else if err != gorm.ErrRecordNotFound {
			return err
		}

		var enrolled int64
		if err := tx.Model(&models.Enrollment{}).Where("class_id = ?", class.ID).Count(&enrolled).Error; err != nil {
			return err
		}
		if int(enrolled) >= class.Capacity {
			return huma.Error409Conflict("Class is at capacity")
		}

		enrollment = models.Enrollment{ClassID: class.ID, ProfileID: profile.ID}
		return tx.Create(&enrollment).Error
	})
	if err != nil {
		var statusErr huma.StatusError
		if errors.As(err, &statusErr) {
			return nil, statusErr
		}
		return nil, huma.Error500InternalServerError("Failed to enroll trainee: " + err.Error())
	}

	res := &EnrollResponse{}
	res.Body.ID = enrollment.ID
	res.Body.Message = "Trainee enrolled"
	return res, nil
}

type UnenrollRequest struct {
	ClassID   uint `path:"classID"`
	ProfileID uint `path:"profileID"`
}

func (h *ScheduleHandler) HandleUnenroll(ctx context.Context, input *UnenrollRequest) (*struct{}, error) {
	result := h.db.WithContext(ctx).
		Where("class_id = ? AND profile_id = ?", input.ClassID, input.ProfileID).
		Delete(&models.Enrollment{})
	if result.Error != nil {
		return nil, huma.Error500InternalServerError("Failed to remove trainee: " + result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return nil, huma.Error404NotFound("Enrollment not found")
	}

	return nil, nil
}

type RosterRequest struct {
	ClassID uint `path:"classID"`
}

type RosterResponse struct {
	Body []models.Enrollment
}

func (h *ScheduleHandler) HandleRoster(ctx context.Context, input *RosterRequest) (*RosterResponse, error) {
	var roster []models.Enrollment
	err := h.db.WithContext(ctx).
		Preload("Profile").
		Where("class_id = ?", input.ClassID).
		Order("created_at asc").
		Find(&roster).Error
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load roster: " + err.Error())
	}

	return &RosterResponse{Body: roster}, nil
}
