package handlers

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"gorm.io/gorm"

	"github.com/quantumapps-dev/pspacademy/internal/models"
)

type ApplicationHandler struct {
	db *gorm.DB
}

func NewApplicationHandler(db *gorm.DB) *ApplicationHandler {
	return &ApplicationHandler{db: db}
}

type CreateApplicationRequest struct {
	Body struct {
		FirstName  string `json:"first_name" required:"true" minLength:"2"`
		LastName   string `json:"last_name" required:"true" minLength:"2"`
		Email      string `json:"email" required:"true" format:"email"`
		Phone      string `json:"phone"`
		Program    string `json:"program" doc:"Desired training program" required:"true"`
		Education  string `json:"education"`
		Motivation string `json:"motivation"`
	}
}

type ApplicationResponse struct {
	Body models.Application
}

func (h *ApplicationHandler) HandleCreateApplication(ctx context.Context, input *CreateApplicationRequest) (*ApplicationResponse, error) {
	application := models.Application{
		FirstName:  input.Body.FirstName,
		LastName:   input.Body.LastName,
		Email:      input.Body.Email,
		Phone:      input.Body.Phone,
		Program:    input.Body.Program,
		Education:  input.Body.Education,
		Motivation: input.Body.Motivation,
		Status:     models.ApplicationPending,
	}

	if err := h.db.WithContext(ctx).Create(&application).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to create application: " + err.Error())
	}

	return &ApplicationResponse{Body: application}, nil
}

type ListApplicationsRequest struct {
	Status  string `query:"status" doc:"Filter by status (pending, approved, rejected)"`
	Program string `query:"program" doc:"Filter by program"`
}

type ListApplicationsResponse struct {
	Body []models.Application
}

func (h *ApplicationHandler) HandleListApplications(ctx context.Context, input *ListApplicationsRequest) (*ListApplicationsResponse, error) {
	q := h.db.WithContext(ctx).Model(&models.Application{})
	if input.Status != "" {
		q = q.Where("status = ?", input.Status)
	}
	if input.Program != "" {
		q = q.Where("program = ?", input.Program)
	}

	var applications []models.Application
	if err := q.Order("created_at desc").Find(&applications).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list applications: " + err.Error())
	}

	return &ListApplicationsResponse{Body: applications}, nil
}

type GetApplicationRequest struct {
	ID uint `path:"id"`
}

func (h *ApplicationHandler) HandleGetApplication(ctx context.Context, input *GetApplicationRequest) (*ApplicationResponse, error) {
	var application models.Application
	if err := h.db.WithContext(ctx).First(&application, input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Application not found")
	}
	return &ApplicationResponse{Body: application}, nil
}

type ReviewApplicationRequest struct {
	ID   uint `path:"id"`
	Body struct {
		Approve    bool   `json:"approve" doc:"true approves, false rejects"`
		ReviewedBy string `json:"reviewed_by" required:"true"`
		ReviewNote string `json:"review_note"`
	}
}

// HandleReviewApplication decides a pending application. Decided applications
// are final; reviewing one again is an error.
func (h *ApplicationHandler) HandleReviewApplication(ctx context.Context, input *ReviewApplicationRequest) (*ApplicationResponse, error) {
	var application models.Application
	if err := h.db.WithContext(ctx).First(&application, input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Application not found")
	}

	if application.Status != models.ApplicationPending {
		return nil, huma.Error409Conflict("Application has already been " + string(application.Status))
	}

	application.Status = models.ApplicationRejected
	if input.Body.Approve {
		application.Status = models.ApplicationApproved
	}
	application.ReviewedBy = input.Body.ReviewedBy
	application.ReviewNote = input.Body.ReviewNote
	now := time.Now().UTC()
	application.DecidedAt = &now

	if err := h.db.WithContext(ctx).Save(&application).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to update application: " + err.Error())
	}

	return &ApplicationResponse{Body: application}, nil
}
