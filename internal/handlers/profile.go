package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"gorm.io/gorm"

	"github.com/quantumapps-dev/pspacademy/internal/models"
)

type ProfileHandler struct {
	db *gorm.DB
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

type ProfileFields struct {
	FirstName   string `json:"first_name" required:"true" minLength:"2"`
	LastName    string `json:"last_name" required:"true" minLength:"2"`
	Rank        string `json:"rank"`
	Unit        string `json:"unit"`
	Email       string `json:"email" required:"true" format:"email"`
	Phone       string `json:"phone"`
	Specialties string `json:"specialties"`
}

type CreateProfileRequest struct {
	Body ProfileFields
}

type ProfileResponse struct {
	Body models.Profile
}

func (h *ProfileHandler) HandleCreateProfile(ctx context.Context, input *CreateProfileRequest) (*ProfileResponse, error) {
	profile := models.Profile{
		FirstName:   input.Body.FirstName,
		LastName:    input.Body.LastName,
		Rank:        input.Body.Rank,
		Unit:        input.Body.Unit,
		Email:       input.Body.Email,
		Phone:       input.Body.Phone,
		Specialties: input.Body.Specialties,
	}

	if err := h.db.WithContext(ctx).Create(&profile).Error; err != nil {
		return nil, huma.Error409Conflict("Failed to create profile (duplicate email?): " + err.Error())
	}

	return &ProfileResponse{Body: profile}, nil
}

type ListProfilesRequest struct {
	Name string `query:"name" doc:"Substring match on first or last name"`
	Unit string `query:"unit" doc:"Filter by unit"`
}

type ListProfilesResponse struct {
	Body []models.Profile
}

func (h *ProfileHandler) HandleListProfiles(ctx context.Context, input *ListProfilesRequest) (*ListProfilesResponse, error) {
	q := h.db.WithContext(ctx).Model(&models.Profile{})
	if input.Name != "" {
		like := "%" + input.Name + "%"
		q = q.Where("first_name LIKE ? OR last_name LIKE ?", like, like)
	}
	if input.Unit != "" {
		q = q.Where("unit = ?", input.Unit)
	}

	var profiles []models.Profile
	if err := q.Order("last_name asc, first_name asc").Find(&profiles).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list profiles: " + err.Error())
	}

	return &ListProfilesResponse{Body: profiles}, nil
}

type GetProfileRequest struct {
	ID uint `path:"id"`
}

func (h *ProfileHandler) HandleGetProfile(ctx context.Context, input *GetProfileRequest) (*ProfileResponse, error) {
	var profile models.Profile
	if err := h.db.WithContext(ctx).First(&profile, input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Profile not found")
	}
	return &ProfileResponse{Body: profile}, nil
}

type UpdateProfileRequest struct {
	ID   uint `path:"id"`
	Body ProfileFields
}

func (h *ProfileHandler) HandleUpdateProfile(ctx context.Context, input *UpdateProfileRequest) (*ProfileResponse, error) {
	var profile models.Profile
	if err := h.db.WithContext(ctx).First(&profile, input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Profile not found")
	}

	profile.FirstName = input.Body.FirstName
	profile.LastName = input.Body.LastName
	profile.Rank = input.Body.Rank
	profile.Unit = input.Body.Unit
	profile.Email = input.Body.Email
	profile.Phone = input.Body.Phone
	profile.Specialties = input.Body.Specialties

	if err := h.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to update profile: " + err.Error())
	}

	return &ProfileResponse{Body: profile}, nil
}
