package handlers

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/quantumapps-dev/pspacademy/internal/models"
)

type ClassHandler struct {
	db *gorm.DB
}

func NewClassHandler(db *gorm.DB) *ClassHandler {
	return &ClassHandler{db: db}
}

type CreateClassRequest struct {
	Body struct {
		Title          string `json:"title" required:"true" minLength:"3"`
		CurriculumCode string `json:"curriculum_code" doc:"Unique curriculum code, e.g. TAC-101" required:"true"`
		Instructor     string `json:"instructor"`
		Capacity       int    `json:"capacity" minimum:"1" required:"true"`
		Description    string `json:"description"`
	}
}

type ClassResponse struct {
	Body models.TrainingClass
}

func (h *ClassHandler) HandleCreateClass(ctx context.Context, input *CreateClassRequest) (*ClassResponse, error) {
	class := models.TrainingClass{
		Title:          input.Body.Title,
		CurriculumCode: input.Body.CurriculumCode,
		Instructor:     input.Body.Instructor,
		Capacity:       input.Body.Capacity,
		Description:    input.Body.Description,
		Status:         models.ClassDraft,
	}

	if err := h.db.WithContext(ctx).Create(&class).Error; err != nil {
		return nil, huma.Error409Conflict("Failed to create class (duplicate curriculum code?): " + err.Error())
	}

	return &ClassResponse{Body: class}, nil
}

type ListClassesRequest struct {
	Status string `query:"status" doc:"Filter by status (draft, open, closed)"`
}

type ListClassesResponse struct {
	Body []models.TrainingClass
}

func (h *ClassHandler) HandleListClasses(ctx context.Context, input *ListClassesRequest) (*ListClassesResponse, error) {
	q := h.db.WithContext(ctx).Model(&models.TrainingClass{})
	if input.Status != "" {
		q = q.Where("status = ?", input.Status)
	}

	var classes []models.TrainingClass
	if err := q.Order("curriculum_code asc").Find(&classes).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list classes: " + err.Error())
	}

	return &ListClassesResponse{Body: classes}, nil
}

type GetClassRequest struct {
	ID uint `path:"id"`
}

func (h *ClassHandler) HandleGetClass(ctx context.Context, input *GetClassRequest) (*ClassResponse, error) {
	var class models.TrainingClass
	if err := h.db.WithContext(ctx).First(&class, input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Class not found")
	}
	return &ClassResponse{Body: class}, nil
}

type UpdateClassRequest struct {
	ID   uint `path:"id"`
	Body struct {
		Title       string `json:"title" required:"true" minLength:"3"`
		Instructor  string `json:"instructor"`
		Capacity    int    `json:"capacity" minimum:"1" required:"true"`
		Description string `json:"description"`
		Status      string `json:"status" enum:"draft,open,closed" required:"true"`
	}
}

func (h *ClassHandler) HandleUpdateClass(ctx context.Context, input *UpdateClassRequest) (*ClassResponse, error) {
	var class models.TrainingClass
	if err := h.db.WithContext(ctx).First(&class, input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Class not found")
	}

	class.Title = input.Body.Title
	class.Instructor = input.Body.Instructor
	class.Capacity = input.Body.Capacity
	class.Description = input.Body.Description
	class.Status = models.ClassStatus(input.Body.Status)

	if err := h.db.WithContext(ctx).Save(&class).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to update class: " + err.Error())
	}

	return &ClassResponse{Body: class}, nil
}

type AddMaterialRequest struct {
	ID   uint `path:"id"`
	Body struct {
		Name      string `json:"name" doc:"File name of the material" required:"true"`
		SizeBytes int64  `json:"size_bytes" minimum:"0" required:"true"`
	}
}

// HandleAddMaterial records material metadata on a class. Only the file name
// and size are kept; the bytes themselves are never stored.
func (h *ClassHandler) HandleAddMaterial(ctx context.Context, input *AddMaterialRequest) (*ClassResponse, error) {
	var class models.TrainingClass
	if err := h.db.WithContext(ctx).First(&class, input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Class not found")
	}

	materials := class.Materials.Data()
	materials = append(materials, models.MaterialFile{
		Name:      input.Body.Name,
		SizeBytes: input.Body.SizeBytes,
		AddedAt:   time.Now().UTC(),
	})
	class.Materials = datatypes.NewJSONType(materials)

	if err := h.db.WithContext(ctx).Save(&class).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to record material: " + err.Error())
	}

	return &ClassResponse{Body: class}, nil
}
