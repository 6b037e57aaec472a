package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/quantumapps-dev/pspacademy/internal/models"
	"github.com/quantumapps-dev/pspacademy/internal/rbac"
)

type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

func validateMatrix(matrix models.PermissionMatrix) error {
	known := func(list []string, v string) bool {
		for _, x := range list {
			if x == v {
				return true
			}
		}
		return false
	}
	for module, actions := range matrix {
		if !known(rbac.Modules, module) {
			return huma.Error422UnprocessableEntity("Unknown module in permission matrix: " + module)
		}
		for _, action := range actions {
			if !known(rbac.Actions, action) {
				return huma.Error422UnprocessableEntity("Unknown action in permission matrix: " + action)
			}
		}
	}
	return nil
}

type CreateRoleRequest struct {
	Body struct {
		Name        string                  `json:"name" required:"true" minLength:"2"`
		Description string                  `json:"description"`
		Permissions models.PermissionMatrix `json:"permissions" doc:"Module name to granted actions"`
	}
}

type RoleResponse struct {
	Body models.Role
}

func (h *AdminHandler) HandleCreateRole(ctx context.Context, input *CreateRoleRequest) (*RoleResponse, error) {
	if err := validateMatrix(input.Body.Permissions); err != nil {
		return nil, err
	}

	role := models.Role{
		Name:        input.Body.Name,
		Description: input.Body.Description,
		Permissions: datatypes.NewJSONType(input.Body.Permissions),
	}

	if err := h.db.WithContext(ctx).Create(&role).Error; err != nil {
		return nil, huma.Error409Conflict("Failed to create role (duplicate name?): " + err.Error())
	}

	return &RoleResponse{Body: role}, nil
}

type ListRolesResponse struct {
	Body []models.Role
}

func (h *AdminHandler) HandleListRoles(ctx context.Context, input *struct{}) (*ListRolesResponse, error) {
	var roles []models.Role
	if err := h.db.WithContext(ctx).Order("name asc").Find(&roles).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list roles: " + err.Error())
	}
	return &ListRolesResponse{Body: roles}, nil
}

type UpdateRolePermissionsRequest struct {
	ID   uint `path:"id"`
	Body struct {
		Description string                  `json:"description"`
		Permissions models.PermissionMatrix `json:"permissions" required:"true"`
	}
}

func (h *AdminHandler) HandleUpdateRolePermissions(ctx context.Context, input *UpdateRolePermissionsRequest) (*RoleResponse, error) {
	if err := validateMatrix(input.Body.Permissions); err != nil {
		return nil, err
	}

	var role models.Role
	if err := h.db.WithContext(ctx).First(&role, input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Role not found")
	}

	role.Description = input.Body.Description
	role.Permissions = datatypes.NewJSONType(input.Body.Permissions)

	if err := h.db.WithContext(ctx).Save(&role).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to update role: " + err.Error())
	}

	return &RoleResponse{Body: role}, nil
}

type CreateUserRequest struct {
	Body struct {
		Username    string `json:"username" required:"true" minLength:"2"`
		DisplayName string `json:"display_name"`
		Email       string `json:"email" format:"email"`
		RoleID      uint   `json:"role_id" required:"true"`
	}
}

type UserResponse struct {
	Body models.User
}

func (h *AdminHandler) HandleCreateUser(ctx context.Context, input *CreateUserRequest) (*UserResponse, error) {
	var role models.Role
	if err := h.db.WithContext(ctx).First(&role, input.Body.RoleID).Error; err != nil {
		return nil, huma.Error404NotFound("Role not found")
	}

	user := models.User{
		Username:    input.Body.Username,
		DisplayName: input.Body.DisplayName,
		Email:       input.Body.Email,
		RoleID:      role.ID,
		Active:      true,
	}

	if err := h.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, huma.Error409Conflict("Failed to create user (duplicate username?): " + err.Error())
	}

	user.Role = role
	return &UserResponse{Body: user}, nil
}

type ListUsersResponse struct {
	Body []models.User
}

func (h *AdminHandler) HandleListUsers(ctx context.Context, input *struct{}) (*ListUsersResponse, error) {
	var users []models.User
	if err := h.db.WithContext(ctx).Preload("Role").Order("username asc").Find(&users).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list users: " + err.Error())
	}
	return &ListUsersResponse{Body: users}, nil
}

type UpdateUserRequest struct {
	ID   uint `path:"id"`
	Body struct {
		DisplayName string `json:"display_name"`
		Email       string `json:"email" format:"email"`
		RoleID      uint   `json:"role_id" required:"true"`
		Active      bool   `json:"active"`
	}
}

func (h *AdminHandler) HandleUpdateUser(ctx context.Context, input *UpdateUserRequest) (*UserResponse, error) {
	var user models.User
	if err := h.db.WithContext(ctx).First(&user, input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("User not found")
	}

	var role models.Role
	if err := h.db.WithContext(ctx).First(&role, input.Body.RoleID).Error; err != nil {
		return nil, huma.Error404NotFound("Role not found")
	}

	user.DisplayName = input.Body.DisplayName
	user.Email = input.Body.Email
	user.RoleID = role.ID
	user.Active = input.Body.Active

	if err := h.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to update user: " + err.Error())
	}

	user.Role = role
	return &UserResponse{Body: user}, nil
}

type CheckAccessRequest struct {
	Username string `query:"username" required:"true"`
	Module   string `query:"module" required:"true"`
	Action   string `query:"action" required:"true"`
}

type CheckAccessResponse struct {
	Body struct {
		Allowed bool   `json:"allowed"`
		Role    string `json:"role"`
	}
}

// HandleCheckAccess answers whether a user's role grants an action on a
// module. Inactive users are denied everything.
func (h *AdminHandler) HandleCheckAccess(ctx context.Context, input *CheckAccessRequest) (*CheckAccessResponse, error) {
	var user models.User
	if err := h.db.WithContext(ctx).Preload("Role").Where("username = ?", input.Username).First(&user).Error; err != nil {
		return nil, huma.Error404NotFound("User not found")
	}

	res := &CheckAccessResponse{}
	res.Body.Role = user.Role.Name
	res.Body.Allowed = user.Active && rbac.Can(user.Role.Permissions.Data(), input.Module, input.Action)
	return res, nil
}
