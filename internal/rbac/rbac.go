package rbac

import (
	"github.com/quantumapps-dev/pspacademy/internal/models"
)

// Module names used as permission-matrix keys.
const (
	ModuleApplications  = "applications"
	ModuleRegistrations = "registrations"
	ModuleProfiles      = "profiles"
	ModuleFacilities    = "facilities"
	ModuleClasses       = "classes"
	ModuleScheduling    = "scheduling"
	ModuleAdmin         = "admin"
)

// Actions a role may be granted on a module.
const (
	ActionView   = "view"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionCancel = "cancel"
	ActionManage = "manage"
)

var Modules = []string{
	ModuleApplications,
	ModuleRegistrations,
	ModuleProfiles,
	ModuleFacilities,
	ModuleClasses,
	ModuleScheduling,
	ModuleAdmin,
}

var Actions = []string{
	ActionView,
	ActionCreate,
	ActionUpdate,
	ActionCancel,
	ActionManage,
}

// Can reports whether the matrix grants the action on the module. ActionManage
// on a module implies every other action on it.
func Can(matrix models.PermissionMatrix, module, action string) bool {
	granted, ok := matrix[module]
	if !ok {
		return false
	}
	for _, a := range granted {
		if a == action || a == ActionManage {
			return true
		}
	}
	return false
}

// Merge unions two matrices, for users holding overlapping role grants.
func Merge(a, b models.PermissionMatrix) models.PermissionMatrix {
	out := models.PermissionMatrix{}
	for module, actions := range a {
		out[module] = append([]string(nil), actions...)
	}
	for module, actions := range b {
		for _, action := range actions {
			if !Can(out, module, action) {
				out[module] = append(out[module], action)
			}
		}
	}
	return out
}

// DefaultRoles returns the seed role set installed on first run.
func DefaultRoles() map[string]models.PermissionMatrix {
	return map[string]models.PermissionMatrix{
		"administrator": {
			ModuleApplications:  {ActionManage},
			ModuleRegistrations: {ActionManage},
			ModuleProfiles:      {ActionManage},
			ModuleFacilities:    {ActionManage},
			ModuleClasses:       {ActionManage},
			ModuleScheduling:    {ActionManage},
			ModuleAdmin:         {ActionManage},
		},
		"coordinator": {
			ModuleApplications:  {ActionView, ActionCreate, ActionUpdate},
			ModuleRegistrations: {ActionView, ActionCreate, ActionUpdate},
			ModuleProfiles:      {ActionView, ActionUpdate},
			ModuleFacilities:    {ActionView, ActionCreate, ActionCancel},
			ModuleClasses:       {ActionView},
			ModuleScheduling:    {ActionView, ActionUpdate},
		},
		"instructor": {
			ModuleProfiles:   {ActionView},
			ModuleFacilities: {ActionView, ActionCreate},
			ModuleClasses:    {ActionView, ActionUpdate},
			ModuleScheduling: {ActionView},
		},
	}
}
