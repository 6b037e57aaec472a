package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PermissionMatrix maps a module name (e.g. "facilities") to the actions a
// role may perform on it (e.g. "view", "create", "cancel").
type PermissionMatrix map[string][]string

type Role struct {
	gorm.Model
	Name        string                               `json:"name" gorm:"uniqueIndex"`
	Description string                               `json:"description"`
	Permissions datatypes.JSONType[PermissionMatrix] `json:"permissions"`
	Users       []User                               `json:"-" gorm:"foreignKey:RoleID"`
}

type User struct {
	gorm.Model
	Username    string `json:"username" gorm:"uniqueIndex"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	RoleID      uint   `json:"role_id"`
	Role        Role   `json:"role"`
	Active      bool   `json:"active" gorm:"default:true"`
}
