package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account keyed by phone number. Students, teachers and
// workers all reference a user row.
type User struct {
	ID                   uuid.UUID `json:"id" db:"id"`
	Phone                string    `json:"phone" db:"phone"`
	Password             string    `json:"-" db:"password"`
	FullName             string    `json:"full_name" db:"full_name"`
	IsActive             bool      `json:"is_active" db:"is_active"`
	IsStaff              bool      `json:"is_staff" db:"is_staff"`
	IsSuperuser          bool      `json:"is_superuser" db:"is_superuser"`
	IsStudent            bool      `json:"is_student" db:"is_student"`
	IsTeacher            bool      `json:"is_teacher" db:"is_teacher"`
	RequirePasswordReset bool      `json:"require_password_reset" db:"require_password_reset"`
	CreatedAt            time.Time `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time `json:"updated_at" db:"updated_at"`
}

// UserRequest is the payload for creating or updating a user
type UserRequest struct {
	Phone       string `json:"phone" validate:"required"`
	Password    string `json:"password,omitempty"`
	FullName    string `json:"full_name"`
	IsActive    *bool  `json:"is_active,omitempty"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
	IsStudent   bool   `json:"is_student"`
	IsTeacher   bool   `json:"is_teacher"`
}

// ChangePasswordRequest is the payload for a password change
type ChangePasswordRequest struct {
	OldPassword   string `json:"old_password" validate:"required"`
	NewPassword   string `json:"new_password" validate:"required"`
	ReNewPassword string `json:"re_new_password" validate:"required"`
}
