package models

import (
	"time"

	"github.com/google/uuid"
)

// Student represents a student profile linked to a user account
type Student struct {
	ID           uuid.UUID `json:"id" db:"id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	FullName     string    `json:"full_name" db:"full_name"`
	Email        string    `json:"email" db:"email"`
	Age          int       `json:"age" db:"age"`
	IsLine       bool      `json:"is_line" db:"is_line"`
	Descriptions string    `json:"descriptions" db:"descriptions"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// StudentRequest is the payload for creating or updating a student
type StudentRequest struct {
	UserID       uuid.UUID `json:"user_id"`
	FullName     string    `json:"full_name" validate:"required"`
	Email        string    `json:"email" validate:"omitempty,email"`
	Age          int       `json:"age"`
	IsLine       bool      `json:"is_line"`
	Descriptions string    `json:"descriptions"`
}

// UserAndStudentRequest creates a user account and its student profile in
// one call. The user is rolled back if the student part fails.
type UserAndStudentRequest struct {
	User    UserRequest    `json:"user" validate:"required"`
	Student StudentRequest `json:"student" validate:"required"`
}

// ParentRequest is the payload for creating or updating a parent
type ParentRequest struct {
	StudentID    uuid.UUID `json:"student_id" validate:"required"`
	FullName     string    `json:"full_name" validate:"required"`
	PhoneNumber  string    `json:"phone_number"`
	Address      string    `json:"address"`
	Descriptions string    `json:"descriptions"`
}

// Parent represents a student's parent contact
type Parent struct {
	ID           uuid.UUID `json:"id" db:"id"`
	StudentID    uuid.UUID `json:"student_id" db:"student_id"`
	FullName     string    `json:"full_name" db:"full_name"`
	PhoneNumber  string    `json:"phone_number" db:"phone_number"`
	Address      string    `json:"address" db:"address"`
	Descriptions string    `json:"descriptions" db:"descriptions"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
