package models

import (
	"time"

	"github.com/google/uuid"
)

// Worker represents a staff member (teachers are workers whose user carries
// the is_teacher flag)
type Worker struct {
	ID            uuid.UUID   `json:"id" db:"id"`
	UserID        uuid.UUID   `json:"user_id" db:"user_id"`
	Descriptions  string      `json:"descriptions" db:"descriptions"`
	DepartmentIDs []uuid.UUID `json:"department_ids" db:"-"`
	CourseIDs     []uuid.UUID `json:"course_ids" db:"-"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" db:"updated_at"`
}

// WorkerRequest is the payload for creating or updating a worker
type WorkerRequest struct {
	UserID        uuid.UUID   `json:"user_id" validate:"required"`
	Descriptions  string      `json:"descriptions"`
	DepartmentIDs []uuid.UUID `json:"department_ids"`
	CourseIDs     []uuid.UUID `json:"course_ids"`
}

// Department groups workers and courses
type Department struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	Descriptions string    `json:"descriptions" db:"descriptions"`
}

// DepartmentRequest is the payload for creating or updating a department
type DepartmentRequest struct {
	Title        string `json:"title" validate:"required"`
	IsActive     *bool  `json:"is_active,omitempty"`
	Descriptions string `json:"descriptions"`
}

// AddWorkerRequest assigns a worker to a department
type AddWorkerRequest struct {
	WorkerID uuid.UUID `json:"worker_id" validate:"required"`
}
