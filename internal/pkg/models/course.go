package models

import (
	"time"

	"github.com/google/uuid"
)

// Course is a catalog course offered by the center
type Course struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Title        string    `json:"title" db:"title"`
	Descriptions string    `json:"descriptions" db:"descriptions"`
}

// CourseRequest is the payload for creating or updating a course
type CourseRequest struct {
	Name         string `json:"name" validate:"required"`
	Title        string `json:"title"`
	Descriptions string `json:"descriptions"`
}

// Enrollment tracks a student's progress through a course
type Enrollment struct {
	ID         uuid.UUID `json:"id" db:"id"`
	StudentID  uuid.UUID `json:"student_id" db:"student_id"`
	CourseID   uuid.UUID `json:"course_id" db:"course_id"`
	Status     string    `json:"status" db:"status"`
	DateJoined time.Time `json:"date_joined" db:"date_joined"`
}

// EnrollmentRequest is the payload for updating an enrollment
type EnrollmentRequest struct {
	Status     string     `json:"status" validate:"required,oneof=registered studying graduated"`
	DateJoined *time.Time `json:"date_joined,omitempty"`
}

// EnrollmentStatistics counts enrollments by status within a date range
type EnrollmentStatistics struct {
	Registered int `json:"registered"`
	Studying   int `json:"studying"`
	Graduated  int `json:"graduated"`
}
