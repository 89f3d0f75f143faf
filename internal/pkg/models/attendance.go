package models

import (
	"time"

	"github.com/google/uuid"
)

// Attendance records a student's presence level for a group session
type Attendance struct {
	ID        uuid.UUID `json:"id" db:"id"`
	LevelID   uuid.UUID `json:"level_id" db:"level_id"`
	StudentID uuid.UUID `json:"student_id" db:"student_id"`
	GroupID   uuid.UUID `json:"group_id" db:"group_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// AttendanceRequest is the payload for recording attendance
type AttendanceRequest struct {
	LevelID   uuid.UUID `json:"level_id" validate:"required"`
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	GroupID   uuid.UUID `json:"group_id" validate:"required"`
}
