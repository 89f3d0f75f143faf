package models

import (
	"time"

	"github.com/google/uuid"
)

// Table is a schedule slot bound to a room and a table type
type Table struct {
	ID           uuid.UUID `json:"id" db:"id"`
	StartTime    string    `json:"start_time" db:"start_time"`
	EndTime      string    `json:"end_time" db:"end_time"`
	RoomID       uuid.UUID `json:"room_id" db:"room_id"`
	TypeID       uuid.UUID `json:"type_id" db:"type_id"`
	Descriptions string    `json:"descriptions" db:"descriptions"`
}

// TableRequest is the payload for creating or updating a schedule slot
type TableRequest struct {
	StartTime    string    `json:"start_time" validate:"required"`
	EndTime      string    `json:"end_time" validate:"required"`
	RoomID       uuid.UUID `json:"room_id" validate:"required"`
	TypeID       uuid.UUID `json:"type_id" validate:"required"`
	Descriptions string    `json:"descriptions"`
}

// Group is a class group: a course taught by a set of teachers to a set of
// students in a schedule slot
type Group struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	Name         string      `json:"name" db:"name"`
	Title        string      `json:"title" db:"title"`
	CourseID     uuid.UUID   `json:"course_id" db:"course_id"`
	TableID      uuid.UUID   `json:"table_id" db:"table_id"`
	StartDate    time.Time   `json:"start_date" db:"start_date"`
	EndDate      time.Time   `json:"end_date" db:"end_date"`
	Price        string      `json:"price" db:"price"`
	Descriptions string      `json:"descriptions" db:"descriptions"`
	StudentIDs   []uuid.UUID `json:"student_ids" db:"-"`
	TeacherIDs   []uuid.UUID `json:"teacher_ids" db:"-"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" db:"updated_at"`
}

// GroupRequest is the payload for creating or updating a group
type GroupRequest struct {
	Name         string      `json:"name" validate:"required"`
	Title        string      `json:"title"`
	CourseID     uuid.UUID   `json:"course_id" validate:"required"`
	TableID      uuid.UUID   `json:"table_id" validate:"required"`
	StartDate    time.Time   `json:"start_date"`
	EndDate      time.Time   `json:"end_date"`
	Price        string      `json:"price"`
	Descriptions string      `json:"descriptions"`
	StudentIDs   []uuid.UUID `json:"student_ids"`
	TeacherIDs   []uuid.UUID `json:"teacher_ids"`
}

// GroupOptions bundles the selectable references for the group form
type GroupOptions struct {
	Teachers []Worker `json:"teachers"`
	Courses  []Course `json:"courses"`
	Tables   []Table  `json:"tables"`
}
