package models

import "github.com/google/uuid"

// CatalogKind selects which lookup table a catalog operation targets
type CatalogKind string

const (
	CatalogRoom            CatalogKind = "room"
	CatalogDay             CatalogKind = "day"
	CatalogTableType       CatalogKind = "table_type"
	CatalogTopic           CatalogKind = "topic"
	CatalogAttendanceLevel CatalogKind = "attendance_level"
)

// CatalogItem is the shared shape of the center's lookup entities (rooms,
// days, table types, topics, attendance levels). CourseID is set for topics
// only.
type CatalogItem struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Title        string     `json:"title" db:"title"`
	IsActive     bool       `json:"is_active" db:"is_active"`
	CourseID     *uuid.UUID `json:"course_id,omitempty" db:"course_id"`
	Descriptions string     `json:"descriptions" db:"descriptions"`
}

// CatalogItemRequest is the payload for creating or updating a catalog item
type CatalogItemRequest struct {
	Title        string     `json:"title" validate:"required"`
	IsActive     *bool      `json:"is_active,omitempty"`
	CourseID     *uuid.UUID `json:"course_id,omitempty"`
	Descriptions string     `json:"descriptions"`
}
