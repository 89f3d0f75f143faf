package models

import "github.com/google/uuid"

// GroupHomework assigns a topic as homework to a group
type GroupHomework struct {
	ID           uuid.UUID `json:"id" db:"id"`
	GroupID      uuid.UUID `json:"group_id" db:"group_id"`
	TopicID      uuid.UUID `json:"topic_id" db:"topic_id"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	Descriptions string    `json:"descriptions" db:"descriptions"`
}

// GroupHomeworkRequest is the payload for assigning homework to a group
type GroupHomeworkRequest struct {
	GroupID      uuid.UUID `json:"group_id" validate:"required"`
	TopicID      uuid.UUID `json:"topic_id" validate:"required"`
	IsActive     *bool     `json:"is_active,omitempty"`
	Descriptions string    `json:"descriptions"`
}

// Homework is a student's submission against a group homework
type Homework struct {
	ID              uuid.UUID `json:"id" db:"id"`
	GroupHomeworkID uuid.UUID `json:"group_homework_id" db:"group_homework_id"`
	StudentID       uuid.UUID `json:"student_id" db:"student_id"`
	Link            string    `json:"link" db:"link"`
	Grade           string    `json:"grade" db:"grade"`
	IsActive        bool      `json:"is_active" db:"is_active"`
	Descriptions    string    `json:"descriptions" db:"descriptions"`
}

// HomeworkRequest is the payload for creating or updating a submission
type HomeworkRequest struct {
	GroupHomeworkID uuid.UUID `json:"group_homework_id" validate:"required"`
	StudentID       uuid.UUID `json:"student_id" validate:"required"`
	Link            string    `json:"link"`
	Grade           string    `json:"grade"`
	IsActive        *bool     `json:"is_active,omitempty"`
	Descriptions    string    `json:"descriptions"`
}
