package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/markazhub/markaz/internal/pkg/models"
	"github.com/markazhub/markaz/internal/utils"
)

// ListAttendances returns a page of attendance records
func (u *AcademyUC) ListAttendances(ctx context.Context, p utils.Pagination) ([]models.Attendance, error) {
	return u.repo.ListAttendances(ctx, p.Limit, p.Offset)
}

// GetAttendance returns a single attendance record
func (u *AcademyUC) GetAttendance(ctx context.Context, id uuid.UUID) (*models.Attendance, error) {
	return u.repo.GetAttendanceByID(ctx, id)
}

// CreateAttendance records a student's presence level for a group session
func (u *AcademyUC) CreateAttendance(ctx context.Context, req *models.AttendanceRequest) (*models.Attendance, error) {
	if _, err := u.repo.GetStudentByID(ctx, req.StudentID); err != nil {
		return nil, err
	}
	if _, err := u.repo.GetGroupByID(ctx, req.GroupID); err != nil {
		return nil, err
	}

	now := time.Now()
	att := &models.Attendance{
		ID:        uuid.New(),
		LevelID:   req.LevelID,
		StudentID: req.StudentID,
		GroupID:   req.GroupID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.repo.CreateAttendance(ctx, att); err != nil {
		return nil, err
	}
	return att, nil
}

// UpdateAttendance applies the request to an existing attendance record
func (u *AcademyUC) UpdateAttendance(ctx context.Context, id uuid.UUID, req *models.AttendanceRequest) (*models.Attendance, error) {
	att, err := u.repo.GetAttendanceByID(ctx, id)
	if err != nil {
		return nil, err
	}

	att.LevelID = req.LevelID
	att.StudentID = req.StudentID
	att.GroupID = req.GroupID
	att.UpdatedAt = time.Now()

	if err := u.repo.UpdateAttendance(ctx, att); err != nil {
		return nil, err
	}
	return att, nil
}

// DeleteAttendance removes an attendance record
func (u *AcademyUC) DeleteAttendance(ctx context.Context, id uuid.UUID) error {
	return u.repo.DeleteAttendance(ctx, id)
}
