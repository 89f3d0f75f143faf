package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/markazhub/markaz/internal/pkg/apperrors"
	"github.com/markazhub/markaz/internal/pkg/models"
)

const attendanceColumns = `id, level_id, student_id, group_id, created_at, updated_at`

// ListAttendances returns attendance records, newest first
func (r *AcademyRepo) ListAttendances(ctx context.Context, limit, offset int) ([]models.Attendance, error) {
	query := fmt.Sprintf(`SELECT %s FROM attendances ORDER BY created_at DESC LIMIT $1 OFFSET $2`, attendanceColumns)

	attendances := []models.Attendance{}
	if err := r.db.SelectContext(ctx, &attendances, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	return attendances, nil
}

// GetAttendanceByID retrieves an attendance record by id
func (r *AcademyRepo) GetAttendanceByID(ctx context.Context, id uuid.UUID) (*models.Attendance, error) {
	query := fmt.Sprintf(`SELECT %s FROM attendances WHERE id = $1`, attendanceColumns)

	var att models.Attendance
	if err := r.db.GetContext(ctx, &att, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	return &att, nil
}

// CreateAttendance inserts an attendance record
func (r *AcademyRepo) CreateAttendance(ctx context.Context, att *models.Attendance) error {
	query := `
		INSERT INTO attendances (id, level_id, student_id, group_id, created_at, updated_at)
		VALUES (:id, :level_id, :student_id, :group_id, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, att); err != nil {
		return fmt.Errorf("failed to create attendance: %w", err)
	}
	return nil
}

// UpdateAttendance updates an attendance record
func (r *AcademyRepo) UpdateAttendance(ctx context.Context, att *models.Attendance) error {
	query := `
		UPDATE attendances
		SET level_id = :level_id, student_id = :student_id, group_id = :group_id,
			updated_at = :updated_at
		WHERE id = :id
	`

	res, err := r.db.NamedExecContext(ctx, query, att)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	return requireRowsAffected(res, "failed to update attendance")
}

// DeleteAttendance removes an attendance record
func (r *AcademyRepo) DeleteAttendance(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	return requireRowsAffected(res, "failed to delete attendance")
}
