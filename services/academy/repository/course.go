package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/markazhub/markaz/internal/pkg/apperrors"
	"github.com/markazhub/markaz/internal/pkg/constants"
	"github.com/markazhub/markaz/internal/pkg/models"
)

const courseColumns = `id, name, title, descriptions`

// ListCourses returns courses ordered by name
func (r *AcademyRepo) ListCourses(ctx context.Context, limit, offset int) ([]models.Course, error) {
	query := fmt.Sprintf(`SELECT %s FROM courses ORDER BY name LIMIT $1 OFFSET $2`, courseColumns)

	courses := []models.Course{}
	if err := r.db.SelectContext(ctx, &courses, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

// GetCourseByID retrieves a course by id
func (r *AcademyRepo) GetCourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	query := fmt.Sprintf(`SELECT %s FROM courses WHERE id = $1`, courseColumns)

	var course models.Course
	if err := r.db.GetContext(ctx, &course, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return &course, nil
}

// CreateCourse inserts a new course. Course names are unique.
func (r *AcademyRepo) CreateCourse(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (id, name, title, descriptions)
		VALUES (:id, :name, :title, :descriptions)
	`

	if _, err := r.db.NamedExecContext(ctx, query, course); err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

// UpdateCourse updates an existing course
func (r *AcademyRepo) UpdateCourse(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET name = :name, title = :title, descriptions = :descriptions
		WHERE id = :id
	`

	res, err := r.db.NamedExecContext(ctx, query, course)
	if err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}
	return requireRowsAffected(res, "failed to update course")
}

// DeleteCourse removes a course
func (r *AcademyRepo) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	return requireRowsAffected(res, "failed to delete course")
}

const enrollmentColumns = `id, student_id, course_id, status, date_joined`

// ListEnrollments returns enrollments, newest first
func (r *AcademyRepo) ListEnrollments(ctx context.Context, limit, offset int) ([]models.Enrollment, error) {
	query := fmt.Sprintf(`SELECT %s FROM enrollments ORDER BY date_joined DESC LIMIT $1 OFFSET $2`, enrollmentColumns)

	enrollments := []models.Enrollment{}
	if err := r.db.SelectContext(ctx, &enrollments, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	return enrollments, nil
}

// GetEnrollmentByID retrieves an enrollment by id
func (r *AcademyRepo) GetEnrollmentByID(ctx context.Context, id uuid.UUID) (*models.Enrollment, error) {
	query := fmt.Sprintf(`SELECT %s FROM enrollments WHERE id = $1`, enrollmentColumns)

	var enrollment models.Enrollment
	if err := r.db.GetContext(ctx, &enrollment, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}
	return &enrollment, nil
}

// UpdateEnrollment updates an enrollment's status and join date
func (r *AcademyRepo) UpdateEnrollment(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		UPDATE enrollments
		SET status = :status, date_joined = :date_joined
		WHERE id = :id
	`

	res, err := r.db.NamedExecContext(ctx, query, enrollment)
	if err != nil {
		return fmt.Errorf("failed to update enrollment: %w", err)
	}
	return requireRowsAffected(res, "failed to update enrollment")
}

// DeleteEnrollment removes an enrollment
func (r *AcademyRepo) DeleteEnrollment(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete enrollment: %w", err)
	}
	return requireRowsAffected(res, "failed to delete enrollment")
}

// CountEnrollmentsByStatus counts enrollments per status whose join date
// falls within the inclusive range
func (r *AcademyRepo) CountEnrollmentsByStatus(ctx context.Context, from, to time.Time) (*models.EnrollmentStatistics, error) {
	query := `
		SELECT status, COUNT(*) AS total
		FROM enrollments
		WHERE date_joined >= $1 AND date_joined <= $2
		GROUP BY status
	`

	rows := []struct {
		Status string `db:"status"`
		Total  int    `db:"total"`
	}{}
	if err := r.db.SelectContext(ctx, &rows, query, from, to); err != nil {
		return nil, fmt.Errorf("failed to count enrollments: %w", err)
	}

	stats := models.EnrollmentStatistics{}
	for _, row := range rows {
		switch row.Status {
		case constants.EnrollmentRegistered:
			stats.Registered = row.Total
		case constants.EnrollmentStudying:
			stats.Studying = row.Total
		case constants.EnrollmentGraduated:
			stats.Graduated = row.Total
		}
	}
	return &stats, nil
}
