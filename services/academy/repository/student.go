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

const studentColumns = `id, user_id, full_name, email, age, is_line,
	descriptions, created_at, updated_at`

// ListStudents returns students, newest first
func (r *AcademyRepo) ListStudents(ctx context.Context, limit, offset int) ([]models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students ORDER BY created_at DESC LIMIT $1 OFFSET $2`, studentColumns)

	students := []models.Student{}
	if err := r.db.SelectContext(ctx, &students, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}

// GetStudentByID retrieves a student by id
func (r *AcademyRepo) GetStudentByID(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE id = $1`, studentColumns)

	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return &student, nil
}

const insertStudentQuery = `
	INSERT INTO students (id, user_id, full_name, email, age, is_line,
		descriptions, created_at, updated_at)
	VALUES (:id, :user_id, :full_name, :email, :age, :is_line,
		:descriptions, :created_at, :updated_at)
`

// CreateStudent inserts a new student profile
func (r *AcademyRepo) CreateStudent(ctx context.Context, student *models.Student) error {
	if _, err := r.db.NamedExecContext(ctx, insertStudentQuery, student); err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

// CreateStudentWithUser atomically provisions a user account and its student
// profile. The user insert is rolled back if the student insert fails.
func (r *AcademyRepo) CreateStudentWithUser(ctx context.Context, user *models.User, student *models.Student) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	userQuery := `
		INSERT INTO users (id, phone, password, full_name, is_active, is_staff,
			is_superuser, is_student, is_teacher, require_password_reset,
			created_at, updated_at)
		VALUES (:id, :phone, :password, :full_name, :is_active, :is_staff,
			:is_superuser, :is_student, :is_teacher, :require_password_reset,
			:created_at, :updated_at)
	`
	if _, err := tx.NamedExecContext(ctx, userQuery, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if _, err := tx.NamedExecContext(ctx, insertStudentQuery, student); err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateStudent updates an existing student profile
func (r *AcademyRepo) UpdateStudent(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET full_name = :full_name, email = :email, age = :age,
			is_line = :is_line, descriptions = :descriptions,
			updated_at = :updated_at
		WHERE id = :id
	`

	res, err := r.db.NamedExecContext(ctx, query, student)
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	return requireRowsAffected(res, "failed to update student")
}

// DeleteStudent removes a student profile
func (r *AcademyRepo) DeleteStudent(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	return requireRowsAffected(res, "failed to delete student")
}

// GetStudentGroups returns the groups a student belongs to
func (r *AcademyRepo) GetStudentGroups(ctx context.Context, studentID uuid.UUID) ([]models.Group, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM groups g
		JOIN group_students gs ON gs.group_id = g.id
		WHERE gs.student_id = $1
		ORDER BY g.created_at DESC
	`, groupColumnsPrefixed)

	groups := []models.Group{}
	if err := r.db.SelectContext(ctx, &groups, query, studentID); err != nil {
		return nil, fmt.Errorf("failed to list student groups: %w", err)
	}
	return groups, nil
}

const parentColumns = `id, student_id, full_name, phone_number, address,
	descriptions, created_at, updated_at`

// ListParents returns parents, newest first
func (r *AcademyRepo) ListParents(ctx context.Context, limit, offset int) ([]models.Parent, error) {
	query := fmt.Sprintf(`SELECT %s FROM parents ORDER BY created_at DESC LIMIT $1 OFFSET $2`, parentColumns)

	parents := []models.Parent{}
	if err := r.db.SelectContext(ctx, &parents, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list parents: %w", err)
	}
	return parents, nil
}

// GetParentByID retrieves a parent by id
func (r *AcademyRepo) GetParentByID(ctx context.Context, id uuid.UUID) (*models.Parent, error) {
	query := fmt.Sprintf(`SELECT %s FROM parents WHERE id = $1`, parentColumns)

	var parent models.Parent
	if err := r.db.GetContext(ctx, &parent, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get parent: %w", err)
	}
	return &parent, nil
}

// CreateParent inserts a new parent contact
func (r *AcademyRepo) CreateParent(ctx context.Context, parent *models.Parent) error {
	query := `
		INSERT INTO parents (id, student_id, full_name, phone_number, address,
			descriptions, created_at, updated_at)
		VALUES (:id, :student_id, :full_name, :phone_number, :address,
			:descriptions, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, parent); err != nil {
		return fmt.Errorf("failed to create parent: %w", err)
	}
	return nil
}

// UpdateParent updates an existing parent contact
func (r *AcademyRepo) UpdateParent(ctx context.Context, parent *models.Parent) error {
	query := `
		UPDATE parents
		SET student_id = :student_id, full_name = :full_name,
			phone_number = :phone_number, address = :address,
			descriptions = :descriptions, updated_at = :updated_at
		WHERE id = :id
	`

	res, err := r.db.NamedExecContext(ctx, query, parent)
	if err != nil {
		return fmt.Errorf("failed to update parent: %w", err)
	}
	return requireRowsAffected(res, "failed to update parent")
}

// DeleteParent removes a parent contact
func (r *AcademyRepo) DeleteParent(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM parents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete parent: %w", err)
	}
	return requireRowsAffected(res, "failed to delete parent")
}
