package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/markazhub/markaz/internal/pkg/apperrors"
	"github.com/markazhub/markaz/internal/pkg/models"
)

const userColumns = `id, phone, password, full_name, is_active, is_staff,
	is_superuser, is_student, is_teacher, require_password_reset,
	created_at, updated_at`

// ListUsers returns users, newest first
func (r *AcademyRepo) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`, userColumns)

	users := []models.User{}
	if err := r.db.SelectContext(ctx, &users, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUserByID retrieves a user by id
func (r *AcademyRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// CreateUser inserts a new user row
func (r *AcademyRepo) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, phone, password, full_name, is_active, is_staff,
			is_superuser, is_student, is_teacher, require_password_reset,
			created_at, updated_at)
		VALUES (:id, :phone, :password, :full_name, :is_active, :is_staff,
			:is_superuser, :is_student, :is_teacher, :require_password_reset,
			:created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// UpdateUser updates an existing user row
func (r *AcademyRepo) UpdateUser(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET phone = :phone, password = :password, full_name = :full_name,
			is_active = :is_active, is_staff = :is_staff,
			is_superuser = :is_superuser, is_student = :is_student,
			is_teacher = :is_teacher, updated_at = :updated_at
		WHERE id = :id
	`

	res, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return requireRowsAffected(res, "failed to update user")
}

// DeleteUser removes a user row
func (r *AcademyRepo) DeleteUser(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return requireRowsAffected(res, "failed to delete user")
}

// MarkUserStaff sets the staff flag on a user
func (r *AcademyRepo) MarkUserStaff(ctx context.Context, id uuid.UUID) error {
	return r.setUserFlag(ctx, id, "is_staff")
}

// MarkUserStudent sets the student flag on a user
func (r *AcademyRepo) MarkUserStudent(ctx context.Context, id uuid.UUID) error {
	return r.setUserFlag(ctx, id, "is_student")
}

// MarkUserTeacher sets the teacher flag on a user
func (r *AcademyRepo) MarkUserTeacher(ctx context.Context, id uuid.UUID) error {
	return r.setUserFlag(ctx, id, "is_teacher")
}

func (r *AcademyRepo) setUserFlag(ctx context.Context, id uuid.UUID, column string) error {
	query := fmt.Sprintf(`UPDATE users SET %s = TRUE, updated_at = $1 WHERE id = $2`, column)

	res, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update user flag: %w", err)
	}
	return requireRowsAffected(res, "failed to update user flag")
}

// requireRowsAffected maps a zero-row result to ErrNotFound
func requireRowsAffected(res sql.Result, msg string) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", msg, err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
