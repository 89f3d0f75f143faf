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

// GetUserByPhone retrieves a user by phone number
func (r *AuthRepo) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE phone = $1`, userColumns)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetUserByID retrieves a user by id
func (r *AuthRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetOrCreateUser provisions an active account for the phone number if none
// exists yet. Concurrent callers race on the unique phone constraint; the
// loser re-reads the winner's row.
func (r *AuthRepo) GetOrCreateUser(ctx context.Context, phone string) (*models.User, bool, error) {
	user, err := r.GetUserByPhone(ctx, phone)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, err
	}

	now := time.Now()
	created := models.User{
		ID:        uuid.New(),
		Phone:     phone,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	query := `
		INSERT INTO users (id, phone, password, full_name, is_active, is_staff,
			is_superuser, is_student, is_teacher, require_password_reset,
			created_at, updated_at)
		VALUES (:id, :phone, :password, :full_name, :is_active, :is_staff,
			:is_superuser, :is_student, :is_teacher, :require_password_reset,
			:created_at, :updated_at)
		ON CONFLICT (phone) DO NOTHING
	`

	res, err := r.db.NamedExecContext(ctx, query, created)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}
	if rows == 0 {
		// Lost the race: another request created the account first.
		user, err := r.GetUserByPhone(ctx, phone)
		if err != nil {
			return nil, false, err
		}
		return user, false, nil
	}

	return &created, true, nil
}

// UpdatePassword replaces a user's credential hash and sets the
// password-reset flag
func (r *AuthRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string, requireReset bool) error {
	query := `
		UPDATE users
		SET password = $1, require_password_reset = $2, updated_at = $3
		WHERE id = $4
	`

	res, err := r.db.ExecContext(ctx, query, passwordHash, requireReset, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
