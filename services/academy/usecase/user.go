package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/markazhub/markaz/internal/pkg/apperrors"
	"github.com/markazhub/markaz/internal/pkg/models"
	"github.com/markazhub/markaz/internal/utils"
)

// ListUsers returns a page of users
func (u *AcademyUC) ListUsers(ctx context.Context, p utils.Pagination) ([]models.User, error) {
	return u.repo.ListUsers(ctx, p.Limit, p.Offset)
}

// GetUser returns a single user
func (u *AcademyUC) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return u.repo.GetUserByID(ctx, id)
}

// CreateUser creates a user account. The password is stored hashed.
func (u *AcademyUC) CreateUser(ctx context.Context, req *models.UserRequest) (*models.User, error) {
	phone, err := utils.ValidatePhone(req.Phone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidPhone, err)
	}

	now := time.Now()
	user := &models.User{
		ID:          uuid.New(),
		Phone:       phone,
		FullName:    req.FullName,
		IsActive:    true,
		IsStaff:     req.IsStaff,
		IsSuperuser: req.IsSuperuser,
		IsStudent:   req.IsStudent,
		IsTeacher:   req.IsTeacher,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hash)
	}

	if err := u.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser applies the request to an existing user
func (u *AcademyUC) UpdateUser(ctx context.Context, id uuid.UUID, req *models.UserRequest) (*models.User, error) {
	user, err := u.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Phone != "" {
		phone, err := utils.ValidatePhone(req.Phone)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidPhone, err)
		}
		user.Phone = phone
	}
	user.FullName = req.FullName
	user.IsStaff = req.IsStaff
	user.IsSuperuser = req.IsSuperuser
	user.IsStudent = req.IsStudent
	user.IsTeacher = req.IsTeacher
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hash)
	}

	user.UpdatedAt = time.Now()
	if err := u.repo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user account
func (u *AcademyUC) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return u.repo.DeleteUser(ctx, id)
}
