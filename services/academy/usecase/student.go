package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/markazhub/markaz/internal/pkg/apperrors"
	"github.com/markazhub/markaz/internal/pkg/logger"
	"github.com/markazhub/markaz/internal/pkg/models"
	"github.com/markazhub/markaz/internal/utils"
)

// ListStudents returns a page of students
func (u *AcademyUC) ListStudents(ctx context.Context, p utils.Pagination) ([]models.Student, error) {
	return u.repo.ListStudents(ctx, p.Limit, p.Offset)
}

// GetStudent returns a single student
func (u *AcademyUC) GetStudent(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	return u.repo.GetStudentByID(ctx, id)
}

// CreateStudent creates a student profile for an existing user and marks the
// user account as a student
func (u *AcademyUC) CreateStudent(ctx context.Context, req *models.StudentRequest) (*models.Student, error) {
	student := newStudent(req)
	if err := u.repo.CreateStudent(ctx, student); err != nil {
		return nil, err
	}

	if student.UserID != uuid.Nil {
		if err := u.repo.MarkUserStudent(ctx, student.UserID); err != nil {
			return nil, err
		}
	}
	return student, nil
}

// CreateStudentWithUser provisions a user account and its student profile in
// one transaction. Nothing is persisted if either part fails.
func (u *AcademyUC) CreateStudentWithUser(ctx context.Context, req *models.UserAndStudentRequest) (*models.Student, error) {
	phone, err := utils.ValidatePhone(req.User.Phone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidPhone, err)
	}

	now := time.Now()
	user := &models.User{
		ID:        uuid.New(),
		Phone:     phone,
		FullName:  req.User.FullName,
		IsActive:  true,
		IsStaff:   req.User.IsStaff,
		IsStudent: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.User.IsActive != nil {
		user.IsActive = *req.User.IsActive
	}
	if req.User.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.User.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hash)
	}

	student := newStudent(&req.Student)
	student.UserID = user.ID
	if student.FullName == "" {
		student.FullName = user.FullName
	}

	if err := u.repo.CreateStudentWithUser(ctx, user, student); err != nil {
		return nil, err
	}

	logger.Info("student account provisioned", logger.Fields{
		"user_id":    user.ID.String(),
		"student_id": student.ID.String(),
	})
	return student, nil
}

// UpdateStudent applies the request to an existing student
func (u *AcademyUC) UpdateStudent(ctx context.Context, id uuid.UUID, req *models.StudentRequest) (*models.Student, error) {
	student, err := u.repo.GetStudentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	student.FullName = req.FullName
	student.Email = req.Email
	student.Age = req.Age
	student.IsLine = req.IsLine
	student.Descriptions = req.Descriptions
	student.UpdatedAt = time.Now()

	if err := u.repo.UpdateStudent(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// DeleteStudent removes a student profile
func (u *AcademyUC) DeleteStudent(ctx context.Context, id uuid.UUID) error {
	return u.repo.DeleteStudent(ctx, id)
}

// GetStudentGroups returns the groups a student belongs to
func (u *AcademyUC) GetStudentGroups(ctx context.Context, studentID uuid.UUID) ([]models.Group, error) {
	if _, err := u.repo.GetStudentByID(ctx, studentID); err != nil {
		return nil, err
	}
	return u.repo.GetStudentGroups(ctx, studentID)
}

func newStudent(req *models.StudentRequest) *models.Student {
	now := time.Now()
	return &models.Student{
		ID:           uuid.New(),
		UserID:       req.UserID,
		FullName:     req.FullName,
		Email:        req.Email,
		Age:          req.Age,
		IsLine:       req.IsLine,
		Descriptions: req.Descriptions,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ListParents returns a page of parents
func (u *AcademyUC) ListParents(ctx context.Context, p utils.Pagination) ([]models.Parent, error) {
	return u.repo.ListParents(ctx, p.Limit, p.Offset)
}

// GetParent returns a single parent
func (u *AcademyUC) GetParent(ctx context.Context, id uuid.UUID) (*models.Parent, error) {
	return u.repo.GetParentByID(ctx, id)
}

// CreateParent records a parent contact for a student
func (u *AcademyUC) CreateParent(ctx context.Context, req *models.ParentRequest) (*models.Parent, error) {
	if _, err := u.repo.GetStudentByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	now := time.Now()
	parent := &models.Parent{
		ID:           uuid.New(),
		StudentID:    req.StudentID,
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
		Address:      req.Address,
		Descriptions: req.Descriptions,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.repo.CreateParent(ctx, parent); err != nil {
		return nil, err
	}
	return parent, nil
}

// UpdateParent applies the request to an existing parent
func (u *AcademyUC) UpdateParent(ctx context.Context, id uuid.UUID, req *models.ParentRequest) (*models.Parent, error) {
	parent, err := u.repo.GetParentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	parent.StudentID = req.StudentID
	parent.FullName = req.FullName
	parent.PhoneNumber = req.PhoneNumber
	parent.Address = req.Address
	parent.Descriptions = req.Descriptions
	parent.UpdatedAt = time.Now()

	if err := u.repo.UpdateParent(ctx, parent); err != nil {
		return nil, err
	}
	return parent, nil
}

// DeleteParent removes a parent contact
func (u *AcademyUC) DeleteParent(ctx context.Context, id uuid.UUID) error {
	return u.repo.DeleteParent(ctx, id)
}
