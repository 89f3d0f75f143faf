package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/markazhub/markaz/internal/pkg/models"
	"github.com/markazhub/markaz/internal/utils"
)

// ListWorkers returns a page of workers
func (u *AcademyUC) ListWorkers(ctx context.Context, p utils.Pagination) ([]models.Worker, error) {
	return u.repo.ListWorkers(ctx, p.Limit, p.Offset)
}

// GetWorker returns a single worker
func (u *AcademyUC) GetWorker(ctx context.Context, id uuid.UUID) (*models.Worker, error) {
	return u.repo.GetWorkerByID(ctx, id)
}

// CreateWorker creates a worker profile and marks the user account as staff
func (u *AcademyUC) CreateWorker(ctx context.Context, req *models.WorkerRequest) (*models.Worker, error) {
	if _, err := u.repo.GetUserByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	worker := newWorker(req)
	if err := u.repo.CreateWorker(ctx, worker); err != nil {
		return nil, err
	}

	if err := u.repo.MarkUserStaff(ctx, req.UserID); err != nil {
		return nil, err
	}
	return worker, nil
}

// UpdateWorker applies the request to an existing worker
func (u *AcademyUC) UpdateWorker(ctx context.Context, id uuid.UUID, req *models.WorkerRequest) (*models.Worker, error) {
	worker, err := u.repo.GetWorkerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	worker.Descriptions = req.Descriptions
	worker.DepartmentIDs = req.DepartmentIDs
	worker.CourseIDs = req.CourseIDs
	worker.UpdatedAt = time.Now()

	if err := u.repo.UpdateWorker(ctx, worker); err != nil {
		return nil, err
	}
	return worker, nil
}

// DeleteWorker removes a worker profile
func (u *AcademyUC) DeleteWorker(ctx context.Context, id uuid.UUID) error {
	return u.repo.DeleteWorker(ctx, id)
}

// ListTeachers returns workers whose user account carries the teacher flag
func (u *AcademyUC) ListTeachers(ctx context.Context, p utils.Pagination) ([]models.Worker, error) {
	return u.repo.ListTeachers(ctx, p.Limit, p.Offset)
}

// CreateTeacher creates a worker profile and marks the user account as both
// staff and teacher
func (u *AcademyUC) CreateTeacher(ctx context.Context, req *models.WorkerRequest) (*models.Worker, error) {
	worker, err := u.CreateWorker(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := u.repo.MarkUserTeacher(ctx, req.UserID); err != nil {
		return nil, err
	}
	return worker, nil
}

// GetTeacherGroups returns the groups a teacher is assigned to
func (u *AcademyUC) GetTeacherGroups(ctx context.Context, workerID uuid.UUID) ([]models.Group, error) {
	if _, err := u.repo.GetWorkerByID(ctx, workerID); err != nil {
		return nil, err
	}
	return u.repo.GetTeacherGroups(ctx, workerID)
}

func newWorker(req *models.WorkerRequest) *models.Worker {
	now := time.Now()
	return &models.Worker{
		ID:            uuid.New(),
		UserID:        req.UserID,
		Descriptions:  req.Descriptions,
		DepartmentIDs: req.DepartmentIDs,
		CourseIDs:     req.CourseIDs,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ListDepartments returns a page of departments
func (u *AcademyUC) ListDepartments(ctx context.Context, p utils.Pagination) ([]models.Department, error) {
	return u.repo.ListDepartments(ctx, p.Limit, p.Offset)
}

// GetDepartment returns a single department
func (u *AcademyUC) GetDepartment(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	return u.repo.GetDepartmentByID(ctx, id)
}

// CreateDepartment creates a department
func (u *AcademyUC) CreateDepartment(ctx context.Context, req *models.DepartmentRequest) (*models.Department, error) {
	department := &models.Department{
		ID:           uuid.New(),
		Title:        req.Title,
		IsActive:     true,
		Descriptions: req.Descriptions,
	}
	if req.IsActive != nil {
		department.IsActive = *req.IsActive
	}

	if err := u.repo.CreateDepartment(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

// UpdateDepartment applies the request to an existing department
func (u *AcademyUC) UpdateDepartment(ctx context.Context, id uuid.UUID, req *models.DepartmentRequest) (*models.Department, error) {
	department, err := u.repo.GetDepartmentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	department.Title = req.Title
	department.Descriptions = req.Descriptions
	if req.IsActive != nil {
		department.IsActive = *req.IsActive
	}

	if err := u.repo.UpdateDepartment(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

// DeleteDepartment removes a department
func (u *AcademyUC) DeleteDepartment(ctx context.Context, id uuid.UUID) error {
	return u.repo.DeleteDepartment(ctx, id)
}

// AddDepartmentWorker assigns a worker to a department
func (u *AcademyUC) AddDepartmentWorker(ctx context.Context, departmentID, workerID uuid.UUID) error {
	if _, err := u.repo.GetDepartmentByID(ctx, departmentID); err != nil {
		return err
	}
	if _, err := u.repo.GetWorkerByID(ctx, workerID); err != nil {
		return err
	}
	return u.repo.AddDepartmentWorker(ctx, departmentID, workerID)
}
