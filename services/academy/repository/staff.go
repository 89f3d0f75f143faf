package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/markazhub/markaz/internal/pkg/apperrors"
	"github.com/markazhub/markaz/internal/pkg/models"
)

const workerColumns = `id, user_id, descriptions, created_at, updated_at`

// ListWorkers returns workers with their department and course assignments,
// newest first
func (r *AcademyRepo) ListWorkers(ctx context.Context, limit, offset int) ([]models.Worker, error) {
	query := fmt.Sprintf(`SELECT %s FROM workers ORDER BY created_at DESC LIMIT $1 OFFSET $2`, workerColumns)

	workers := []models.Worker{}
	if err := r.db.SelectContext(ctx, &workers, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}

	for i := range workers {
		if err := r.loadWorkerLinks(ctx, &workers[i]); err != nil {
			return nil, err
		}
	}
	return workers, nil
}

// ListTeachers returns workers whose user account carries the teacher flag
func (r *AcademyRepo) ListTeachers(ctx context.Context, limit, offset int) ([]models.Worker, error) {
	query := `
		SELECT w.id, w.user_id, w.descriptions, w.created_at, w.updated_at
		FROM workers w
		JOIN users u ON u.id = w.user_id
		WHERE u.is_teacher = TRUE
		ORDER BY w.created_at DESC
		LIMIT $1 OFFSET $2
	`

	teachers := []models.Worker{}
	if err := r.db.SelectContext(ctx, &teachers, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list teachers: %w", err)
	}

	for i := range teachers {
		if err := r.loadWorkerLinks(ctx, &teachers[i]); err != nil {
			return nil, err
		}
	}
	return teachers, nil
}

// GetWorkerByID retrieves a worker with its assignments
func (r *AcademyRepo) GetWorkerByID(ctx context.Context, id uuid.UUID) (*models.Worker, error) {
	query := fmt.Sprintf(`SELECT %s FROM workers WHERE id = $1`, workerColumns)

	var worker models.Worker
	if err := r.db.GetContext(ctx, &worker, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	if err := r.loadWorkerLinks(ctx, &worker); err != nil {
		return nil, err
	}
	return &worker, nil
}

// CreateWorker inserts a worker and its assignment rows atomically
func (r *AcademyRepo) CreateWorker(ctx context.Context, worker *models.Worker) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO workers (id, user_id, descriptions, created_at, updated_at)
		VALUES (:id, :user_id, :descriptions, :created_at, :updated_at)
	`
	if _, err := tx.NamedExecContext(ctx, query, worker); err != nil {
		return fmt.Errorf("failed to create worker: %w", err)
	}

	if err := insertWorkerLinks(ctx, tx, worker); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateWorker updates a worker and replaces its assignment rows
func (r *AcademyRepo) UpdateWorker(ctx context.Context, worker *models.Worker) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE workers
		SET descriptions = :descriptions, updated_at = :updated_at
		WHERE id = :id
	`
	res, err := tx.NamedExecContext(ctx, query, worker)
	if err != nil {
		return fmt.Errorf("failed to update worker: %w", err)
	}
	if err := requireRowsAffected(res, "failed to update worker"); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM worker_departments WHERE worker_id = $1`, worker.ID); err != nil {
		return fmt.Errorf("failed to update worker departments: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM worker_courses WHERE worker_id = $1`, worker.ID); err != nil {
		return fmt.Errorf("failed to update worker courses: %w", err)
	}
	if err := insertWorkerLinks(ctx, tx, worker); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteWorker removes a worker and its assignment rows
func (r *AcademyRepo) DeleteWorker(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM workers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}
	return requireRowsAffected(res, "failed to delete worker")
}

// GetTeacherGroups returns the groups a teacher is assigned to
func (r *AcademyRepo) GetTeacherGroups(ctx context.Context, workerID uuid.UUID) ([]models.Group, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM groups g
		JOIN group_teachers gt ON gt.group_id = g.id
		WHERE gt.worker_id = $1
		ORDER BY g.created_at DESC
	`, groupColumnsPrefixed)

	groups := []models.Group{}
	if err := r.db.SelectContext(ctx, &groups, query, workerID); err != nil {
		return nil, fmt.Errorf("failed to list teacher groups: %w", err)
	}
	return groups, nil
}

func (r *AcademyRepo) loadWorkerLinks(ctx context.Context, worker *models.Worker) error {
	worker.DepartmentIDs = []uuid.UUID{}
	worker.CourseIDs = []uuid.UUID{}

	err := r.db.SelectContext(ctx, &worker.DepartmentIDs,
		`SELECT department_id FROM worker_departments WHERE worker_id = $1`, worker.ID)
	if err != nil {
		return fmt.Errorf("failed to load worker departments: %w", err)
	}

	err = r.db.SelectContext(ctx, &worker.CourseIDs,
		`SELECT course_id FROM worker_courses WHERE worker_id = $1`, worker.ID)
	if err != nil {
		return fmt.Errorf("failed to load worker courses: %w", err)
	}
	return nil
}

func insertWorkerLinks(ctx context.Context, tx *sqlx.Tx, worker *models.Worker) error {
	for _, deptID := range worker.DepartmentIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO worker_departments (worker_id, department_id) VALUES ($1, $2)`,
			worker.ID, deptID)
		if err != nil {
			return fmt.Errorf("failed to assign worker department: %w", err)
		}
	}
	for _, courseID := range worker.CourseIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO worker_courses (worker_id, course_id) VALUES ($1, $2)`,
			worker.ID, courseID)
		if err != nil {
			return fmt.Errorf("failed to assign worker course: %w", err)
		}
	}
	return nil
}

const departmentColumns = `id, title, is_active, descriptions`

// ListDepartments returns departments
func (r *AcademyRepo) ListDepartments(ctx context.Context, limit, offset int) ([]models.Department, error) {
	query := fmt.Sprintf(`SELECT %s FROM departments ORDER BY title LIMIT $1 OFFSET $2`, departmentColumns)

	departments := []models.Department{}
	if err := r.db.SelectContext(ctx, &departments, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}

// GetDepartmentByID retrieves a department by id
func (r *AcademyRepo) GetDepartmentByID(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	query := fmt.Sprintf(`SELECT %s FROM departments WHERE id = $1`, departmentColumns)

	var department models.Department
	if err := r.db.GetContext(ctx, &department, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	return &department, nil
}

// CreateDepartment inserts a new department
func (r *AcademyRepo) CreateDepartment(ctx context.Context, department *models.Department) error {
	query := `
		INSERT INTO departments (id, title, is_active, descriptions)
		VALUES (:id, :title, :is_active, :descriptions)
	`

	if _, err := r.db.NamedExecContext(ctx, query, department); err != nil {
		return fmt.Errorf("failed to create department: %w", err)
	}
	return nil
}

// UpdateDepartment updates an existing department
func (r *AcademyRepo) UpdateDepartment(ctx context.Context, department *models.Department) error {
	query := `
		UPDATE departments
		SET title = :title, is_active = :is_active, descriptions = :descriptions
		WHERE id = :id
	`

	res, err := r.db.NamedExecContext(ctx, query, department)
	if err != nil {
		return fmt.Errorf("failed to update department: %w", err)
	}
	return requireRowsAffected(res, "failed to update department")
}

// DeleteDepartment removes a department
func (r *AcademyRepo) DeleteDepartment(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return requireRowsAffected(res, "failed to delete department")
}

// AddDepartmentWorker assigns a worker to a department. Re-adding an existing
// assignment is a no-op.
func (r *AcademyRepo) AddDepartmentWorker(ctx context.Context, departmentID, workerID uuid.UUID) error {
	query := `
		INSERT INTO worker_departments (worker_id, department_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, workerID, departmentID); err != nil {
		return fmt.Errorf("failed to add department worker: %w", err)
	}
	return nil
}
