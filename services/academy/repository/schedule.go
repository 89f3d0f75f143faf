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

const tableColumns = `id, start_time, end_time, room_id, type_id, descriptions`

const groupColumns = `id, name, title, course_id, table_id, start_date,
	end_date, price, descriptions, created_at, updated_at`

const groupColumnsPrefixed = `g.id, g.name, g.title, g.course_id, g.table_id,
	g.start_date, g.end_date, g.price, g.descriptions, g.created_at,
	g.updated_at`

// ListTables returns schedule slots ordered by start time
func (r *AcademyRepo) ListTables(ctx context.Context, limit, offset int) ([]models.Table, error) {
	query := fmt.Sprintf(`SELECT %s FROM tables ORDER BY start_time LIMIT $1 OFFSET $2`, tableColumns)

	tables := []models.Table{}
	if err := r.db.SelectContext(ctx, &tables, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return tables, nil
}

// GetTableByID retrieves a schedule slot by id
func (r *AcademyRepo) GetTableByID(ctx context.Context, id uuid.UUID) (*models.Table, error) {
	query := fmt.Sprintf(`SELECT %s FROM tables WHERE id = $1`, tableColumns)

	var table models.Table
	if err := r.db.GetContext(ctx, &table, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get table: %w", err)
	}
	return &table, nil
}

// CreateTable inserts a new schedule slot
func (r *AcademyRepo) CreateTable(ctx context.Context, table *models.Table) error {
	query := `
		INSERT INTO tables (id, start_time, end_time, room_id, type_id, descriptions)
		VALUES (:id, :start_time, :end_time, :room_id, :type_id, :descriptions)
	`

	if _, err := r.db.NamedExecContext(ctx, query, table); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

// UpdateTable updates an existing schedule slot
func (r *AcademyRepo) UpdateTable(ctx context.Context, table *models.Table) error {
	query := `
		UPDATE tables
		SET start_time = :start_time, end_time = :end_time, room_id = :room_id,
			type_id = :type_id, descriptions = :descriptions
		WHERE id = :id
	`

	res, err := r.db.NamedExecContext(ctx, query, table)
	if err != nil {
		return fmt.Errorf("failed to update table: %w", err)
	}
	return requireRowsAffected(res, "failed to update table")
}

// DeleteTable removes a schedule slot
func (r *AcademyRepo) DeleteTable(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tables WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete table: %w", err)
	}
	return requireRowsAffected(res, "failed to delete table")
}

// ListGroups returns groups with their member sets, newest first
func (r *AcademyRepo) ListGroups(ctx context.Context, limit, offset int) ([]models.Group, error) {
	query := fmt.Sprintf(`SELECT %s FROM groups ORDER BY created_at DESC LIMIT $1 OFFSET $2`, groupColumns)

	groups := []models.Group{}
	if err := r.db.SelectContext(ctx, &groups, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	for i := range groups {
		if err := r.loadGroupMembers(ctx, &groups[i]); err != nil {
			return nil, err
		}
	}
	return groups, nil
}

// GetGroupByID retrieves a group with its member sets
func (r *AcademyRepo) GetGroupByID(ctx context.Context, id uuid.UUID) (*models.Group, error) {
	query := fmt.Sprintf(`SELECT %s FROM groups WHERE id = $1`, groupColumns)

	var group models.Group
	if err := r.db.GetContext(ctx, &group, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	if err := r.loadGroupMembers(ctx, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// CreateGroup inserts a group and its member rows atomically
func (r *AcademyRepo) CreateGroup(ctx context.Context, group *models.Group) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO groups (id, name, title, course_id, table_id, start_date,
			end_date, price, descriptions, created_at, updated_at)
		VALUES (:id, :name, :title, :course_id, :table_id, :start_date,
			:end_date, :price, :descriptions, :created_at, :updated_at)
	`
	if _, err := tx.NamedExecContext(ctx, query, group); err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}

	if err := insertGroupMembers(ctx, tx, group); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateGroup updates a group and replaces its member rows
func (r *AcademyRepo) UpdateGroup(ctx context.Context, group *models.Group) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE groups
		SET name = :name, title = :title, course_id = :course_id,
			table_id = :table_id, start_date = :start_date, end_date = :end_date,
			price = :price, descriptions = :descriptions, updated_at = :updated_at
		WHERE id = :id
	`
	res, err := tx.NamedExecContext(ctx, query, group)
	if err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}
	if err := requireRowsAffected(res, "failed to update group"); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM group_students WHERE group_id = $1`, group.ID); err != nil {
		return fmt.Errorf("failed to update group students: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM group_teachers WHERE group_id = $1`, group.ID); err != nil {
		return fmt.Errorf("failed to update group teachers: %w", err)
	}
	if err := insertGroupMembers(ctx, tx, group); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteGroup removes a group and its member rows
func (r *AcademyRepo) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	return requireRowsAffected(res, "failed to delete group")
}

func (r *AcademyRepo) loadGroupMembers(ctx context.Context, group *models.Group) error {
	group.StudentIDs = []uuid.UUID{}
	group.TeacherIDs = []uuid.UUID{}

	err := r.db.SelectContext(ctx, &group.StudentIDs,
		`SELECT student_id FROM group_students WHERE group_id = $1`, group.ID)
	if err != nil {
		return fmt.Errorf("failed to load group students: %w", err)
	}

	err = r.db.SelectContext(ctx, &group.TeacherIDs,
		`SELECT worker_id FROM group_teachers WHERE group_id = $1`, group.ID)
	if err != nil {
		return fmt.Errorf("failed to load group teachers: %w", err)
	}
	return nil
}

func insertGroupMembers(ctx context.Context, tx *sqlx.Tx, group *models.Group) error {
	for _, studentID := range group.StudentIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO group_students (group_id, student_id) VALUES ($1, $2)`,
			group.ID, studentID)
		if err != nil {
			return fmt.Errorf("failed to add group student: %w", err)
		}
	}
	for _, workerID := range group.TeacherIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO group_teachers (group_id, worker_id) VALUES ($1, $2)`,
			group.ID, workerID)
		if err != nil {
			return fmt.Errorf("failed to add group teacher: %w", err)
		}
	}
	return nil
}
