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

const groupHomeworkColumns = `id, group_id, topic_id, is_active, descriptions`

// ListGroupHomeworks returns homework assignments
func (r *AcademyRepo) ListGroupHomeworks(ctx context.Context, limit, offset int) ([]models.GroupHomework, error) {
	query := fmt.Sprintf(`SELECT %s FROM group_homeworks ORDER BY id LIMIT $1 OFFSET $2`, groupHomeworkColumns)

	homeworks := []models.GroupHomework{}
	if err := r.db.SelectContext(ctx, &homeworks, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list group homeworks: %w", err)
	}
	return homeworks, nil
}

// GetGroupHomeworkByID retrieves a homework assignment by id
func (r *AcademyRepo) GetGroupHomeworkByID(ctx context.Context, id uuid.UUID) (*models.GroupHomework, error) {
	query := fmt.Sprintf(`SELECT %s FROM group_homeworks WHERE id = $1`, groupHomeworkColumns)

	var hw models.GroupHomework
	if err := r.db.GetContext(ctx, &hw, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get group homework: %w", err)
	}
	return &hw, nil
}

// CreateGroupHomework inserts a homework assignment
func (r *AcademyRepo) CreateGroupHomework(ctx context.Context, hw *models.GroupHomework) error {
	query := `
		INSERT INTO group_homeworks (id, group_id, topic_id, is_active, descriptions)
		VALUES (:id, :group_id, :topic_id, :is_active, :descriptions)
	`

	if _, err := r.db.NamedExecContext(ctx, query, hw); err != nil {
		return fmt.Errorf("failed to create group homework: %w", err)
	}
	return nil
}

// UpdateGroupHomework updates a homework assignment
func (r *AcademyRepo) UpdateGroupHomework(ctx context.Context, hw *models.GroupHomework) error {
	query := `
		UPDATE group_homeworks
		SET group_id = :group_id, topic_id = :topic_id, is_active = :is_active,
			descriptions = :descriptions
		WHERE id = :id
	`

	res, err := r.db.NamedExecContext(ctx, query, hw)
	if err != nil {
		return fmt.Errorf("failed to update group homework: %w", err)
	}
	return requireRowsAffected(res, "failed to update group homework")
}

// DeleteGroupHomework removes a homework assignment
func (r *AcademyRepo) DeleteGroupHomework(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM group_homeworks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete group homework: %w", err)
	}
	return requireRowsAffected(res, "failed to delete group homework")
}

const homeworkColumns = `id, group_homework_id, student_id, link, grade,
	is_active, descriptions`

// ListHomeworks returns student submissions
func (r *AcademyRepo) ListHomeworks(ctx context.Context, limit, offset int) ([]models.Homework, error) {
	query := fmt.Sprintf(`SELECT %s FROM homeworks ORDER BY id LIMIT $1 OFFSET $2`, homeworkColumns)

	homeworks := []models.Homework{}
	if err := r.db.SelectContext(ctx, &homeworks, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list homeworks: %w", err)
	}
	return homeworks, nil
}

// GetHomeworkByID retrieves a submission by id
func (r *AcademyRepo) GetHomeworkByID(ctx context.Context, id uuid.UUID) (*models.Homework, error) {
	query := fmt.Sprintf(`SELECT %s FROM homeworks WHERE id = $1`, homeworkColumns)

	var hw models.Homework
	if err := r.db.GetContext(ctx, &hw, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get homework: %w", err)
	}
	return &hw, nil
}

// CreateHomework inserts a submission
func (r *AcademyRepo) CreateHomework(ctx context.Context, hw *models.Homework) error {
	query := `
		INSERT INTO homeworks (id, group_homework_id, student_id, link, grade,
			is_active, descriptions)
		VALUES (:id, :group_homework_id, :student_id, :link, :grade,
			:is_active, :descriptions)
	`

	if _, err := r.db.NamedExecContext(ctx, query, hw); err != nil {
		return fmt.Errorf("failed to create homework: %w", err)
	}
	return nil
}

// UpdateHomework updates a submission
func (r *AcademyRepo) UpdateHomework(ctx context.Context, hw *models.Homework) error {
	query := `
		UPDATE homeworks
		SET group_homework_id = :group_homework_id, student_id = :student_id,
			link = :link, grade = :grade, is_active = :is_active,
			descriptions = :descriptions
		WHERE id = :id
	`

	res, err := r.db.NamedExecContext(ctx, query, hw)
	if err != nil {
		return fmt.Errorf("failed to update homework: %w", err)
	}
	return requireRowsAffected(res, "failed to update homework")
}

// DeleteHomework removes a submission
func (r *AcademyRepo) DeleteHomework(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM homeworks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete homework: %w", err)
	}
	return requireRowsAffected(res, "failed to delete homework")
}
