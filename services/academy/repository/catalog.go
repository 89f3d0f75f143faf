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

// catalogTables maps each lookup kind to its backing table. Topics carry a
// course reference; the other kinds share the plain shape.
var catalogTables = map[models.CatalogKind]string{
	models.CatalogRoom:            "rooms",
	models.CatalogDay:             "days",
	models.CatalogTableType:       "table_types",
	models.CatalogTopic:           "topics",
	models.CatalogAttendanceLevel: "attendance_levels",
}

func catalogTable(kind models.CatalogKind) (string, error) {
	table, ok := catalogTables[kind]
	if !ok {
		return "", fmt.Errorf("%w: unknown catalog kind %q", apperrors.ErrNotFound, kind)
	}
	return table, nil
}

func catalogColumns(kind models.CatalogKind) string {
	if kind == models.CatalogTopic {
		return `id, title, is_active, course_id, descriptions`
	}
	return `id, title, is_active, NULL::uuid AS course_id, descriptions`
}

// ListCatalogItems returns the lookup entries of one kind
func (r *AcademyRepo) ListCatalogItems(ctx context.Context, kind models.CatalogKind, limit, offset int) ([]models.CatalogItem, error) {
	table, err := catalogTable(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY title LIMIT $1 OFFSET $2`, catalogColumns(kind), table)

	items := []models.CatalogItem{}
	if err := r.db.SelectContext(ctx, &items, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", table, err)
	}
	return items, nil
}

// GetCatalogItemByID retrieves one lookup entry
func (r *AcademyRepo) GetCatalogItemByID(ctx context.Context, kind models.CatalogKind, id uuid.UUID) (*models.CatalogItem, error) {
	table, err := catalogTable(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, catalogColumns(kind), table)

	var item models.CatalogItem
	if err := r.db.GetContext(ctx, &item, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s item: %w", table, err)
	}
	return &item, nil
}

// CreateCatalogItem inserts a lookup entry
func (r *AcademyRepo) CreateCatalogItem(ctx context.Context, kind models.CatalogKind, item *models.CatalogItem) error {
	table, err := catalogTable(kind)
	if err != nil {
		return err
	}

	var query string
	if kind == models.CatalogTopic {
		query = fmt.Sprintf(`
			INSERT INTO %s (id, title, is_active, course_id, descriptions)
			VALUES (:id, :title, :is_active, :course_id, :descriptions)
		`, table)
	} else {
		query = fmt.Sprintf(`
			INSERT INTO %s (id, title, is_active, descriptions)
			VALUES (:id, :title, :is_active, :descriptions)
		`, table)
	}

	if _, err := r.db.NamedExecContext(ctx, query, item); err != nil {
		return fmt.Errorf("failed to create %s item: %w", table, err)
	}
	return nil
}

// UpdateCatalogItem updates a lookup entry
func (r *AcademyRepo) UpdateCatalogItem(ctx context.Context, kind models.CatalogKind, item *models.CatalogItem) error {
	table, err := catalogTable(kind)
	if err != nil {
		return err
	}

	var query string
	if kind == models.CatalogTopic {
		query = fmt.Sprintf(`
			UPDATE %s
			SET title = :title, is_active = :is_active, course_id = :course_id,
				descriptions = :descriptions
			WHERE id = :id
		`, table)
	} else {
		query = fmt.Sprintf(`
			UPDATE %s
			SET title = :title, is_active = :is_active, descriptions = :descriptions
			WHERE id = :id
		`, table)
	}

	res, err := r.db.NamedExecContext(ctx, query, item)
	if err != nil {
		return fmt.Errorf("failed to update %s item: %w", table, err)
	}
	return requireRowsAffected(res, fmt.Sprintf("failed to update %s item", table))
}

// DeleteCatalogItem removes a lookup entry
func (r *AcademyRepo) DeleteCatalogItem(ctx context.Context, kind models.CatalogKind, id uuid.UUID) error {
	table, err := catalogTable(kind)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		return fmt.Errorf("failed to delete %s item: %w", table, err)
	}
	return requireRowsAffected(res, fmt.Sprintf("failed to delete %s item", table))
}
