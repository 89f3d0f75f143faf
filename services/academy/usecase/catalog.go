package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/markazhub/markaz/internal/pkg/models"
	"github.com/markazhub/markaz/internal/utils"
)

// ListCatalogItems returns a page of lookup entries of one kind
func (u *AcademyUC) ListCatalogItems(ctx context.Context, kind models.CatalogKind, p utils.Pagination) ([]models.CatalogItem, error) {
	return u.repo.ListCatalogItems(ctx, kind, p.Limit, p.Offset)
}

// GetCatalogItem returns a single lookup entry
func (u *AcademyUC) GetCatalogItem(ctx context.Context, kind models.CatalogKind, id uuid.UUID) (*models.CatalogItem, error) {
	return u.repo.GetCatalogItemByID(ctx, kind, id)
}

// CreateCatalogItem creates a lookup entry. The course reference is only
// persisted for topics.
func (u *AcademyUC) CreateCatalogItem(ctx context.Context, kind models.CatalogKind, req *models.CatalogItemRequest) (*models.CatalogItem, error) {
	item := &models.CatalogItem{
		ID:           uuid.New(),
		Title:        req.Title,
		IsActive:     true,
		Descriptions: req.Descriptions,
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if kind == models.CatalogTopic {
		item.CourseID = req.CourseID
	}

	if err := u.repo.CreateCatalogItem(ctx, kind, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateCatalogItem applies the request to an existing lookup entry
func (u *AcademyUC) UpdateCatalogItem(ctx context.Context, kind models.CatalogKind, id uuid.UUID, req *models.CatalogItemRequest) (*models.CatalogItem, error) {
	item, err := u.repo.GetCatalogItemByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	item.Title = req.Title
	item.Descriptions = req.Descriptions
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if kind == models.CatalogTopic {
		item.CourseID = req.CourseID
	}

	if err := u.repo.UpdateCatalogItem(ctx, kind, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteCatalogItem removes a lookup entry
func (u *AcademyUC) DeleteCatalogItem(ctx context.Context, kind models.CatalogKind, id uuid.UUID) error {
	return u.repo.DeleteCatalogItem(ctx, kind, id)
}
