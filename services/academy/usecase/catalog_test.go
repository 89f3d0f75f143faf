package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markazhub/markaz/internal/pkg/models"
)

func TestCreateCatalogItem_TopicKeepsCourse(t *testing.T) {
	uc, mockRepo := setupAcademyUC(t)

	courseID := uuid.New()
	mockRepo.EXPECT().
		CreateCatalogItem(gomock.Any(), models.CatalogTopic, gomock.Any()).
		DoAndReturn(func(ctx context.Context, kind models.CatalogKind, item *models.CatalogItem) error {
			require.NotNil(t, item.CourseID)
			assert.Equal(t, courseID, *item.CourseID)
			return nil
		})

	item, err := uc.CreateCatalogItem(context.Background(), models.CatalogTopic, &models.CatalogItemRequest{
		Title:    "Past Simple",
		CourseID: &courseID,
	})
	require.NoError(t, err)
	assert.True(t, item.IsActive)
}

func TestCreateCatalogItem_RoomDropsCourse(t *testing.T) {
	uc, mockRepo := setupAcademyUC(t)

	courseID := uuid.New()
	mockRepo.EXPECT().
		CreateCatalogItem(gomock.Any(), models.CatalogRoom, gomock.Any()).
		DoAndReturn(func(ctx context.Context, kind models.CatalogKind, item *models.CatalogItem) error {
			assert.Nil(t, item.CourseID)
			return nil
		})

	_, err := uc.CreateCatalogItem(context.Background(), models.CatalogRoom, &models.CatalogItemRequest{
		Title:    "Room 101",
		CourseID: &courseID,
	})
	assert.NoError(t, err)
}

func TestCreateCatalogItem_ExplicitInactive(t *testing.T) {
	uc, mockRepo := setupAcademyUC(t)

	inactive := false
	mockRepo.EXPECT().
		CreateCatalogItem(gomock.Any(), models.CatalogDay, gomock.Any()).
		Return(nil)

	item, err := uc.CreateCatalogItem(context.Background(), models.CatalogDay, &models.CatalogItemRequest{
		Title:    "Sunday",
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.False(t, item.IsActive)
}
