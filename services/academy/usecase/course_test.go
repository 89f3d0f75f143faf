package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markazhub/markaz/internal/pkg/apperrors"
	"github.com/markazhub/markaz/internal/pkg/constants"
	"github.com/markazhub/markaz/internal/pkg/models"
)

func TestEnrollmentStatistics(t *testing.T) {
	uc, mockRepo := setupAcademyUC(t)

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().
		CountEnrollmentsByStatus(gomock.Any(), from, to).
		Return(&models.EnrollmentStatistics{Registered: 12, Studying: 30, Graduated: 5}, nil)

	stats, err := uc.EnrollmentStatistics(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, 12, stats.Registered)
	assert.Equal(t, 30, stats.Studying)
	assert.Equal(t, 5, stats.Graduated)
}

func TestUpdateEnrollment_Status(t *testing.T) {
	uc, mockRepo := setupAcademyUC(t)

	id := uuid.New()
	existing := &models.Enrollment{
		ID:         id,
		Status:     constants.EnrollmentRegistered,
		DateJoined: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	mockRepo.EXPECT().
		GetEnrollmentByID(gomock.Any(), id).
		Return(existing, nil)

	mockRepo.EXPECT().
		UpdateEnrollment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e *models.Enrollment) error {
			assert.Equal(t, constants.EnrollmentStudying, e.Status)
			// Join date is untouched when the request omits it
			assert.Equal(t, existing.DateJoined, e.DateJoined)
			return nil
		})

	updated, err := uc.UpdateEnrollment(context.Background(), id, &models.EnrollmentRequest{
		Status: constants.EnrollmentStudying,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.EnrollmentStudying, updated.Status)
}

func TestUpdateEnrollment_NotFound(t *testing.T) {
	uc, mockRepo := setupAcademyUC(t)

	id := uuid.New()
	mockRepo.EXPECT().
		GetEnrollmentByID(gomock.Any(), id).
		Return(nil, apperrors.ErrNotFound)

	_, err := uc.UpdateEnrollment(context.Background(), id, &models.EnrollmentRequest{
		Status: constants.EnrollmentGraduated,
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGroupOptions(t *testing.T) {
	uc, mockRepo := setupAcademyUC(t)

	mockRepo.EXPECT().
		ListTeachers(gomock.Any(), groupOptionsLimit, 0).
		Return([]models.Worker{{ID: uuid.New()}}, nil)
	mockRepo.EXPECT().
		ListCourses(gomock.Any(), groupOptionsLimit, 0).
		Return([]models.Course{{ID: uuid.New(), Name: "english"}}, nil)
	mockRepo.EXPECT().
		ListTables(gomock.Any(), groupOptionsLimit, 0).
		Return([]models.Table{{ID: uuid.New()}}, nil)

	options, err := uc.GroupOptions(context.Background())
	require.NoError(t, err)
	assert.Len(t, options.Teachers, 1)
	assert.Len(t, options.Courses, 1)
	assert.Len(t, options.Tables, 1)
}
