package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markazhub/markaz/internal/pkg/apperrors"
	"github.com/markazhub/markaz/internal/pkg/models"
)

func TestCreateWorker_MarksUserStaff(t *testing.T) {
	uc, mockRepo := setupAcademyUC(t)

	userID := uuid.New()
	deptID := uuid.New()
	req := &models.WorkerRequest{
		UserID:        userID,
		DepartmentIDs: []uuid.UUID{deptID},
	}

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, IsActive: true}, nil)

	mockRepo.EXPECT().
		CreateWorker(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, worker *models.Worker) error {
			assert.Equal(t, userID, worker.UserID)
			assert.Equal(t, []uuid.UUID{deptID}, worker.DepartmentIDs)
			return nil
		})

	mockRepo.EXPECT().
		MarkUserStaff(gomock.Any(), userID).
		Return(nil)

	worker, err := uc.CreateWorker(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, userID, worker.UserID)
}

func TestCreateWorker_UnknownUser(t *testing.T) {
	uc, mockRepo := setupAcademyUC(t)

	userID := uuid.New()
	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(nil, apperrors.ErrNotFound)

	_, err := uc.CreateWorker(context.Background(), &models.WorkerRequest{UserID: userID})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateTeacher_MarksBothFlags(t *testing.T) {
	uc, mockRepo := setupAcademyUC(t)

	userID := uuid.New()
	req := &models.WorkerRequest{UserID: userID}

	mockRepo.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, IsActive: true}, nil)
	mockRepo.EXPECT().
		CreateWorker(gomock.Any(), gomock.Any()).
		Return(nil)
	mockRepo.EXPECT().
		MarkUserStaff(gomock.Any(), userID).
		Return(nil)
	mockRepo.EXPECT().
		MarkUserTeacher(gomock.Any(), userID).
		Return(nil)

	_, err := uc.CreateTeacher(context.Background(), req)
	assert.NoError(t, err)
}

func TestAddDepartmentWorker_ChecksBothSides(t *testing.T) {
	uc, mockRepo := setupAcademyUC(t)

	deptID := uuid.New()
	workerID := uuid.New()

	mockRepo.EXPECT().
		GetDepartmentByID(gomock.Any(), deptID).
		Return(&models.Department{ID: deptID}, nil)
	mockRepo.EXPECT().
		GetWorkerByID(gomock.Any(), workerID).
		Return(&models.Worker{ID: workerID}, nil)
	mockRepo.EXPECT().
		AddDepartmentWorker(gomock.Any(), deptID, workerID).
		Return(nil)

	err := uc.AddDepartmentWorker(context.Background(), deptID, workerID)
	assert.NoError(t, err)
}

func TestAddDepartmentWorker_UnknownDepartment(t *testing.T) {
	uc, mockRepo := setupAcademyUC(t)

	deptID := uuid.New()
	mockRepo.EXPECT().
		GetDepartmentByID(gomock.Any(), deptID).
		Return(nil, apperrors.ErrNotFound)

	err := uc.AddDepartmentWorker(context.Background(), deptID, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
