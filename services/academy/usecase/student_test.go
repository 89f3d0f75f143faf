package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/markazhub/markaz/internal/pkg/apperrors"
	"github.com/markazhub/markaz/internal/pkg/models"
	"github.com/markazhub/markaz/services/academy/mocks"
)

func setupAcademyUC(t *testing.T) (*AcademyUC, *mocks.MockAcademyRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockAcademyRepo(ctrl)
	return NewAcademyUC(mockRepo, &models.Config{}), mockRepo
}

func TestCreateStudentWithUser_Success(t *testing.T) {
	uc, mockRepo := setupAcademyUC(t)

	req := &models.UserAndStudentRequest{
		User: models.UserRequest{
			Phone:    "998900404001",
			Password: "secret123",
			FullName: "Aziza Karimova",
		},
		Student: models.StudentRequest{
			Email: "aziza@example.com",
			Age:   19,
		},
	}

	mockRepo.EXPECT().
		CreateStudentWithUser(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, user *models.User, student *models.Student) error {
			assert.Equal(t, "998900404001", user.Phone)
			assert.True(t, user.IsStudent)
			assert.True(t, user.IsActive)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))

			assert.Equal(t, user.ID, student.UserID)
			// Student name falls back to the account name
			assert.Equal(t, "Aziza Karimova", student.FullName)
			return nil
		})

	student, err := uc.CreateStudentWithUser(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "aziza@example.com", student.Email)
}

func TestCreateStudentWithUser_InvalidPhone(t *testing.T) {
	uc, _ := setupAcademyUC(t)

	req := &models.UserAndStudentRequest{
		User: models.UserRequest{Phone: "abc"},
	}

	_, err := uc.CreateStudentWithUser(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPhone)
}

func TestCreateStudentWithUser_RepoFailure(t *testing.T) {
	uc, mockRepo := setupAcademyUC(t)

	req := &models.UserAndStudentRequest{
		User:    models.UserRequest{Phone: "998900404001"},
		Student: models.StudentRequest{FullName: "Aziza"},
	}

	mockRepo.EXPECT().
		CreateStudentWithUser(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("failed to create student: constraint violation"))

	_, err := uc.CreateStudentWithUser(context.Background(), req)
	assert.Error(t, err)
}

func TestCreateStudent_MarksUserStudent(t *testing.T) {
	uc, mockRepo := setupAcademyUC(t)

	userID := uuid.New()
	req := &models.StudentRequest{UserID: userID, FullName: "Bekzod"}

	mockRepo.EXPECT().
		CreateStudent(gomock.Any(), gomock.Any()).
		Return(nil)

	mockRepo.EXPECT().
		MarkUserStudent(gomock.Any(), userID).
		Return(nil)

	student, err := uc.CreateStudent(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, userID, student.UserID)
}

func TestCreateParent_RequiresStudent(t *testing.T) {
	uc, mockRepo := setupAcademyUC(t)

	studentID := uuid.New()
	mockRepo.EXPECT().
		GetStudentByID(gomock.Any(), studentID).
		Return(nil, apperrors.ErrNotFound)

	_, err := uc.CreateParent(context.Background(), &models.ParentRequest{
		StudentID: studentID,
		FullName:  "Karim Karimov",
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
