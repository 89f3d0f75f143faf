package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markazhub/markaz/internal/pkg/apperrors"
	"github.com/markazhub/markaz/internal/pkg/models"
	"github.com/markazhub/markaz/internal/pkg/validator"
	"github.com/markazhub/markaz/services/academy/mocks"
	"github.com/markazhub/markaz/services/academy/usecase"
)

func setupAcademyHandler(t *testing.T) (*AcademyHandler, *mocks.MockAcademyRepo, *echo.Echo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockAcademyRepo(ctrl)
	uc := usecase.NewAcademyUC(mockRepo, &models.Config{})

	e := echo.New()
	e.Validator = validator.New()
	return NewAcademyHandler(uc), mockRepo, e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateTopicHandler(t *testing.T) {
	h, mockRepo, e := setupAcademyHandler(t)

	courseID := uuid.New()
	mockRepo.EXPECT().
		CreateCatalogItem(gomock.Any(), models.CatalogTopic, gomock.Any()).
		Return(nil)

	body := `{"title":"Past Simple","course_id":"` + courseID.String() + `"}`
	c, rec := newJSONContext(e, http.MethodPost, "/topics", body)
	require.NoError(t, h.Catalog(models.CatalogTopic).Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "Past Simple", data["title"])
	assert.Equal(t, courseID.String(), data["course_id"])
}

func TestCreateCatalogHandler_MissingTitle(t *testing.T) {
	h, _, e := setupAcademyHandler(t)

	c, rec := newJSONContext(e, http.MethodPost, "/rooms", `{}`)
	require.NoError(t, h.Catalog(models.CatalogRoom).Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCatalogHandler_NotFound(t *testing.T) {
	h, mockRepo, e := setupAcademyHandler(t)

	id := uuid.New()
	mockRepo.EXPECT().
		GetCatalogItemByID(gomock.Any(), models.CatalogRoom, id).
		Return(nil, apperrors.ErrNotFound)

	c, rec := newJSONContext(e, http.MethodGet, "/rooms/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	require.NoError(t, h.Catalog(models.CatalogRoom).Get(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEnrollmentStatisticsHandler(t *testing.T) {
	h, mockRepo, e := setupAcademyHandler(t)

	mockRepo.EXPECT().
		CountEnrollmentsByStatus(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, from, to time.Time) (*models.EnrollmentStatistics, error) {
			assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), from)
			// The range includes the whole final day
			assert.Equal(t, 2025, to.Year())
			assert.Equal(t, time.June, to.Month())
			assert.Equal(t, 30, to.Day())
			assert.Equal(t, 23, to.Hour())
			return &models.EnrollmentStatistics{Registered: 3, Studying: 7, Graduated: 2}, nil
		})

	c, rec := newJSONContext(e, http.MethodGet, "/enrollments/statistics?from=2025-01-01&to=2025-06-30", "")
	require.NoError(t, h.EnrollmentStatistics(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(7), data["studying"])
}

func TestEnrollmentStatisticsHandler_BadDate(t *testing.T) {
	h, _, e := setupAcademyHandler(t)

	c, rec := newJSONContext(e, http.MethodGet, "/enrollments/statistics?from=January&to=2025-06-30", "")
	require.NoError(t, h.EnrollmentStatistics(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUserHandler_BadID(t *testing.T) {
	h, _, e := setupAcademyHandler(t)

	c, rec := newJSONContext(e, http.MethodGet, "/users/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	require.NoError(t, h.GetUser(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListUsersHandler(t *testing.T) {
	h, mockRepo, e := setupAcademyHandler(t)

	mockRepo.EXPECT().
		ListUsers(gomock.Any(), 10, 0).
		Return([]models.User{{ID: uuid.New(), Phone: "998900404001"}}, nil)

	c, rec := newJSONContext(e, http.MethodGet, "/users", "")
	require.NoError(t, h.ListUsers(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}
