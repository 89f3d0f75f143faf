package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markazhub/markaz/internal/pkg/apperrors"
	"github.com/markazhub/markaz/internal/pkg/models"
	"github.com/markazhub/markaz/internal/pkg/validator"
	"github.com/markazhub/markaz/services/auth/mocks"
)

func setupAuthHandler(t *testing.T) (*AuthHandler, *mocks.MockAuthUC, *echo.Echo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockAuthUC(ctrl)
	e := echo.New()
	e.Validator = validator.New()
	return NewAuthHandler(mockUC), mockUC, e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSendOTPHandler_Success(t *testing.T) {
	h, mockUC, e := setupAuthHandler(t)

	mockUC.EXPECT().
		SendOTP(gomock.Any(), "998900404001").
		Return(nil)

	c, rec := newJSONContext(e, http.MethodPost, "/auth/otp/send", `{"phone":"998900404001"}`)
	require.NoError(t, h.SendOTP(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
}

func TestSendOTPHandler_MissingPhone(t *testing.T) {
	h, _, e := setupAuthHandler(t)

	c, rec := newJSONContext(e, http.MethodPost, "/auth/otp/send", `{}`)
	require.NoError(t, h.SendOTP(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendOTPHandler_AlreadyRegistered(t *testing.T) {
	h, mockUC, e := setupAuthHandler(t)

	mockUC.EXPECT().
		SendOTP(gomock.Any(), "998900404001").
		Return(apperrors.ErrAlreadyRegistered)

	c, rec := newJSONContext(e, http.MethodPost, "/auth/otp/send", `{"phone":"998900404001"}`)
	require.NoError(t, h.SendOTP(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSendOTPHandler_DeliveryFailed(t *testing.T) {
	h, mockUC, e := setupAuthHandler(t)

	mockUC.EXPECT().
		SendOTP(gomock.Any(), "998900404001").
		Return(apperrors.ErrDeliveryFailed)

	c, rec := newJSONContext(e, http.MethodPost, "/auth/otp/send", `{"phone":"998900404001"}`)
	require.NoError(t, h.SendOTP(c))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestVerifyOTPHandler_Mismatch(t *testing.T) {
	h, mockUC, e := setupAuthHandler(t)

	mockUC.EXPECT().
		VerifyOTP(gomock.Any(), "998900404001", "1111").
		Return(apperrors.ErrOTPMismatch)

	c, rec := newJSONContext(e, http.MethodPost, "/auth/otp/verify", `{"phone":"998900404001","code":"1111"}`)
	require.NoError(t, h.VerifyOTP(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
}

func TestVerifyOTPHandler_Expired(t *testing.T) {
	h, mockUC, e := setupAuthHandler(t)

	mockUC.EXPECT().
		VerifyOTP(gomock.Any(), "998900404001", "4242").
		Return(apperrors.ErrOTPInvalidOrExpired)

	c, rec := newJSONContext(e, http.MethodPost, "/auth/otp/verify", `{"phone":"998900404001","code":"4242"}`)
	require.NoError(t, h.VerifyOTP(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterHandler_Success(t *testing.T) {
	h, mockUC, e := setupAuthHandler(t)

	mockUC.EXPECT().
		Register(gomock.Any(), "998900404001").
		Return(&models.RegisterResponse{Phone: "998900404001"}, nil)

	c, rec := newJSONContext(e, http.MethodPost, "/auth/register", `{"phone":"998900404001"}`)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "998900404001", data["phone"])
	_, echoed := data["code"]
	assert.False(t, echoed)
}

func TestCompleteRegistrationHandler_Created(t *testing.T) {
	h, mockUC, e := setupAuthHandler(t)

	user := &models.User{Phone: "998900404001", IsActive: true}

	mockUC.EXPECT().
		CompleteRegistration(gomock.Any(), "998900404001", "4242").
		Return(user, true, nil)

	c, rec := newJSONContext(e, http.MethodPost, "/auth/register/verify", `{"phone":"998900404001","code":"4242"}`)
	require.NoError(t, h.CompleteRegistration(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, true, data["registered"])
}

func TestLoginHandler_Success(t *testing.T) {
	h, mockUC, e := setupAuthHandler(t)

	mockUC.EXPECT().
		Login(gomock.Any(), "998900404001", "secret123").
		Return(&models.AuthResponse{AccessToken: "at", RefreshToken: "rt", UserID: "u1"}, nil)

	c, rec := newJSONContext(e, http.MethodPost, "/auth/login", `{"phone":"998900404001","password":"secret123"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "at", data["access_token"])
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	h, mockUC, e := setupAuthHandler(t)

	mockUC.EXPECT().
		Login(gomock.Any(), "998900404001", "wrong").
		Return(nil, apperrors.ErrInvalidCredentials)

	c, rec := newJSONContext(e, http.MethodPost, "/auth/login", `{"phone":"998900404001","password":"wrong"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginHandler_MissingPassword(t *testing.T) {
	h, _, e := setupAuthHandler(t)

	c, rec := newJSONContext(e, http.MethodPost, "/auth/login", `{"phone":"998900404001"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginHandler_InactiveAccount(t *testing.T) {
	h, mockUC, e := setupAuthHandler(t)

	mockUC.EXPECT().
		Login(gomock.Any(), "998900404001", "secret123").
		Return(nil, apperrors.ErrUserInactive)

	c, rec := newJSONContext(e, http.MethodPost, "/auth/login", `{"phone":"998900404001","password":"secret123"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRefreshHandler_InvalidToken(t *testing.T) {
	h, mockUC, e := setupAuthHandler(t)

	mockUC.EXPECT().
		RefreshToken(gomock.Any(), "stale").
		Return(nil, apperrors.ErrInvalidToken)

	c, rec := newJSONContext(e, http.MethodPost, "/auth/refresh", `{"refresh_token":"stale"}`)
	require.NoError(t, h.Refresh(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChangePasswordHandler_Success(t *testing.T) {
	h, mockUC, e := setupAuthHandler(t)

	mockUC.EXPECT().
		ChangePassword(gomock.Any(), "user-1", "oldpass", "newpass").
		DoAndReturn(func(ctx context.Context, userID, oldPassword, newPassword string) error {
			return nil
		})

	payload := `{"old_password":"oldpass","new_password":"newpass","re_new_password":"newpass"}`
	c, rec := newJSONContext(e, http.MethodPatch, "/auth/password", payload)
	c.Set("user_id", "user-1")
	require.NoError(t, h.ChangePassword(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestChangePasswordHandler_PasswordsDoNotMatch(t *testing.T) {
	h, _, e := setupAuthHandler(t)

	payload := `{"old_password":"oldpass","new_password":"newpass","re_new_password":"other"}`
	c, rec := newJSONContext(e, http.MethodPatch, "/auth/password", payload)
	c.Set("user_id", "user-1")
	require.NoError(t, h.ChangePassword(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChangePasswordHandler_NoIdentity(t *testing.T) {
	h, _, e := setupAuthHandler(t)

	payload := `{"old_password":"oldpass","new_password":"newpass","re_new_password":"newpass"}`
	c, rec := newJSONContext(e, http.MethodPatch, "/auth/password", payload)
	require.NoError(t, h.ChangePassword(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
