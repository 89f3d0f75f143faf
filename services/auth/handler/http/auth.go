package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/markazhub/markaz/internal/pkg/apperrors"
	"github.com/markazhub/markaz/internal/pkg/logger"
	"github.com/markazhub/markaz/internal/pkg/models"
	"github.com/markazhub/markaz/internal/utils"
	"github.com/markazhub/markaz/services/auth"
)

// AuthHandler handles HTTP requests for the authentication flows
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// SendOTP handles the pre-registration availability check
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Phone == "" {
		return utils.BadRequestResponse(c, "Phone number is required")
	}

	if err := h.authUC.SendOTP(c.Request().Context(), req.Phone); err != nil {
		return h.mapAuthError(c, err, "Failed to send OTP")
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully", nil)
}

// VerifyOTP handles pre-registration OTP verification
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Phone == "" || req.Code == "" {
		return utils.BadRequestResponse(c, "Phone number and code are required")
	}

	if err := h.authUC.VerifyOTP(c.Request().Context(), req.Phone, req.Code); err != nil {
		return h.mapAuthError(c, err, "Failed to verify OTP")
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP matched, please proceed with registration", nil)
}

// Register issues a registration challenge for the phone number
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Phone == "" {
		return utils.BadRequestResponse(c, "Phone number is required")
	}

	resp, err := h.authUC.Register(c.Request().Context(), req.Phone)
	if err != nil {
		return h.mapAuthError(c, err, "Failed to register")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "OTP sent successfully", resp)
}

// CompleteRegistration verifies the challenge and provisions the account
func (h *AuthHandler) CompleteRegistration(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Phone == "" || req.Code == "" {
		return utils.BadRequestResponse(c, "Phone number and code are required")
	}

	user, created, err := h.authUC.CompleteRegistration(c.Request().Context(), req.Phone, req.Code)
	if err != nil {
		return h.mapAuthError(c, err, "Failed to complete registration")
	}

	message := "Registration completed successfully"
	if !created {
		message = "Account already registered, OTP verified"
	}

	return utils.SuccessResponse(c, http.StatusOK, message, map[string]interface{}{
		"user_id":    user.ID,
		"phone":      user.Phone,
		"registered": created,
	})
}

// Login authenticates with phone and password
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Phone number and password are required")
	}

	resp, err := h.authUC.Login(c.Request().Context(), req.Phone, req.Password)
	if err != nil {
		return h.mapAuthError(c, err, "Failed to login")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// Refresh exchanges a refresh token for a fresh pair
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req models.RefreshRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.RefreshToken == "" {
		return utils.BadRequestResponse(c, "Refresh token is required")
	}

	resp, err := h.authUC.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return h.mapAuthError(c, err, "Failed to refresh token")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Token refreshed", resp)
}

// ChangePassword rotates the authenticated user's password
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req models.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Old and new passwords are required")
	}
	if req.NewPassword != req.ReNewPassword {
		return utils.BadRequestResponse(c, "Passwords do not match")
	}

	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.authUC.ChangePassword(c.Request().Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		return h.mapAuthError(c, err, "Failed to change password")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password changed successfully", nil)
}

// mapAuthError translates the error taxonomy into HTTP responses
func (h *AuthHandler) mapAuthError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, apperrors.ErrInvalidPhone):
		return utils.BadRequestResponse(c, "Invalid phone number format")
	case errors.Is(err, apperrors.ErrAlreadyRegistered):
		return utils.ConflictResponse(c, "Phone number already registered")
	case errors.Is(err, apperrors.ErrOTPInvalidOrExpired):
		return utils.BadRequestResponse(c, "OTP not found or expired")
	case errors.Is(err, apperrors.ErrOTPMismatch):
		return utils.BadRequestResponse(c, "Incorrect OTP code")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return utils.UnauthorizedResponse(c, "Invalid phone number or password")
	case errors.Is(err, apperrors.ErrInvalidToken):
		return utils.UnauthorizedResponse(c, "Invalid token")
	case errors.Is(err, apperrors.ErrUserInactive):
		return utils.ForbiddenResponse(c, "Account is inactive")
	case errors.Is(err, apperrors.ErrDeliveryFailed):
		return utils.BadGatewayResponse(c, "Failed to deliver OTP")
	default:
		logger.Error(fallback, logger.Fields{"error": err.Error()})
		return utils.InternalServerErrorResponse(c, fallback)
	}
}
