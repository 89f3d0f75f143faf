package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/markazhub/markaz/internal/pkg/models"
	"github.com/markazhub/markaz/internal/utils"
)

// ListUsers returns a page of users
func (h *AcademyHandler) ListUsers(c echo.Context) error {
	users, err := h.academyUC.ListUsers(c.Request().Context(), utils.GetPagination(c))
	if err != nil {
		return h.mapError(c, err, "Failed to list users")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", users)
}

// GetUser returns a single user
func (h *AcademyHandler) GetUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user id")
	}

	user, err := h.academyUC.GetUser(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, err, "Failed to get user")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", user)
}

// CreateUser creates a user account
func (h *AcademyHandler) CreateUser(c echo.Context) error {
	var req models.UserRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Phone number is required")
	}

	user, err := h.academyUC.CreateUser(c.Request().Context(), &req)
	if err != nil {
		return h.mapError(c, err, "Failed to create user")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "User created", user)
}

// UpdateUser updates a user account
func (h *AcademyHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user id")
	}

	var req models.UserRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.academyUC.UpdateUser(c.Request().Context(), id, &req)
	if err != nil {
		return h.mapError(c, err, "Failed to update user")
	}
	return utils.SuccessResponse(c, http.StatusOK, "User updated", user)
}

// DeleteUser removes a user account
func (h *AcademyHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user id")
	}

	if err := h.academyUC.DeleteUser(c.Request().Context(), id); err != nil {
		return h.mapError(c, err, "Failed to delete user")
	}
	return utils.SuccessResponse(c, http.StatusOK, "User deleted", nil)
}
