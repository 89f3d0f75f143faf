package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/markazhub/markaz/internal/pkg/models"
	"github.com/markazhub/markaz/internal/utils"
)

// ListAttendances returns a page of attendance records
func (h *AcademyHandler) ListAttendances(c echo.Context) error {
	attendances, err := h.academyUC.ListAttendances(c.Request().Context(), utils.GetPagination(c))
	if err != nil {
		return h.mapError(c, err, "Failed to list attendances")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", attendances)
}

// GetAttendance returns a single attendance record
func (h *AcademyHandler) GetAttendance(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid attendance id")
	}

	att, err := h.academyUC.GetAttendance(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, err, "Failed to get attendance")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", att)
}

// CreateAttendance records a student's presence level for a group session
func (h *AcademyHandler) CreateAttendance(c echo.Context) error {
	var req models.AttendanceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Level, student and group ids are required")
	}

	att, err := h.academyUC.CreateAttendance(c.Request().Context(), &req)
	if err != nil {
		return h.mapError(c, err, "Failed to create attendance")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Attendance created", att)
}

// UpdateAttendance updates an attendance record
func (h *AcademyHandler) UpdateAttendance(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid attendance id")
	}

	var req models.AttendanceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	att, err := h.academyUC.UpdateAttendance(c.Request().Context(), id, &req)
	if err != nil {
		return h.mapError(c, err, "Failed to update attendance")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Attendance updated", att)
}

// DeleteAttendance removes an attendance record
func (h *AcademyHandler) DeleteAttendance(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid attendance id")
	}

	if err := h.academyUC.DeleteAttendance(c.Request().Context(), id); err != nil {
		return h.mapError(c, err, "Failed to delete attendance")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Attendance deleted", nil)
}
