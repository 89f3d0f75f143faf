package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/markazhub/markaz/internal/pkg/models"
	"github.com/markazhub/markaz/internal/utils"
)

// ListGroupHomeworks returns a page of homework assignments
func (h *AcademyHandler) ListGroupHomeworks(c echo.Context) error {
	homeworks, err := h.academyUC.ListGroupHomeworks(c.Request().Context(), utils.GetPagination(c))
	if err != nil {
		return h.mapError(c, err, "Failed to list group homeworks")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", homeworks)
}

// GetGroupHomework returns a single homework assignment
func (h *AcademyHandler) GetGroupHomework(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid group homework id")
	}

	hw, err := h.academyUC.GetGroupHomework(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, err, "Failed to get group homework")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", hw)
}

// CreateGroupHomework assigns a topic as homework to a group
func (h *AcademyHandler) CreateGroupHomework(c echo.Context) error {
	var req models.GroupHomeworkRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Group id and topic id are required")
	}

	hw, err := h.academyUC.CreateGroupHomework(c.Request().Context(), &req)
	if err != nil {
		return h.mapError(c, err, "Failed to create group homework")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Group homework created", hw)
}

// UpdateGroupHomework updates a homework assignment
func (h *AcademyHandler) UpdateGroupHomework(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid group homework id")
	}

	var req models.GroupHomeworkRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	hw, err := h.academyUC.UpdateGroupHomework(c.Request().Context(), id, &req)
	if err != nil {
		return h.mapError(c, err, "Failed to update group homework")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Group homework updated", hw)
}

// DeleteGroupHomework removes a homework assignment
func (h *AcademyHandler) DeleteGroupHomework(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid group homework id")
	}

	if err := h.academyUC.DeleteGroupHomework(c.Request().Context(), id); err != nil {
		return h.mapError(c, err, "Failed to delete group homework")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Group homework deleted", nil)
}

// ListHomeworks returns a page of student submissions
func (h *AcademyHandler) ListHomeworks(c echo.Context) error {
	homeworks, err := h.academyUC.ListHomeworks(c.Request().Context(), utils.GetPagination(c))
	if err != nil {
		return h.mapError(c, err, "Failed to list homeworks")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", homeworks)
}

// GetHomework returns a single submission
func (h *AcademyHandler) GetHomework(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid homework id")
	}

	hw, err := h.academyUC.GetHomework(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, err, "Failed to get homework")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", hw)
}

// CreateHomework records a student's submission
func (h *AcademyHandler) CreateHomework(c echo.Context) error {
	var req models.HomeworkRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Group homework id and student id are required")
	}

	hw, err := h.academyUC.CreateHomework(c.Request().Context(), &req)
	if err != nil {
		return h.mapError(c, err, "Failed to create homework")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Homework created", hw)
}

// UpdateHomework updates a submission
func (h *AcademyHandler) UpdateHomework(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid homework id")
	}

	var req models.HomeworkRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	hw, err := h.academyUC.UpdateHomework(c.Request().Context(), id, &req)
	if err != nil {
		return h.mapError(c, err, "Failed to update homework")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Homework updated", hw)
}

// DeleteHomework removes a submission
func (h *AcademyHandler) DeleteHomework(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid homework id")
	}

	if err := h.academyUC.DeleteHomework(c.Request().Context(), id); err != nil {
		return h.mapError(c, err, "Failed to delete homework")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Homework deleted", nil)
}
