package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/markazhub/markaz/internal/pkg/models"
	"github.com/markazhub/markaz/internal/utils"
)

// ListTables returns a page of schedule slots
func (h *AcademyHandler) ListTables(c echo.Context) error {
	tables, err := h.academyUC.ListTables(c.Request().Context(), utils.GetPagination(c))
	if err != nil {
		return h.mapError(c, err, "Failed to list tables")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", tables)
}

// GetTable returns a single schedule slot
func (h *AcademyHandler) GetTable(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid table id")
	}

	table, err := h.academyUC.GetTable(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, err, "Failed to get table")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", table)
}

// CreateTable creates a schedule slot
func (h *AcademyHandler) CreateTable(c echo.Context) error {
	var req models.TableRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Start time, end time, room and type are required")
	}

	table, err := h.academyUC.CreateTable(c.Request().Context(), &req)
	if err != nil {
		return h.mapError(c, err, "Failed to create table")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Table created", table)
}

// UpdateTable updates a schedule slot
func (h *AcademyHandler) UpdateTable(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid table id")
	}

	var req models.TableRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	table, err := h.academyUC.UpdateTable(c.Request().Context(), id, &req)
	if err != nil {
		return h.mapError(c, err, "Failed to update table")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Table updated", table)
}

// DeleteTable removes a schedule slot
func (h *AcademyHandler) DeleteTable(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid table id")
	}

	if err := h.academyUC.DeleteTable(c.Request().Context(), id); err != nil {
		return h.mapError(c, err, "Failed to delete table")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Table deleted", nil)
}

// ListGroups returns a page of groups
func (h *AcademyHandler) ListGroups(c echo.Context) error {
	groups, err := h.academyUC.ListGroups(c.Request().Context(), utils.GetPagination(c))
	if err != nil {
		return h.mapError(c, err, "Failed to list groups")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", groups)
}

// GetGroup returns a single group with its member sets
func (h *AcademyHandler) GetGroup(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid group id")
	}

	group, err := h.academyUC.GetGroup(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, err, "Failed to get group")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", group)
}

// CreateGroup creates a group
func (h *AcademyHandler) CreateGroup(c echo.Context) error {
	var req models.GroupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Name, course and table are required")
	}

	group, err := h.academyUC.CreateGroup(c.Request().Context(), &req)
	if err != nil {
		return h.mapError(c, err, "Failed to create group")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Group created", group)
}

// UpdateGroup updates a group
func (h *AcademyHandler) UpdateGroup(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid group id")
	}

	var req models.GroupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	group, err := h.academyUC.UpdateGroup(c.Request().Context(), id, &req)
	if err != nil {
		return h.mapError(c, err, "Failed to update group")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Group updated", group)
}

// DeleteGroup removes a group
func (h *AcademyHandler) DeleteGroup(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid group id")
	}

	if err := h.academyUC.DeleteGroup(c.Request().Context(), id); err != nil {
		return h.mapError(c, err, "Failed to delete group")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Group deleted", nil)
}

// GroupOptions returns the selectable teachers, courses and tables for the
// group form
func (h *AcademyHandler) GroupOptions(c echo.Context) error {
	options, err := h.academyUC.GroupOptions(c.Request().Context())
	if err != nil {
		return h.mapError(c, err, "Failed to load group options")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", options)
}
