package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/markazhub/markaz/internal/pkg/models"
	"github.com/markazhub/markaz/internal/utils"
)

// ListStudents returns a page of students
func (h *AcademyHandler) ListStudents(c echo.Context) error {
	students, err := h.academyUC.ListStudents(c.Request().Context(), utils.GetPagination(c))
	if err != nil {
		return h.mapError(c, err, "Failed to list students")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", students)
}

// GetStudent returns a single student
func (h *AcademyHandler) GetStudent(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid student id")
	}

	student, err := h.academyUC.GetStudent(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, err, "Failed to get student")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", student)
}

// CreateStudent creates a student profile for an existing user
func (h *AcademyHandler) CreateStudent(c echo.Context) error {
	var req models.StudentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Full name is required")
	}

	student, err := h.academyUC.CreateStudent(c.Request().Context(), &req)
	if err != nil {
		return h.mapError(c, err, "Failed to create student")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Student created", student)
}

// CreateStudentWithUser provisions a user account and its student profile
// atomically
func (h *AcademyHandler) CreateStudentWithUser(c echo.Context) error {
	var req models.UserAndStudentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "User and student payloads are required")
	}

	student, err := h.academyUC.CreateStudentWithUser(c.Request().Context(), &req)
	if err != nil {
		return h.mapError(c, err, "Failed to create student")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Student created", student)
}

// UpdateStudent updates a student profile
func (h *AcademyHandler) UpdateStudent(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid student id")
	}

	var req models.StudentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	student, err := h.academyUC.UpdateStudent(c.Request().Context(), id, &req)
	if err != nil {
		return h.mapError(c, err, "Failed to update student")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Student updated", student)
}

// DeleteStudent removes a student profile
func (h *AcademyHandler) DeleteStudent(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid student id")
	}

	if err := h.academyUC.DeleteStudent(c.Request().Context(), id); err != nil {
		return h.mapError(c, err, "Failed to delete student")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Student deleted", nil)
}

// GetStudentGroups returns the groups a student belongs to
func (h *AcademyHandler) GetStudentGroups(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid student id")
	}

	groups, err := h.academyUC.GetStudentGroups(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, err, "Failed to list student groups")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", groups)
}

// ListParents returns a page of parents
func (h *AcademyHandler) ListParents(c echo.Context) error {
	parents, err := h.academyUC.ListParents(c.Request().Context(), utils.GetPagination(c))
	if err != nil {
		return h.mapError(c, err, "Failed to list parents")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", parents)
}

// GetParent returns a single parent
func (h *AcademyHandler) GetParent(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid parent id")
	}

	parent, err := h.academyUC.GetParent(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, err, "Failed to get parent")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", parent)
}

// CreateParent records a parent contact
func (h *AcademyHandler) CreateParent(c echo.Context) error {
	var req models.ParentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Student id and full name are required")
	}

	parent, err := h.academyUC.CreateParent(c.Request().Context(), &req)
	if err != nil {
		return h.mapError(c, err, "Failed to create parent")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Parent created", parent)
}

// UpdateParent updates a parent contact
func (h *AcademyHandler) UpdateParent(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid parent id")
	}

	var req models.ParentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	parent, err := h.academyUC.UpdateParent(c.Request().Context(), id, &req)
	if err != nil {
		return h.mapError(c, err, "Failed to update parent")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Parent updated", parent)
}

// DeleteParent removes a parent contact
func (h *AcademyHandler) DeleteParent(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid parent id")
	}

	if err := h.academyUC.DeleteParent(c.Request().Context(), id); err != nil {
		return h.mapError(c, err, "Failed to delete parent")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Parent deleted", nil)
}
