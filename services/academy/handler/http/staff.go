package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/markazhub/markaz/internal/pkg/models"
	"github.com/markazhub/markaz/internal/utils"
)

// ListWorkers returns a page of workers
func (h *AcademyHandler) ListWorkers(c echo.Context) error {
	workers, err := h.academyUC.ListWorkers(c.Request().Context(), utils.GetPagination(c))
	if err != nil {
		return h.mapError(c, err, "Failed to list workers")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", workers)
}

// GetWorker returns a single worker
func (h *AcademyHandler) GetWorker(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid worker id")
	}

	worker, err := h.academyUC.GetWorker(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, err, "Failed to get worker")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", worker)
}

// CreateWorker creates a worker profile
func (h *AcademyHandler) CreateWorker(c echo.Context) error {
	var req models.WorkerRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "User id is required")
	}

	worker, err := h.academyUC.CreateWorker(c.Request().Context(), &req)
	if err != nil {
		return h.mapError(c, err, "Failed to create worker")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Worker created", worker)
}

// UpdateWorker updates a worker profile
func (h *AcademyHandler) UpdateWorker(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid worker id")
	}

	var req models.WorkerRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	worker, err := h.academyUC.UpdateWorker(c.Request().Context(), id, &req)
	if err != nil {
		return h.mapError(c, err, "Failed to update worker")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Worker updated", worker)
}

// DeleteWorker removes a worker profile
func (h *AcademyHandler) DeleteWorker(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid worker id")
	}

	if err := h.academyUC.DeleteWorker(c.Request().Context(), id); err != nil {
		return h.mapError(c, err, "Failed to delete worker")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Worker deleted", nil)
}

// ListTeachers returns the workers whose user account carries the teacher
// flag
func (h *AcademyHandler) ListTeachers(c echo.Context) error {
	teachers, err := h.academyUC.ListTeachers(c.Request().Context(), utils.GetPagination(c))
	if err != nil {
		return h.mapError(c, err, "Failed to list teachers")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", teachers)
}

// CreateTeacher creates a worker profile flagged as a teacher
func (h *AcademyHandler) CreateTeacher(c echo.Context) error {
	var req models.WorkerRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "User id is required")
	}

	teacher, err := h.academyUC.CreateTeacher(c.Request().Context(), &req)
	if err != nil {
		return h.mapError(c, err, "Failed to create teacher")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Teacher created", teacher)
}

// GetTeacherGroups returns the groups a teacher is assigned to
func (h *AcademyHandler) GetTeacherGroups(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid worker id")
	}

	groups, err := h.academyUC.GetTeacherGroups(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, err, "Failed to list teacher groups")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", groups)
}

// ListDepartments returns a page of departments
func (h *AcademyHandler) ListDepartments(c echo.Context) error {
	departments, err := h.academyUC.ListDepartments(c.Request().Context(), utils.GetPagination(c))
	if err != nil {
		return h.mapError(c, err, "Failed to list departments")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", departments)
}

// GetDepartment returns a single department
func (h *AcademyHandler) GetDepartment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid department id")
	}

	department, err := h.academyUC.GetDepartment(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, err, "Failed to get department")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", department)
}

// CreateDepartment creates a department
func (h *AcademyHandler) CreateDepartment(c echo.Context) error {
	var req models.DepartmentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Title is required")
	}

	department, err := h.academyUC.CreateDepartment(c.Request().Context(), &req)
	if err != nil {
		return h.mapError(c, err, "Failed to create department")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Department created", department)
}

// UpdateDepartment updates a department
func (h *AcademyHandler) UpdateDepartment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid department id")
	}

	var req models.DepartmentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	department, err := h.academyUC.UpdateDepartment(c.Request().Context(), id, &req)
	if err != nil {
		return h.mapError(c, err, "Failed to update department")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Department updated", department)
}

// DeleteDepartment removes a department
func (h *AcademyHandler) DeleteDepartment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid department id")
	}

	if err := h.academyUC.DeleteDepartment(c.Request().Context(), id); err != nil {
		return h.mapError(c, err, "Failed to delete department")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Department deleted", nil)
}

// AddDepartmentWorker assigns a worker to a department
func (h *AcademyHandler) AddDepartmentWorker(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid department id")
	}

	var req models.AddWorkerRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Worker id is required")
	}

	if err := h.academyUC.AddDepartmentWorker(c.Request().Context(), id, req.WorkerID); err != nil {
		return h.mapError(c, err, "Failed to add department worker")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Worker added to department", nil)
}
