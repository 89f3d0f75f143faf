package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/markazhub/markaz/internal/pkg/models"
	"github.com/markazhub/markaz/internal/utils"
)

// ListCourses returns a page of courses
func (h *AcademyHandler) ListCourses(c echo.Context) error {
	courses, err := h.academyUC.ListCourses(c.Request().Context(), utils.GetPagination(c))
	if err != nil {
		return h.mapError(c, err, "Failed to list courses")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", courses)
}

// GetCourse returns a single course
func (h *AcademyHandler) GetCourse(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid course id")
	}

	course, err := h.academyUC.GetCourse(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, err, "Failed to get course")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", course)
}

// CreateCourse creates a course
func (h *AcademyHandler) CreateCourse(c echo.Context) error {
	var req models.CourseRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Name is required")
	}

	course, err := h.academyUC.CreateCourse(c.Request().Context(), &req)
	if err != nil {
		return h.mapError(c, err, "Failed to create course")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Course created", course)
}

// UpdateCourse updates a course
func (h *AcademyHandler) UpdateCourse(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid course id")
	}

	var req models.CourseRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	course, err := h.academyUC.UpdateCourse(c.Request().Context(), id, &req)
	if err != nil {
		return h.mapError(c, err, "Failed to update course")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Course updated", course)
}

// DeleteCourse removes a course
func (h *AcademyHandler) DeleteCourse(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid course id")
	}

	if err := h.academyUC.DeleteCourse(c.Request().Context(), id); err != nil {
		return h.mapError(c, err, "Failed to delete course")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Course deleted", nil)
}

// ListEnrollments returns a page of enrollments
func (h *AcademyHandler) ListEnrollments(c echo.Context) error {
	enrollments, err := h.academyUC.ListEnrollments(c.Request().Context(), utils.GetPagination(c))
	if err != nil {
		return h.mapError(c, err, "Failed to list enrollments")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", enrollments)
}

// GetEnrollment returns a single enrollment
func (h *AcademyHandler) GetEnrollment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid enrollment id")
	}

	enrollment, err := h.academyUC.GetEnrollment(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, err, "Failed to get enrollment")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", enrollment)
}

// UpdateEnrollment moves an enrollment through the status lifecycle
func (h *AcademyHandler) UpdateEnrollment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid enrollment id")
	}

	var req models.EnrollmentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Status must be registered, studying or graduated")
	}

	enrollment, err := h.academyUC.UpdateEnrollment(c.Request().Context(), id, &req)
	if err != nil {
		return h.mapError(c, err, "Failed to update enrollment")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Enrollment updated", enrollment)
}

// DeleteEnrollment removes an enrollment
func (h *AcademyHandler) DeleteEnrollment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid enrollment id")
	}

	if err := h.academyUC.DeleteEnrollment(c.Request().Context(), id); err != nil {
		return h.mapError(c, err, "Failed to delete enrollment")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Enrollment deleted", nil)
}

// EnrollmentStatistics counts enrollments by status within the inclusive
// from/to date range (YYYY-MM-DD)
func (h *AcademyHandler) EnrollmentStatistics(c echo.Context) error {
	from, err := time.Parse("2006-01-02", c.QueryParam("from"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid from date, expected YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", c.QueryParam("to"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid to date, expected YYYY-MM-DD")
	}

	// Include the whole final day of the range.
	to = to.Add(24*time.Hour - time.Nanosecond)

	stats, err := h.academyUC.EnrollmentStatistics(c.Request().Context(), from, to)
	if err != nil {
		return h.mapError(c, err, "Failed to compute enrollment statistics")
	}
	return utils.SuccessResponse(c, http.StatusOK, "", stats)
}
