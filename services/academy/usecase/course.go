package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/markazhub/markaz/internal/pkg/models"
	"github.com/markazhub/markaz/internal/utils"
)

// ListCourses returns a page of courses
func (u *AcademyUC) ListCourses(ctx context.Context, p utils.Pagination) ([]models.Course, error) {
	return u.repo.ListCourses(ctx, p.Limit, p.Offset)
}

// GetCourse returns a single course
func (u *AcademyUC) GetCourse(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	return u.repo.GetCourseByID(ctx, id)
}

// CreateCourse creates a course
func (u *AcademyUC) CreateCourse(ctx context.Context, req *models.CourseRequest) (*models.Course, error) {
	course := &models.Course{
		ID:           uuid.New(),
		Name:         req.Name,
		Title:        req.Title,
		Descriptions: req.Descriptions,
	}

	if err := u.repo.CreateCourse(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// UpdateCourse applies the request to an existing course
func (u *AcademyUC) UpdateCourse(ctx context.Context, id uuid.UUID, req *models.CourseRequest) (*models.Course, error) {
	course, err := u.repo.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}

	course.Name = req.Name
	course.Title = req.Title
	course.Descriptions = req.Descriptions

	if err := u.repo.UpdateCourse(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// DeleteCourse removes a course
func (u *AcademyUC) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	return u.repo.DeleteCourse(ctx, id)
}

// ListEnrollments returns a page of enrollments
func (u *AcademyUC) ListEnrollments(ctx context.Context, p utils.Pagination) ([]models.Enrollment, error) {
	return u.repo.ListEnrollments(ctx, p.Limit, p.Offset)
}

// GetEnrollment returns a single enrollment
func (u *AcademyUC) GetEnrollment(ctx context.Context, id uuid.UUID) (*models.Enrollment, error) {
	return u.repo.GetEnrollmentByID(ctx, id)
}

// UpdateEnrollment moves an enrollment through the status lifecycle
func (u *AcademyUC) UpdateEnrollment(ctx context.Context, id uuid.UUID, req *models.EnrollmentRequest) (*models.Enrollment, error) {
	enrollment, err := u.repo.GetEnrollmentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	enrollment.Status = req.Status
	if req.DateJoined != nil {
		enrollment.DateJoined = *req.DateJoined
	}

	if err := u.repo.UpdateEnrollment(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// DeleteEnrollment removes an enrollment
func (u *AcademyUC) DeleteEnrollment(ctx context.Context, id uuid.UUID) error {
	return u.repo.DeleteEnrollment(ctx, id)
}

// EnrollmentStatistics counts enrollments per status whose join date falls
// within the inclusive range
func (u *AcademyUC) EnrollmentStatistics(ctx context.Context, from, to time.Time) (*models.EnrollmentStatistics, error) {
	return u.repo.CountEnrollmentsByStatus(ctx, from, to)
}
