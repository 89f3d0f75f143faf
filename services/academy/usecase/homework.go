package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/markazhub/markaz/internal/pkg/models"
	"github.com/markazhub/markaz/internal/utils"
)

// ListGroupHomeworks returns a page of homework assignments
func (u *AcademyUC) ListGroupHomeworks(ctx context.Context, p utils.Pagination) ([]models.GroupHomework, error) {
	return u.repo.ListGroupHomeworks(ctx, p.Limit, p.Offset)
}

// GetGroupHomework returns a single homework assignment
func (u *AcademyUC) GetGroupHomework(ctx context.Context, id uuid.UUID) (*models.GroupHomework, error) {
	return u.repo.GetGroupHomeworkByID(ctx, id)
}

// CreateGroupHomework assigns a topic as homework to a group
func (u *AcademyUC) CreateGroupHomework(ctx context.Context, req *models.GroupHomeworkRequest) (*models.GroupHomework, error) {
	if _, err := u.repo.GetGroupByID(ctx, req.GroupID); err != nil {
		return nil, err
	}

	hw := &models.GroupHomework{
		ID:           uuid.New(),
		GroupID:      req.GroupID,
		TopicID:      req.TopicID,
		IsActive:     true,
		Descriptions: req.Descriptions,
	}
	if req.IsActive != nil {
		hw.IsActive = *req.IsActive
	}

	if err := u.repo.CreateGroupHomework(ctx, hw); err != nil {
		return nil, err
	}
	return hw, nil
}

// UpdateGroupHomework applies the request to an existing homework assignment
func (u *AcademyUC) UpdateGroupHomework(ctx context.Context, id uuid.UUID, req *models.GroupHomeworkRequest) (*models.GroupHomework, error) {
	hw, err := u.repo.GetGroupHomeworkByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hw.GroupID = req.GroupID
	hw.TopicID = req.TopicID
	hw.Descriptions = req.Descriptions
	if req.IsActive != nil {
		hw.IsActive = *req.IsActive
	}

	if err := u.repo.UpdateGroupHomework(ctx, hw); err != nil {
		return nil, err
	}
	return hw, nil
}

// DeleteGroupHomework removes a homework assignment
func (u *AcademyUC) DeleteGroupHomework(ctx context.Context, id uuid.UUID) error {
	return u.repo.DeleteGroupHomework(ctx, id)
}

// ListHomeworks returns a page of student submissions
func (u *AcademyUC) ListHomeworks(ctx context.Context, p utils.Pagination) ([]models.Homework, error) {
	return u.repo.ListHomeworks(ctx, p.Limit, p.Offset)
}

// GetHomework returns a single submission
func (u *AcademyUC) GetHomework(ctx context.Context, id uuid.UUID) (*models.Homework, error) {
	return u.repo.GetHomeworkByID(ctx, id)
}

// CreateHomework records a student's submission against a group homework
func (u *AcademyUC) CreateHomework(ctx context.Context, req *models.HomeworkRequest) (*models.Homework, error) {
	if _, err := u.repo.GetGroupHomeworkByID(ctx, req.GroupHomeworkID); err != nil {
		return nil, err
	}
	if _, err := u.repo.GetStudentByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	hw := &models.Homework{
		ID:              uuid.New(),
		GroupHomeworkID: req.GroupHomeworkID,
		StudentID:       req.StudentID,
		Link:            req.Link,
		Grade:           req.Grade,
		IsActive:        true,
		Descriptions:    req.Descriptions,
	}
	if req.IsActive != nil {
		hw.IsActive = *req.IsActive
	}

	if err := u.repo.CreateHomework(ctx, hw); err != nil {
		return nil, err
	}
	return hw, nil
}

// UpdateHomework applies the request to an existing submission
func (u *AcademyUC) UpdateHomework(ctx context.Context, id uuid.UUID, req *models.HomeworkRequest) (*models.Homework, error) {
	hw, err := u.repo.GetHomeworkByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hw.GroupHomeworkID = req.GroupHomeworkID
	hw.StudentID = req.StudentID
	hw.Link = req.Link
	hw.Grade = req.Grade
	hw.Descriptions = req.Descriptions
	if req.IsActive != nil {
		hw.IsActive = *req.IsActive
	}

	if err := u.repo.UpdateHomework(ctx, hw); err != nil {
		return nil, err
	}
	return hw, nil
}

// DeleteHomework removes a submission
func (u *AcademyUC) DeleteHomework(ctx context.Context, id uuid.UUID) error {
	return u.repo.DeleteHomework(ctx, id)
}
