package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/markazhub/markaz/internal/pkg/models"
	"github.com/markazhub/markaz/internal/utils"
)

// groupOptionsLimit bounds each reference list on the group form
const groupOptionsLimit = 100

// ListTables returns a page of schedule slots
func (u *AcademyUC) ListTables(ctx context.Context, p utils.Pagination) ([]models.Table, error) {
	return u.repo.ListTables(ctx, p.Limit, p.Offset)
}

// GetTable returns a single schedule slot
func (u *AcademyUC) GetTable(ctx context.Context, id uuid.UUID) (*models.Table, error) {
	return u.repo.GetTableByID(ctx, id)
}

// CreateTable creates a schedule slot
func (u *AcademyUC) CreateTable(ctx context.Context, req *models.TableRequest) (*models.Table, error) {
	table := &models.Table{
		ID:           uuid.New(),
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		RoomID:       req.RoomID,
		TypeID:       req.TypeID,
		Descriptions: req.Descriptions,
	}

	if err := u.repo.CreateTable(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

// UpdateTable applies the request to an existing schedule slot
func (u *AcademyUC) UpdateTable(ctx context.Context, id uuid.UUID, req *models.TableRequest) (*models.Table, error) {
	table, err := u.repo.GetTableByID(ctx, id)
	if err != nil {
		return nil, err
	}

	table.StartTime = req.StartTime
	table.EndTime = req.EndTime
	table.RoomID = req.RoomID
	table.TypeID = req.TypeID
	table.Descriptions = req.Descriptions

	if err := u.repo.UpdateTable(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

// DeleteTable removes a schedule slot
func (u *AcademyUC) DeleteTable(ctx context.Context, id uuid.UUID) error {
	return u.repo.DeleteTable(ctx, id)
}

// ListGroups returns a page of groups
func (u *AcademyUC) ListGroups(ctx context.Context, p utils.Pagination) ([]models.Group, error) {
	return u.repo.ListGroups(ctx, p.Limit, p.Offset)
}

// GetGroup returns a single group with its member sets
func (u *AcademyUC) GetGroup(ctx context.Context, id uuid.UUID) (*models.Group, error) {
	return u.repo.GetGroupByID(ctx, id)
}

// CreateGroup creates a group with its student and teacher sets
func (u *AcademyUC) CreateGroup(ctx context.Context, req *models.GroupRequest) (*models.Group, error) {
	if _, err := u.repo.GetCourseByID(ctx, req.CourseID); err != nil {
		return nil, err
	}
	if _, err := u.repo.GetTableByID(ctx, req.TableID); err != nil {
		return nil, err
	}

	now := time.Now()
	group := &models.Group{
		ID:           uuid.New(),
		Name:         req.Name,
		Title:        req.Title,
		CourseID:     req.CourseID,
		TableID:      req.TableID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Price:        req.Price,
		Descriptions: req.Descriptions,
		StudentIDs:   req.StudentIDs,
		TeacherIDs:   req.TeacherIDs,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.repo.CreateGroup(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// UpdateGroup applies the request to an existing group, replacing its member
// sets
func (u *AcademyUC) UpdateGroup(ctx context.Context, id uuid.UUID, req *models.GroupRequest) (*models.Group, error) {
	group, err := u.repo.GetGroupByID(ctx, id)
	if err != nil {
		return nil, err
	}

	group.Name = req.Name
	group.Title = req.Title
	group.CourseID = req.CourseID
	group.TableID = req.TableID
	group.StartDate = req.StartDate
	group.EndDate = req.EndDate
	group.Price = req.Price
	group.Descriptions = req.Descriptions
	group.StudentIDs = req.StudentIDs
	group.TeacherIDs = req.TeacherIDs
	group.UpdatedAt = time.Now()

	if err := u.repo.UpdateGroup(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// DeleteGroup removes a group
func (u *AcademyUC) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	return u.repo.DeleteGroup(ctx, id)
}

// GroupOptions bundles the selectable teachers, courses and tables for the
// group form
func (u *AcademyUC) GroupOptions(ctx context.Context) (*models.GroupOptions, error) {
	teachers, err := u.repo.ListTeachers(ctx, groupOptionsLimit, 0)
	if err != nil {
		return nil, err
	}
	courses, err := u.repo.ListCourses(ctx, groupOptionsLimit, 0)
	if err != nil {
		return nil, err
	}
	tables, err := u.repo.ListTables(ctx, groupOptionsLimit, 0)
	if err != nil {
		return nil, err
	}

	return &models.GroupOptions{
		Teachers: teachers,
		Courses:  courses,
		Tables:   tables,
	}, nil
}
