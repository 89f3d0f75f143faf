package academy

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/markazhub/markaz/internal/pkg/models"
)

// AcademyRepo is the data access layer for the admin surface. Create methods
// fill the entity's generated fields in place.
type AcademyRepo interface {
	// users
	ListUsers(ctx context.Context, limit, offset int) ([]models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
	MarkUserStaff(ctx context.Context, id uuid.UUID) error
	MarkUserStudent(ctx context.Context, id uuid.UUID) error
	MarkUserTeacher(ctx context.Context, id uuid.UUID) error

	// students
	ListStudents(ctx context.Context, limit, offset int) ([]models.Student, error)
	GetStudentByID(ctx context.Context, id uuid.UUID) (*models.Student, error)
	CreateStudent(ctx context.Context, student *models.Student) error
	CreateStudentWithUser(ctx context.Context, user *models.User, student *models.Student) error
	UpdateStudent(ctx context.Context, student *models.Student) error
	DeleteStudent(ctx context.Context, id uuid.UUID) error
	GetStudentGroups(ctx context.Context, studentID uuid.UUID) ([]models.Group, error)

	// parents
	ListParents(ctx context.Context, limit, offset int) ([]models.Parent, error)
	GetParentByID(ctx context.Context, id uuid.UUID) (*models.Parent, error)
	CreateParent(ctx context.Context, parent *models.Parent) error
	UpdateParent(ctx context.Context, parent *models.Parent) error
	DeleteParent(ctx context.Context, id uuid.UUID) error

	// workers and teachers
	ListWorkers(ctx context.Context, limit, offset int) ([]models.Worker, error)
	ListTeachers(ctx context.Context, limit, offset int) ([]models.Worker, error)
	GetWorkerByID(ctx context.Context, id uuid.UUID) (*models.Worker, error)
	CreateWorker(ctx context.Context, worker *models.Worker) error
	UpdateWorker(ctx context.Context, worker *models.Worker) error
	DeleteWorker(ctx context.Context, id uuid.UUID) error
	GetTeacherGroups(ctx context.Context, workerID uuid.UUID) ([]models.Group, error)

	// departments
	ListDepartments(ctx context.Context, limit, offset int) ([]models.Department, error)
	GetDepartmentByID(ctx context.Context, id uuid.UUID) (*models.Department, error)
	CreateDepartment(ctx context.Context, department *models.Department) error
	UpdateDepartment(ctx context.Context, department *models.Department) error
	DeleteDepartment(ctx context.Context, id uuid.UUID) error
	AddDepartmentWorker(ctx context.Context, departmentID, workerID uuid.UUID) error

	// courses
	ListCourses(ctx context.Context, limit, offset int) ([]models.Course, error)
	GetCourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	CreateCourse(ctx context.Context, course *models.Course) error
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id uuid.UUID) error

	// enrollments
	ListEnrollments(ctx context.Context, limit, offset int) ([]models.Enrollment, error)
	GetEnrollmentByID(ctx context.Context, id uuid.UUID) (*models.Enrollment, error)
	UpdateEnrollment(ctx context.Context, enrollment *models.Enrollment) error
	DeleteEnrollment(ctx context.Context, id uuid.UUID) error
	CountEnrollmentsByStatus(ctx context.Context, from, to time.Time) (*models.EnrollmentStatistics, error)

	// catalog
	ListCatalogItems(ctx context.Context, kind models.CatalogKind, limit, offset int) ([]models.CatalogItem, error)
	GetCatalogItemByID(ctx context.Context, kind models.CatalogKind, id uuid.UUID) (*models.CatalogItem, error)
	CreateCatalogItem(ctx context.Context, kind models.CatalogKind, item *models.CatalogItem) error
	UpdateCatalogItem(ctx context.Context, kind models.CatalogKind, item *models.CatalogItem) error
	DeleteCatalogItem(ctx context.Context, kind models.CatalogKind, id uuid.UUID) error

	// tables
	ListTables(ctx context.Context, limit, offset int) ([]models.Table, error)
	GetTableByID(ctx context.Context, id uuid.UUID) (*models.Table, error)
	CreateTable(ctx context.Context, table *models.Table) error
	UpdateTable(ctx context.Context, table *models.Table) error
	DeleteTable(ctx context.Context, id uuid.UUID) error

	// groups
	ListGroups(ctx context.Context, limit, offset int) ([]models.Group, error)
	GetGroupByID(ctx context.Context, id uuid.UUID) (*models.Group, error)
	CreateGroup(ctx context.Context, group *models.Group) error
	UpdateGroup(ctx context.Context, group *models.Group) error
	DeleteGroup(ctx context.Context, id uuid.UUID) error

	// homework
	ListGroupHomeworks(ctx context.Context, limit, offset int) ([]models.GroupHomework, error)
	GetGroupHomeworkByID(ctx context.Context, id uuid.UUID) (*models.GroupHomework, error)
	CreateGroupHomework(ctx context.Context, hw *models.GroupHomework) error
	UpdateGroupHomework(ctx context.Context, hw *models.GroupHomework) error
	DeleteGroupHomework(ctx context.Context, id uuid.UUID) error

	ListHomeworks(ctx context.Context, limit, offset int) ([]models.Homework, error)
	GetHomeworkByID(ctx context.Context, id uuid.UUID) (*models.Homework, error)
	CreateHomework(ctx context.Context, hw *models.Homework) error
	UpdateHomework(ctx context.Context, hw *models.Homework) error
	DeleteHomework(ctx context.Context, id uuid.UUID) error

	// attendance
	ListAttendances(ctx context.Context, limit, offset int) ([]models.Attendance, error)
	GetAttendanceByID(ctx context.Context, id uuid.UUID) (*models.Attendance, error)
	CreateAttendance(ctx context.Context, att *models.Attendance) error
	UpdateAttendance(ctx context.Context, att *models.Attendance) error
	DeleteAttendance(ctx context.Context, id uuid.UUID) error
}
