package academy

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/markazhub/markaz/internal/pkg/models"
	"github.com/markazhub/markaz/internal/utils"
)

// UserAdminUC manages user accounts
type UserAdminUC interface {
	ListUsers(ctx context.Context, p utils.Pagination) ([]models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	CreateUser(ctx context.Context, req *models.UserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *models.UserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// StudentUC manages student profiles
type StudentUC interface {
	ListStudents(ctx context.Context, p utils.Pagination) ([]models.Student, error)
	GetStudent(ctx context.Context, id uuid.UUID) (*models.Student, error)
	CreateStudent(ctx context.Context, req *models.StudentRequest) (*models.Student, error)
	CreateStudentWithUser(ctx context.Context, req *models.UserAndStudentRequest) (*models.Student, error)
	UpdateStudent(ctx context.Context, id uuid.UUID, req *models.StudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id uuid.UUID) error
	GetStudentGroups(ctx context.Context, studentID uuid.UUID) ([]models.Group, error)

	ListParents(ctx context.Context, p utils.Pagination) ([]models.Parent, error)
	GetParent(ctx context.Context, id uuid.UUID) (*models.Parent, error)
	CreateParent(ctx context.Context, req *models.ParentRequest) (*models.Parent, error)
	UpdateParent(ctx context.Context, id uuid.UUID, req *models.ParentRequest) (*models.Parent, error)
	DeleteParent(ctx context.Context, id uuid.UUID) error
}

// StaffUC manages workers, teachers and departments
type StaffUC interface {
	ListWorkers(ctx context.Context, p utils.Pagination) ([]models.Worker, error)
	GetWorker(ctx context.Context, id uuid.UUID) (*models.Worker, error)
	CreateWorker(ctx context.Context, req *models.WorkerRequest) (*models.Worker, error)
	UpdateWorker(ctx context.Context, id uuid.UUID, req *models.WorkerRequest) (*models.Worker, error)
	DeleteWorker(ctx context.Context, id uuid.UUID) error

	ListTeachers(ctx context.Context, p utils.Pagination) ([]models.Worker, error)
	CreateTeacher(ctx context.Context, req *models.WorkerRequest) (*models.Worker, error)
	GetTeacherGroups(ctx context.Context, workerID uuid.UUID) ([]models.Group, error)

	ListDepartments(ctx context.Context, p utils.Pagination) ([]models.Department, error)
	GetDepartment(ctx context.Context, id uuid.UUID) (*models.Department, error)
	CreateDepartment(ctx context.Context, req *models.DepartmentRequest) (*models.Department, error)
	UpdateDepartment(ctx context.Context, id uuid.UUID, req *models.DepartmentRequest) (*models.Department, error)
	DeleteDepartment(ctx context.Context, id uuid.UUID) error
	AddDepartmentWorker(ctx context.Context, departmentID, workerID uuid.UUID) error
}

// CourseUC manages courses and enrollments
type CourseUC interface {
	ListCourses(ctx context.Context, p utils.Pagination) ([]models.Course, error)
	GetCourse(ctx context.Context, id uuid.UUID) (*models.Course, error)
	CreateCourse(ctx context.Context, req *models.CourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, id uuid.UUID, req *models.CourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id uuid.UUID) error

	ListEnrollments(ctx context.Context, p utils.Pagination) ([]models.Enrollment, error)
	GetEnrollment(ctx context.Context, id uuid.UUID) (*models.Enrollment, error)
	UpdateEnrollment(ctx context.Context, id uuid.UUID, req *models.EnrollmentRequest) (*models.Enrollment, error)
	DeleteEnrollment(ctx context.Context, id uuid.UUID) error
	EnrollmentStatistics(ctx context.Context, from, to time.Time) (*models.EnrollmentStatistics, error)
}

// CatalogUC manages the lookup entities (rooms, days, table types, topics,
// attendance levels) through a shared shape
type CatalogUC interface {
	ListCatalogItems(ctx context.Context, kind models.CatalogKind, p utils.Pagination) ([]models.CatalogItem, error)
	GetCatalogItem(ctx context.Context, kind models.CatalogKind, id uuid.UUID) (*models.CatalogItem, error)
	CreateCatalogItem(ctx context.Context, kind models.CatalogKind, req *models.CatalogItemRequest) (*models.CatalogItem, error)
	UpdateCatalogItem(ctx context.Context, kind models.CatalogKind, id uuid.UUID, req *models.CatalogItemRequest) (*models.CatalogItem, error)
	DeleteCatalogItem(ctx context.Context, kind models.CatalogKind, id uuid.UUID) error
}

// ScheduleUC manages schedule slots and class groups
type ScheduleUC interface {
	ListTables(ctx context.Context, p utils.Pagination) ([]models.Table, error)
	GetTable(ctx context.Context, id uuid.UUID) (*models.Table, error)
	CreateTable(ctx context.Context, req *models.TableRequest) (*models.Table, error)
	UpdateTable(ctx context.Context, id uuid.UUID, req *models.TableRequest) (*models.Table, error)
	DeleteTable(ctx context.Context, id uuid.UUID) error

	ListGroups(ctx context.Context, p utils.Pagination) ([]models.Group, error)
	GetGroup(ctx context.Context, id uuid.UUID) (*models.Group, error)
	CreateGroup(ctx context.Context, req *models.GroupRequest) (*models.Group, error)
	UpdateGroup(ctx context.Context, id uuid.UUID, req *models.GroupRequest) (*models.Group, error)
	DeleteGroup(ctx context.Context, id uuid.UUID) error
	GroupOptions(ctx context.Context) (*models.GroupOptions, error)
}

// HomeworkUC manages group homework assignments and student submissions
type HomeworkUC interface {
	ListGroupHomeworks(ctx context.Context, p utils.Pagination) ([]models.GroupHomework, error)
	GetGroupHomework(ctx context.Context, id uuid.UUID) (*models.GroupHomework, error)
	CreateGroupHomework(ctx context.Context, req *models.GroupHomeworkRequest) (*models.GroupHomework, error)
	UpdateGroupHomework(ctx context.Context, id uuid.UUID, req *models.GroupHomeworkRequest) (*models.GroupHomework, error)
	DeleteGroupHomework(ctx context.Context, id uuid.UUID) error

	ListHomeworks(ctx context.Context, p utils.Pagination) ([]models.Homework, error)
	GetHomework(ctx context.Context, id uuid.UUID) (*models.Homework, error)
	CreateHomework(ctx context.Context, req *models.HomeworkRequest) (*models.Homework, error)
	UpdateHomework(ctx context.Context, id uuid.UUID, req *models.HomeworkRequest) (*models.Homework, error)
	DeleteHomework(ctx context.Context, id uuid.UUID) error
}

// AttendanceUC manages attendance records
type AttendanceUC interface {
	ListAttendances(ctx context.Context, p utils.Pagination) ([]models.Attendance, error)
	GetAttendance(ctx context.Context, id uuid.UUID) (*models.Attendance, error)
	CreateAttendance(ctx context.Context, req *models.AttendanceRequest) (*models.Attendance, error)
	UpdateAttendance(ctx context.Context, id uuid.UUID, req *models.AttendanceRequest) (*models.Attendance, error)
	DeleteAttendance(ctx context.Context, id uuid.UUID) error
}

// AcademyUC is the full admin surface
type AcademyUC interface {
	UserAdminUC
	StudentUC
	StaffUC
	CourseUC
	CatalogUC
	ScheduleUC
	HomeworkUC
	AttendanceUC
}
