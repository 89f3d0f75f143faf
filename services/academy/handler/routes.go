package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/markazhub/markaz/internal/pkg/middleware"
	"github.com/markazhub/markaz/internal/pkg/models"
	academyhttp "github.com/markazhub/markaz/services/academy/handler/http"
)

// Handler coordinates the admin surface's HTTP routes
type Handler struct {
	academyHandler *academyhttp.AcademyHandler
	cfg            *models.Config
}

// NewHandler creates the academy route coordinator
func NewHandler(academyHandler *academyhttp.AcademyHandler, cfg *models.Config) *Handler {
	return &Handler{academyHandler: academyHandler, cfg: cfg}
}

// RegisterRoutes mounts the admin surface. Every route requires an
// authenticated identity; account and staff management additionally
// requires the staff flag.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)
	staff := middleware.RequireStaff()
	ah := h.academyHandler

	users := e.Group("/users", auth, staff)
	users.GET("", ah.ListUsers)
	users.POST("", ah.CreateUser)
	users.GET("/:id", ah.GetUser)
	users.PUT("/:id", ah.UpdateUser)
	users.DELETE("/:id", ah.DeleteUser)

	students := e.Group("/students", auth)
	students.GET("", ah.ListStudents)
	students.POST("", ah.CreateStudent)
	students.POST("/with-user", ah.CreateStudentWithUser)
	students.GET("/:id", ah.GetStudent)
	students.PUT("/:id", ah.UpdateStudent)
	students.DELETE("/:id", ah.DeleteStudent)
	students.GET("/:id/groups", ah.GetStudentGroups)

	parents := e.Group("/parents", auth)
	parents.GET("", ah.ListParents)
	parents.POST("", ah.CreateParent)
	parents.GET("/:id", ah.GetParent)
	parents.PUT("/:id", ah.UpdateParent)
	parents.DELETE("/:id", ah.DeleteParent)

	workers := e.Group("/workers", auth, staff)
	workers.GET("", ah.ListWorkers)
	workers.POST("", ah.CreateWorker)
	workers.GET("/:id", ah.GetWorker)
	workers.PUT("/:id", ah.UpdateWorker)
	workers.DELETE("/:id", ah.DeleteWorker)

	teachers := e.Group("/teachers", auth)
	teachers.GET("", ah.ListTeachers)
	teachers.POST("", ah.CreateTeacher, staff)
	teachers.GET("/:id/groups", ah.GetTeacherGroups)

	departments := e.Group("/departments", auth)
	departments.GET("", ah.ListDepartments)
	departments.POST("", ah.CreateDepartment)
	departments.GET("/:id", ah.GetDepartment)
	departments.PUT("/:id", ah.UpdateDepartment)
	departments.DELETE("/:id", ah.DeleteDepartment)
	departments.POST("/:id/workers", ah.AddDepartmentWorker, staff)

	courses := e.Group("/courses", auth)
	courses.GET("", ah.ListCourses)
	courses.POST("", ah.CreateCourse)
	courses.GET("/:id", ah.GetCourse)
	courses.PUT("/:id", ah.UpdateCourse)
	courses.DELETE("/:id", ah.DeleteCourse)

	enrollments := e.Group("/enrollments", auth)
	enrollments.GET("", ah.ListEnrollments)
	enrollments.GET("/statistics", ah.EnrollmentStatistics)
	enrollments.GET("/:id", ah.GetEnrollment)
	enrollments.PUT("/:id", ah.UpdateEnrollment)
	enrollments.DELETE("/:id", ah.DeleteEnrollment)

	registerCatalog(e, "/rooms", auth, ah.Catalog(models.CatalogRoom))
	registerCatalog(e, "/days", auth, ah.Catalog(models.CatalogDay))
	registerCatalog(e, "/table-types", auth, ah.Catalog(models.CatalogTableType))
	registerCatalog(e, "/topics", auth, ah.Catalog(models.CatalogTopic))
	registerCatalog(e, "/attendance-levels", auth, ah.Catalog(models.CatalogAttendanceLevel))

	tables := e.Group("/tables", auth)
	tables.GET("", ah.ListTables)
	tables.POST("", ah.CreateTable)
	tables.GET("/:id", ah.GetTable)
	tables.PUT("/:id", ah.UpdateTable)
	tables.DELETE("/:id", ah.DeleteTable)

	groups := e.Group("/groups", auth)
	groups.GET("", ah.ListGroups)
	groups.POST("", ah.CreateGroup)
	groups.GET("/options", ah.GroupOptions)
	groups.GET("/:id", ah.GetGroup)
	groups.PUT("/:id", ah.UpdateGroup)
	groups.DELETE("/:id", ah.DeleteGroup)

	groupHomeworks := e.Group("/group-homeworks", auth)
	groupHomeworks.GET("", ah.ListGroupHomeworks)
	groupHomeworks.POST("", ah.CreateGroupHomework)
	groupHomeworks.GET("/:id", ah.GetGroupHomework)
	groupHomeworks.PUT("/:id", ah.UpdateGroupHomework)
	groupHomeworks.DELETE("/:id", ah.DeleteGroupHomework)

	homeworks := e.Group("/homeworks", auth)
	homeworks.GET("", ah.ListHomeworks)
	homeworks.POST("", ah.CreateHomework)
	homeworks.GET("/:id", ah.GetHomework)
	homeworks.PUT("/:id", ah.UpdateHomework)
	homeworks.DELETE("/:id", ah.DeleteHomework)

	attendances := e.Group("/attendances", auth)
	attendances.GET("", ah.ListAttendances)
	attendances.POST("", ah.CreateAttendance)
	attendances.GET("/:id", ah.GetAttendance)
	attendances.PUT("/:id", ah.UpdateAttendance)
	attendances.DELETE("/:id", ah.DeleteAttendance)
}

func registerCatalog(e *echo.Echo, prefix string, auth echo.MiddlewareFunc, handlers academyhttp.CatalogHandlers) {
	g := e.Group(prefix, auth)
	g.GET("", handlers.List)
	g.POST("", handlers.Create)
	g.GET("/:id", handlers.Get)
	g.PUT("/:id", handlers.Update)
	g.DELETE("/:id", handlers.Delete)
}
