package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/teacher-portal-api/internal/middleware"
	"github.com/noah-isme/teacher-portal-api/internal/models"
	"github.com/noah-isme/teacher-portal-api/internal/service"
)

// Handlers bundles the HTTP handlers mounted by the router.
type Handlers struct {
	Auth       *AuthHandler
	Dashboard  *DashboardHandler
	Assignment *AssignmentHandler
	Exam       *ExamHandler
	Attendance *AttendanceHandler
	Timetable  *TimetableHandler
	Report     *ReportHandler
}

// RegisterRoutes mounts the API under the given prefix. Everything except
// login and refresh requires a teacher's access token.
func RegisterRoutes(r *gin.Engine, prefix string, authSvc *service.AuthService, h Handlers) {
	api := r.Group(prefix)

	auth := api.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)
	auth.POST("/logout", middleware.JWT(authSvc), h.Auth.Logout)

	secured := api.Group("")
	secured.Use(middleware.JWT(authSvc), middleware.RequireRoles(models.RoleTeacher))

	secured.GET("/dashboard", h.Dashboard.Summary)

	secured.GET("/assignments", h.Assignment.List)
	secured.GET("/assignments/:id/students", h.Report.Students)

	secured.GET("/assignments/:id/exams", h.Exam.List)
	secured.POST("/assignments/:id/exams", h.Exam.Create)
	secured.GET("/exams/:id/roster", h.Exam.Roster)
	secured.POST("/exams/:id/confirm", h.Exam.Confirm)

	secured.GET("/assignments/:id/attendance", h.Attendance.List)
	secured.POST("/assignments/:id/attendance", h.Attendance.Create)
	secured.GET("/attendance/:id", h.Attendance.Get)
	secured.GET("/attendance/:id/records", h.Attendance.Records)
	secured.POST("/attendance/:id/confirm", h.Attendance.Confirm)

	secured.GET("/timetable", h.Timetable.Grid)
	secured.GET("/slots/:id/substitutes", h.Timetable.Substitutes)

	secured.GET("/assignments/:id/report", h.Report.Report)
	secured.GET("/assignments/:id/report/export", h.Report.Export)
}
