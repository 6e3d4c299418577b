package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/okandemir/studytrack/internal/app/controllers"
	"github.com/okandemir/studytrack/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	courseController *controllers.CourseController,
	assignmentController *controllers.AssignmentController,
	projectController *controllers.ProjectController,
	internshipController *controllers.InternshipController,
	attendanceController *controllers.AttendanceController,
	dashboardController *controllers.DashboardController,
	analyticsController *controllers.AnalyticsController,
	exportController *controllers.ExportController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.Refresh)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		profile := authenticated.Group("/profile")
		{
			profile.GET("", profileController.GetProfile)
			profile.PUT("", profileController.UpdateProfile)
		}

		courses := authenticated.Group("/courses")
		{
			courses.GET("", courseController.ListCourses)
			courses.GET("/:id", courseController.GetCourse)
			courses.POST("", courseController.CreateCourse)
			courses.PUT("/:id", courseController.UpdateCourse)
			courses.DELETE("/:id", courseController.DeleteCourse)
		}

		assignments := authenticated.Group("/assignments")
		{
			assignments.GET("", assignmentController.ListAssignments)
			assignments.GET("/:id", assignmentController.GetAssignment)
			assignments.POST("", assignmentController.CreateAssignment)
			assignments.PUT("/:id", assignmentController.UpdateAssignment)
			assignments.DELETE("/:id", assignmentController.DeleteAssignment)
		}

		projects := authenticated.Group("/projects")
		{
			projects.GET("", projectController.ListProjects)
			projects.GET("/:id", projectController.GetProject)
			projects.POST("", projectController.CreateProject)
			projects.PUT("/:id", projectController.UpdateProject)
			projects.DELETE("/:id", projectController.DeleteProject)
		}

		internships := authenticated.Group("/internships")
		{
			internships.GET("", internshipController.ListInternships)
			internships.GET("/:id", internshipController.GetInternship)
			internships.POST("", internshipController.CreateInternship)
			internships.PUT("/:id", internshipController.UpdateInternship)
			internships.DELETE("/:id", internshipController.DeleteInternship)
		}

		attendance := authenticated.Group("/attendance")
		{
			attendance.GET("", attendanceController.ListAttendance)
			attendance.GET("/:id", attendanceController.GetAttendance)
			attendance.POST("", attendanceController.CreateAttendance)
			attendance.PUT("/:id", attendanceController.UpdateAttendance)
			attendance.DELETE("/:id", attendanceController.DeleteAttendance)
		}

		authenticated.GET("/dashboard", dashboardController.GetDashboard)
		authenticated.GET("/analytics", analyticsController.GetAnalytics)

		export := authenticated.Group("/export")
		{
			export.GET("/json", exportController.ExportJSON)
			export.GET("/pdf", exportController.ExportPDF)
		}
	}
}
