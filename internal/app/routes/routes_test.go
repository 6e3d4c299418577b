package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/okandemir/studytrack/internal/app/controllers"
	"github.com/okandemir/studytrack/internal/middleware"
)

// Route registration only needs controller values, never their services.
func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	SetupRouter(router,
		controllers.NewAuthController(nil),
		controllers.NewProfileController(nil),
		controllers.NewCourseController(nil),
		controllers.NewAssignmentController(nil),
		controllers.NewProjectController(nil),
		controllers.NewInternshipController(nil),
		controllers.NewAttendanceController(nil),
		controllers.NewDashboardController(nil),
		controllers.NewAnalyticsController(nil),
		controllers.NewExportController(nil),
		middleware.NewAuthMiddleware(nil),
	)
	return router
}

func TestSetupRouterRegistersAllRoutes(t *testing.T) {
	router := testRouter()

	registered := make(map[string]bool)
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	want := []string{
		"POST /api/v1/auth/register",
		"POST /api/v1/auth/login",
		"POST /api/v1/auth/refresh",
		"GET /api/v1/profile",
		"PUT /api/v1/profile",
		"GET /api/v1/courses",
		"GET /api/v1/courses/:id",
		"POST /api/v1/courses",
		"PUT /api/v1/courses/:id",
		"DELETE /api/v1/courses/:id",
		"GET /api/v1/assignments",
		"GET /api/v1/assignments/:id",
		"POST /api/v1/assignments",
		"PUT /api/v1/assignments/:id",
		"DELETE /api/v1/assignments/:id",
		"GET /api/v1/projects",
		"GET /api/v1/projects/:id",
		"POST /api/v1/projects",
		"PUT /api/v1/projects/:id",
		"DELETE /api/v1/projects/:id",
		"GET /api/v1/internships",
		"GET /api/v1/internships/:id",
		"POST /api/v1/internships",
		"PUT /api/v1/internships/:id",
		"DELETE /api/v1/internships/:id",
		"GET /api/v1/attendance",
		"GET /api/v1/attendance/:id",
		"POST /api/v1/attendance",
		"PUT /api/v1/attendance/:id",
		"DELETE /api/v1/attendance/:id",
		"GET /api/v1/dashboard",
		"GET /api/v1/analytics",
		"GET /api/v1/export/json",
		"GET /api/v1/export/pdf",
	}
	for _, route := range want {
		assert.True(t, registered[route], "route %s not registered", route)
	}
}

func TestRecordResourcesShareTheSameRoutePattern(t *testing.T) {
	router := testRouter()

	registered := make(map[string]bool)
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	// Every record resource exposes list, single read, create, update, delete.
	for _, resource := range []string{"courses", "assignments", "projects", "internships", "attendance"} {
		base := "/api/v1/" + resource
		assert.True(t, registered["GET "+base], "%s missing list", resource)
		assert.True(t, registered["GET "+base+"/:id"], "%s missing single read", resource)
		assert.True(t, registered["POST "+base], "%s missing create", resource)
		assert.True(t, registered["PUT "+base+"/:id"], "%s missing update", resource)
		assert.True(t, registered["DELETE "+base+"/:id"], "%s missing delete", resource)
	}
}
