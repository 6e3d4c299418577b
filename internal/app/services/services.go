// Package services holds the business logic between the HTTP controllers and
// the repositories.
//
// Services defined in this package:
//   - AuthService: registration, login and token refresh
//   - ProfileService: profile read/upsert
//   - CourseService, AssignmentService, ProjectService, InternshipService,
//     AttendanceService: per-entity record management
//   - DashboardService: precomputed snapshot + profile for the landing screen
//   - AnalyticsService: completion rates and charts recomputed from raw rows
//   - ExportService: full-snapshot JSON and PDF downloads
package services

import (
	"context"

	"github.com/okandemir/studytrack/internal/app/models"
)

// RecordStore is the read-only, owner-scoped row access consumed by the
// analytics and export services. It is passed in explicitly; nothing in this
// package reaches for ambient session state.
type RecordStore interface {
	Profile(ctx context.Context, userID int64) (*models.Profile, error)
	Courses(ctx context.Context, userID int64) ([]models.Course, error)
	Assignments(ctx context.Context, userID int64) ([]models.Assignment, error)
	Projects(ctx context.Context, userID int64) ([]models.Project, error)
	Internships(ctx context.Context, userID int64) ([]models.Internship, error)
	Attendance(ctx context.Context, userID int64) ([]models.AttendanceRecord, error)
}

// parseDate parses the "YYYY-MM-DD" strings the record forms submit.
const dateLayout = "2006-01-02"
