package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okandemir/studytrack/internal/app/models"
)

// Repositories bundles all repository instances
type Repositories struct {
	UserRepository       *UserRepository
	TokenRepository      *TokenRepository
	ProfileRepository    *ProfileRepository
	CourseRepository     *CourseRepository
	AssignmentRepository *AssignmentRepository
	ProjectRepository    *ProjectRepository
	InternshipRepository *InternshipRepository
	AttendanceRepository *AttendanceRepository
	AnalyticsRepository  *AnalyticsRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		TokenRepository:      NewTokenRepository(db),
		ProfileRepository:    NewProfileRepository(db),
		CourseRepository:     NewCourseRepository(db),
		AssignmentRepository: NewAssignmentRepository(db),
		ProjectRepository:    NewProjectRepository(db),
		InternshipRepository: NewInternshipRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
		AnalyticsRepository:  NewAnalyticsRepository(db),
	}
}

// RecordStore is the read-only, owner-scoped row access handed to the
// analytics and export services. It narrows the repositories to fetches so
// neither consumer can mutate records.
type RecordStore struct {
	repos *Repositories
}

// NewRecordStore creates a RecordStore over the given repositories
func NewRecordStore(repos *Repositories) *RecordStore {
	return &RecordStore{repos: repos}
}

// Profile fetches the profile row for userID
func (s *RecordStore) Profile(ctx context.Context, userID int64) (*models.Profile, error) {
	return s.repos.ProfileRepository.GetByUserID(ctx, userID)
}

// Courses fetches all course rows owned by userID
func (s *RecordStore) Courses(ctx context.Context, userID int64) ([]models.Course, error) {
	return s.repos.CourseRepository.ListByUser(ctx, userID)
}

// Assignments fetches all assignment rows owned by userID
func (s *RecordStore) Assignments(ctx context.Context, userID int64) ([]models.Assignment, error) {
	return s.repos.AssignmentRepository.ListByUser(ctx, userID)
}

// Projects fetches all project rows owned by userID
func (s *RecordStore) Projects(ctx context.Context, userID int64) ([]models.Project, error) {
	return s.repos.ProjectRepository.ListByUser(ctx, userID)
}

// Internships fetches all internship rows owned by userID
func (s *RecordStore) Internships(ctx context.Context, userID int64) ([]models.Internship, error) {
	return s.repos.InternshipRepository.ListByUser(ctx, userID)
}

// Attendance fetches all attendance rows owned by userID
func (s *RecordStore) Attendance(ctx context.Context, userID int64) ([]models.AttendanceRecord, error) {
	return s.repos.AttendanceRepository.ListByUser(ctx, userID)
}
