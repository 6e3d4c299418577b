package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okandemir/studytrack/internal/app/models"
)

// fakeStore is an in-memory RecordStore for service tests. Setting an entry
// in errs makes that collection's fetch fail.
type fakeStore struct {
	profile     *models.Profile
	courses     []models.Course
	assignments []models.Assignment
	projects    []models.Project
	internships []models.Internship
	attendance  []models.AttendanceRecord
	errs        map[string]error
}

func (f *fakeStore) fail(key string) error {
	if f.errs == nil {
		return nil
	}
	return f.errs[key]
}

func (f *fakeStore) Profile(_ context.Context, _ int64) (*models.Profile, error) {
	return f.profile, f.fail("profile")
}

func (f *fakeStore) Courses(_ context.Context, _ int64) ([]models.Course, error) {
	return f.courses, f.fail("courses")
}

func (f *fakeStore) Assignments(_ context.Context, _ int64) ([]models.Assignment, error) {
	return f.assignments, f.fail("assignments")
}

func (f *fakeStore) Projects(_ context.Context, _ int64) ([]models.Project, error) {
	return f.projects, f.fail("projects")
}

func (f *fakeStore) Internships(_ context.Context, _ int64) ([]models.Internship, error) {
	return f.internships, f.fail("internships")
}

func (f *fakeStore) Attendance(_ context.Context, _ int64) ([]models.AttendanceRecord, error) {
	return f.attendance, f.fail("attendance")
}

func strp(s string) *string { return &s }

func projectsWithStatuses(statuses ...models.ProjectStatus) []models.Project {
	out := make([]models.Project, len(statuses))
	for i, st := range statuses {
		out[i] = models.Project{ID: int64(i + 1), Title: "p", Status: st}
	}
	return out
}

func assignmentsWithStatuses(statuses ...models.AssignmentStatus) []models.Assignment {
	out := make([]models.Assignment, len(statuses))
	for i, st := range statuses {
		out[i] = models.Assignment{ID: int64(i + 1), Title: "a", Status: st}
	}
	return out
}

func attendanceWithStatuses(statuses ...models.AttendanceStatus) []models.AttendanceRecord {
	out := make([]models.AttendanceRecord, len(statuses))
	for i, st := range statuses {
		out[i] = models.AttendanceRecord{ID: int64(i + 1), CourseID: 1, Status: st}
	}
	return out
}

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{"zero total yields zero", 0, 0, 0},
		{"zero total ignores completed", 3, 0, 0},
		{"half", 2, 4, 50},
		{"all", 4, 4, 100},
		{"rounds up", 1, 3, 33},
		{"rounds two thirds", 2, 3, 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompletionRate(tt.completed, tt.total))
		})
	}
}

func TestComputeOverviewScenario(t *testing.T) {
	store := &fakeStore{
		projects: projectsWithStatuses(
			models.ProjectCompleted, models.ProjectCompleted, models.ProjectOngoing, models.ProjectPaused,
		),
		// The form never produces a "completed" assignment status, and the
		// completion filter looks for exactly that, so this stays at zero.
		assignments: assignmentsWithStatuses(
			models.AssignmentPending, models.AssignmentSubmitted, models.AssignmentSubmitted,
		),
		attendance: attendanceWithStatuses(
			models.AttendancePresent, models.AttendancePresent, models.AttendanceAbsent, models.AttendanceLate,
		),
	}
	svc := NewAnalyticsService(store, zerolog.Nop())

	resp := svc.Compute(context.Background(), 1)

	assert.Equal(t, 50, resp.Overview.ProjectCompletion)
	assert.Equal(t, 0, resp.Overview.AssignmentCompletion)
	assert.Equal(t, 50, resp.Overview.AttendanceRate)
	assert.Equal(t, 4, resp.Overview.TotalProjects)
	assert.Equal(t, 2, resp.Overview.CompletedProjects)
	assert.Equal(t, 3, resp.Overview.TotalAssignments)
	assert.Equal(t, 0, resp.Overview.CompletedAssignments)
	assert.Equal(t, 4, resp.Overview.TotalAttendance)
	assert.Equal(t, 2, resp.Overview.AttendedClasses)
}

func TestComputeEmptyCollectionsYieldZeros(t *testing.T) {
	svc := NewAnalyticsService(&fakeStore{}, zerolog.Nop())

	resp := svc.Compute(context.Background(), 1)

	assert.Equal(t, 0, resp.Overview.ProjectCompletion)
	assert.Equal(t, 0, resp.Overview.AssignmentCompletion)
	assert.Equal(t, 0, resp.Overview.AttendanceRate)
	assert.Empty(t, resp.GradeDistribution)
	assert.Empty(t, resp.SubmissionTrend)
}

func TestGradeDistributionFirstSeenOrder(t *testing.T) {
	courses := []models.Course{
		{Grade: strp("B")},
		{Grade: nil},
		{Grade: strp("A")},
		{Grade: strp("B")},
		{Grade: strp("")},
	}

	buckets := GradeDistribution(courses)

	require.Len(t, buckets, 3)
	assert.Equal(t, "B", buckets[0].Name)
	assert.Equal(t, 2, buckets[0].Value)
	assert.Equal(t, "No Grade", buckets[1].Name)
	assert.Equal(t, 2, buckets[1].Value)
	assert.Equal(t, "A", buckets[2].Name)
	assert.Equal(t, 1, buckets[2].Value)
}

func TestGradeDistributionConservation(t *testing.T) {
	courses := []models.Course{
		{Grade: strp("A")}, {Grade: strp("C")}, {Grade: nil},
		{Grade: strp("A")}, {Grade: strp("B")}, {Grade: strp("C")}, {Grade: strp("A")},
	}

	buckets := GradeDistribution(courses)

	total := 0
	seen := make(map[string]bool)
	for _, b := range buckets {
		assert.False(t, seen[b.Name], "duplicate bucket %q", b.Name)
		seen[b.Name] = true
		total += b.Value
	}
	assert.Equal(t, len(courses), total)
}

func TestSubmissionTrendFirstSeenOrder(t *testing.T) {
	jan := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC)

	assignments := []models.Assignment{
		{CreatedAt: mar},
		{CreatedAt: jan},
		{CreatedAt: mar},
		{CreatedAt: feb},
	}

	points := SubmissionTrend(assignments)

	require.Len(t, points, 3)
	assert.Equal(t, "Mar", points[0].Month)
	assert.Equal(t, 2, points[0].Assignments)
	assert.Equal(t, "Jan", points[1].Month)
	assert.Equal(t, 1, points[1].Assignments)
	assert.Equal(t, "Feb", points[2].Month)
	assert.Equal(t, 1, points[2].Assignments)
}

func TestSubmissionTrendConservation(t *testing.T) {
	var assignments []models.Assignment
	base := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 17; i++ {
		assignments = append(assignments, models.Assignment{
			CreatedAt: base.AddDate(0, i%5, i),
		})
	}

	points := SubmissionTrend(assignments)

	total := 0
	for _, p := range points {
		total += p.Assignments
	}
	assert.Equal(t, len(assignments), total)
}

func TestComputeIdempotent(t *testing.T) {
	store := &fakeStore{
		courses:     []models.Course{{Grade: strp("A")}, {Grade: nil}},
		projects:    projectsWithStatuses(models.ProjectCompleted, models.ProjectOngoing),
		assignments: assignmentsWithStatuses(models.AssignmentGraded, models.AssignmentPending),
		attendance:  attendanceWithStatuses(models.AttendancePresent),
	}
	svc := NewAnalyticsService(store, zerolog.Nop())

	first := svc.Compute(context.Background(), 1)
	second := svc.Compute(context.Background(), 1)

	assert.Equal(t, first, second)
}

func TestComputeDegradesFailedFetch(t *testing.T) {
	store := &fakeStore{
		projects:   projectsWithStatuses(models.ProjectCompleted, models.ProjectCompleted),
		attendance: attendanceWithStatuses(models.AttendancePresent, models.AttendanceAbsent),
		errs:       map[string]error{"courses": errors.New("connection refused")},
	}
	svc := NewAnalyticsService(store, zerolog.Nop())

	resp := svc.Compute(context.Background(), 1)

	// The failed collection is treated as empty; the rest still compute.
	assert.Empty(t, resp.GradeDistribution)
	assert.Equal(t, 100, resp.Overview.ProjectCompletion)
	assert.Equal(t, 50, resp.Overview.AttendanceRate)
}
