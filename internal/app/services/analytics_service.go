package services

import (
	"context"
	"math"
	"sync"

	"github.com/rs/zerolog"

	"github.com/okandemir/studytrack/internal/app/models"
	"github.com/okandemir/studytrack/internal/app/models/dto"
)

// completedStatus is the literal value both the dashboard analytics and the
// export summary filter assignments on. The assignment editor only ever
// produces pending/submitted/graded, so the assignment completion rate stays
// at zero; the filter is kept exactly as shipped rather than silently mapping
// submitted/graded to completed.
const completedStatus = "completed"

// AnalyticsService recomputes derived metrics from raw rows at read time.
// The precomputed snapshot row is never consulted here.
type AnalyticsService struct {
	store  RecordStore
	logger zerolog.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(store RecordStore, logger zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{store: store, logger: logger}
}

// rawRows holds the five collections the engine aggregates over.
type rawRows struct {
	courses     []models.Course
	assignments []models.Assignment
	projects    []models.Project
	attendance  []models.AttendanceRecord
	internships []models.Internship
}

// Compute fans out the five fetches and aggregates whatever came back. A
// failed fetch is logged and its collection treated as empty, so the caller
// always gets a full (possibly partial-zero) response.
func (s *AnalyticsService) Compute(ctx context.Context, userID int64) *dto.AnalyticsResponse {
	rows := s.fetchAll(ctx, userID)

	return &dto.AnalyticsResponse{
		Overview:          buildOverview(rows),
		GradeDistribution: GradeDistribution(rows.courses),
		SubmissionTrend:   SubmissionTrend(rows.assignments),
	}
}

// fetchAll issues the five collection fetches concurrently. Each goroutine
// writes a distinct field, so no locking is needed.
func (s *AnalyticsService) fetchAll(ctx context.Context, userID int64) rawRows {
	var rows rawRows
	var wg sync.WaitGroup
	wg.Add(5)

	go func() {
		defer wg.Done()
		v, err := s.store.Courses(ctx, userID)
		if err != nil {
			s.logger.Warn().Err(err).Int64("userId", userID).Msg("Analytics: course fetch failed, treating as empty")
			return
		}
		rows.courses = v
	}()
	go func() {
		defer wg.Done()
		v, err := s.store.Assignments(ctx, userID)
		if err != nil {
			s.logger.Warn().Err(err).Int64("userId", userID).Msg("Analytics: assignment fetch failed, treating as empty")
			return
		}
		rows.assignments = v
	}()
	go func() {
		defer wg.Done()
		v, err := s.store.Projects(ctx, userID)
		if err != nil {
			s.logger.Warn().Err(err).Int64("userId", userID).Msg("Analytics: project fetch failed, treating as empty")
			return
		}
		rows.projects = v
	}()
	go func() {
		defer wg.Done()
		v, err := s.store.Attendance(ctx, userID)
		if err != nil {
			s.logger.Warn().Err(err).Int64("userId", userID).Msg("Analytics: attendance fetch failed, treating as empty")
			return
		}
		rows.attendance = v
	}()
	go func() {
		defer wg.Done()
		v, err := s.store.Internships(ctx, userID)
		if err != nil {
			s.logger.Warn().Err(err).Int64("userId", userID).Msg("Analytics: internship fetch failed, treating as empty")
			return
		}
		rows.internships = v
	}()

	wg.Wait()
	return rows
}

// CompletionRate returns round(100 * completed / total), 0 when total is 0.
func CompletionRate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

func buildOverview(rows rawRows) dto.AnalyticsOverview {
	completedProjects := 0
	for _, p := range rows.projects {
		if p.Status == models.ProjectCompleted {
			completedProjects++
		}
	}

	completedAssignments := 0
	for _, a := range rows.assignments {
		if string(a.Status) == completedStatus {
			completedAssignments++
		}
	}

	attended := 0
	for _, a := range rows.attendance {
		if a.Status == models.AttendancePresent {
			attended++
		}
	}

	return dto.AnalyticsOverview{
		ProjectCompletion:    CompletionRate(completedProjects, len(rows.projects)),
		AssignmentCompletion: CompletionRate(completedAssignments, len(rows.assignments)),
		AttendanceRate:       CompletionRate(attended, len(rows.attendance)),
		TotalProjects:        len(rows.projects),
		CompletedProjects:    completedProjects,
		TotalAssignments:     len(rows.assignments),
		CompletedAssignments: completedAssignments,
		TotalInternships:     len(rows.internships),
		TotalAttendance:      len(rows.attendance),
		AttendedClasses:      attended,
	}
}

// GradeDistribution buckets courses by letter grade in first-seen order.
// Courses without a grade land in the "No Grade" bucket.
func GradeDistribution(courses []models.Course) []dto.GradeBucket {
	var buckets []dto.GradeBucket
	index := make(map[string]int)

	for _, c := range courses {
		grade := "No Grade"
		if c.Grade != nil && *c.Grade != "" {
			grade = *c.Grade
		}
		if i, ok := index[grade]; ok {
			buckets[i].Value++
			continue
		}
		index[grade] = len(buckets)
		buckets = append(buckets, dto.GradeBucket{Name: grade, Value: 1})
	}

	return buckets
}

// SubmissionTrend counts assignments per short month name of their creation
// timestamp, in first-seen order. The year is not part of the key and months
// are not calendar-sorted; that matches the chart as shipped.
func SubmissionTrend(assignments []models.Assignment) []dto.TrendPoint {
	var points []dto.TrendPoint
	index := make(map[string]int)

	for _, a := range assignments {
		month := a.CreatedAt.Format("Jan")
		if i, ok := index[month]; ok {
			points[i].Assignments++
			continue
		}
		index[month] = len(points)
		points = append(points, dto.TrendPoint{Month: month, Assignments: 1})
	}

	return points
}
