package dto

import (
	"github.com/okandemir/studytrack/internal/app/models"
)

// AnalyticsOverview carries the completion rates recomputed from raw rows
type AnalyticsOverview struct {
	ProjectCompletion    int `json:"projectCompletion" example:"50"`
	AssignmentCompletion int `json:"assignmentCompletion" example:"0"`
	AttendanceRate       int `json:"attendanceRate" example:"75"`
	TotalProjects        int `json:"totalProjects"`
	CompletedProjects    int `json:"completedProjects"`
	TotalAssignments     int `json:"totalAssignments"`
	CompletedAssignments int `json:"completedAssignments"`
	TotalInternships     int `json:"totalInternships"`
	TotalAttendance      int `json:"totalAttendance"`
	AttendedClasses      int `json:"attendedClasses"`
}

// GradeBucket is one grade-distribution histogram bar; buckets keep the
// first-seen order of the course list, with "No Grade" for ungraded courses
type GradeBucket struct {
	Name  string `json:"name" example:"A"`
	Value int    `json:"value" example:"3"`
}

// TrendPoint is one month of the submission trend, keyed by the short month
// name of the assignment creation timestamp, in first-seen order
type TrendPoint struct {
	Month       string `json:"month" example:"Jan"`
	Assignments int    `json:"assignments" example:"4"`
}

// AnalyticsResponse is the full analytics screen payload
type AnalyticsResponse struct {
	Overview          AnalyticsOverview `json:"overview"`
	GradeDistribution []GradeBucket     `json:"gradeDistribution"`
	SubmissionTrend   []TrendPoint      `json:"submissionTrend"`
}

// DashboardResponse pairs the externally maintained analytics snapshot with
// the profile. GPAScale reflects the dashboard's "out of 10.0" label; the
// profile editor independently caps input at 4.0.
type DashboardResponse struct {
	Snapshot *models.AnalyticsSnapshot `json:"snapshot,omitempty"`
	Profile  *models.Profile           `json:"profile,omitempty"`
	GPAScale float64                   `json:"gpaScale" example:"10"`
}
