package models

import (
	"time"
)

// AnalyticsSnapshot defines the precomputed per-user counters based on the
// 'analytics' table. The row is maintained by database triggers; the
// analytics service never trusts it and recomputes from raw rows instead.
// The dashboard shows it as-is.
type AnalyticsSnapshot struct {
	ID                   int64     `json:"id" db:"id"`
	UserID               int64     `json:"userId" db:"user_id"`
	TotalProjects        int       `json:"totalProjects" db:"total_projects"`
	CompletedProjects    int       `json:"completedProjects" db:"completed_projects"`
	TotalInternships     int       `json:"totalInternships" db:"total_internships"`
	CurrentGPA           *float64  `json:"currentGpa,omitempty" db:"current_gpa"`
	TotalAssignments     int       `json:"totalAssignments" db:"total_assignments"`
	CompletedAssignments int       `json:"completedAssignments" db:"completed_assignments"`
	AvgAttendance        *float64  `json:"avgAttendance,omitempty" db:"avg_attendance"`
	ProductivityScore    float64   `json:"productivityScore" db:"productivity_score"`
	LastUpdated          time.Time `json:"lastUpdated" db:"last_updated"`
}
