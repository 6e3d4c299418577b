package models

import (
	"time"
)

// AssignmentStatus is the submission state of an assignment. The editing
// surface only ever produces these three values; see the analytics and
// export code for the "completed" predicate they nonetheless filter on.
type AssignmentStatus string

const (
	AssignmentPending   AssignmentStatus = "pending"
	AssignmentSubmitted AssignmentStatus = "submitted"
	AssignmentGraded    AssignmentStatus = "graded"
)

// Valid reports whether s is a known assignment status
func (s AssignmentStatus) Valid() bool {
	switch s {
	case AssignmentPending, AssignmentSubmitted, AssignmentGraded:
		return true
	}
	return false
}

// Assignment defines an assignment row based on the 'assignments' table
type Assignment struct {
	ID             int64            `json:"id" db:"id"`
	UserID         int64            `json:"userId" db:"user_id"`
	CourseID       int64            `json:"courseId" db:"course_id"`
	Title          string           `json:"title" db:"title" example:"Problem Set 3"`
	Description    *string          `json:"description,omitempty" db:"description"`
	DueDate        time.Time        `json:"dueDate" db:"due_date"`
	SubmissionDate *time.Time       `json:"submissionDate,omitempty" db:"submission_date"`
	Grade          *float64         `json:"grade,omitempty" db:"grade" example:"87.5"`
	Status         AssignmentStatus `json:"status" db:"status" example:"pending"`
	CreatedAt      time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time        `json:"updatedAt" db:"updated_at"`
}
