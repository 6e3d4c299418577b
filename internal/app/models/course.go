package models

import (
	"time"
)

// CourseStatus is the enrollment state of a course
type CourseStatus string

const (
	CourseEnrolled  CourseStatus = "enrolled"
	CourseCompleted CourseStatus = "completed"
	CourseDropped   CourseStatus = "dropped"
)

// Valid reports whether s is a known course status
func (s CourseStatus) Valid() bool {
	switch s {
	case CourseEnrolled, CourseCompleted, CourseDropped:
		return true
	}
	return false
}

// Course defines a course row based on the 'courses' table
type Course struct {
	ID         int64        `json:"id" db:"id"`
	UserID     int64        `json:"userId" db:"user_id"`
	CourseCode string       `json:"courseCode" db:"course_code" example:"CS301"`
	CourseName string       `json:"courseName" db:"course_name" example:"Operating Systems"`
	Credits    *int         `json:"credits,omitempty" db:"credits" example:"6"`
	Grade      *string      `json:"grade,omitempty" db:"grade" example:"A"`
	Semester   *string      `json:"semester,omitempty" db:"semester" example:"Fall 2025"`
	Instructor *string      `json:"instructor,omitempty" db:"instructor"`
	Status     CourseStatus `json:"status" db:"status" example:"enrolled"`
	CreatedAt  time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time    `json:"updatedAt" db:"updated_at"`
}
