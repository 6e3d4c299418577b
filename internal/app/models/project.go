package models

import (
	"time"
)

// ProjectStatus is the progress state of a project
type ProjectStatus string

const (
	ProjectOngoing   ProjectStatus = "ongoing"
	ProjectCompleted ProjectStatus = "completed"
	ProjectPaused    ProjectStatus = "paused"
)

// Valid reports whether s is a known project status
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectOngoing, ProjectCompleted, ProjectPaused:
		return true
	}
	return false
}

// Project defines a project row based on the 'projects' table
type Project struct {
	ID           int64         `json:"id" db:"id"`
	UserID       int64         `json:"userId" db:"user_id"`
	Title        string        `json:"title" db:"title" example:"Course Planner"`
	Description  *string       `json:"description,omitempty" db:"description"`
	Technologies []string      `json:"technologies" db:"technologies"`
	GithubLink   *string       `json:"githubLink,omitempty" db:"github_link"`
	LiveLink     *string       `json:"liveLink,omitempty" db:"live_link"`
	ImageURL     *string       `json:"imageUrl,omitempty" db:"image_url"`
	StartDate    *time.Time    `json:"startDate,omitempty" db:"start_date"`
	EndDate      *time.Time    `json:"endDate,omitempty" db:"end_date"`
	Status       ProjectStatus `json:"status" db:"status" example:"ongoing"`
	CreatedAt    time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time     `json:"updatedAt" db:"updated_at"`
}
