package models

import (
	"time"
)

// Internship defines an internship row based on the 'internships' table.
// EndDate is ignored while IsOngoing is set.
type Internship struct {
	ID            int64      `json:"id" db:"id"`
	UserID        int64      `json:"userId" db:"user_id"`
	CompanyName   string     `json:"companyName" db:"company_name" example:"Acme Corp"`
	Position      string     `json:"position" db:"position" example:"Backend Intern"`
	Description   *string    `json:"description,omitempty" db:"description"`
	StartDate     time.Time  `json:"startDate" db:"start_date"`
	EndDate       *time.Time `json:"endDate,omitempty" db:"end_date"`
	IsOngoing     bool       `json:"isOngoing" db:"is_ongoing"`
	Location      *string    `json:"location,omitempty" db:"location"`
	SkillsLearned []string   `json:"skillsLearned" db:"skills_learned"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
}
