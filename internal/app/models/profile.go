package models

import (
	"time"
)

// Profile defines the student profile based on the 'profiles' table.
// One row per user, created empty at registration and upserted afterwards.
type Profile struct {
	ID              int64      `json:"id" db:"id"`
	UserID          int64      `json:"userId" db:"user_id"`
	Email           string     `json:"email" db:"email" example:"student@university.edu"`
	FullName        *string    `json:"fullName,omitempty" db:"full_name" example:"Jane Doe"`
	Bio             *string    `json:"bio,omitempty" db:"bio"`
	ProfileImageURL *string    `json:"profileImageUrl,omitempty" db:"profile_image_url"`
	Phone           *string    `json:"phone,omitempty" db:"phone"`
	Location        *string    `json:"location,omitempty" db:"location"`
	GPA             *float64   `json:"gpa,omitempty" db:"gpa" example:"3.4"`
	GraduationDate  *time.Time `json:"graduationDate,omitempty" db:"graduation_date"`
	Major           *string    `json:"major,omitempty" db:"major" example:"Computer Science"`
	Skills          []string   `json:"skills" db:"skills"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
}
