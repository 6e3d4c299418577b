package dto

// Record payloads. Dates travel as "YYYY-MM-DD" strings, the format the
// original forms submit; services parse and validate them.

// UpdateProfileRequest is the upsert payload for the profile screen
type UpdateProfileRequest struct {
	FullName       *string  `json:"fullName"`
	Bio            *string  `json:"bio"`
	Phone          *string  `json:"phone"`
	Location       *string  `json:"location"`
	GPA            *float64 `json:"gpa" example:"3.4"`
	GraduationDate *string  `json:"graduationDate" example:"2027-06-15"`
	Major          *string  `json:"major"`
	Skills         []string `json:"skills"`
}

// CourseRequest is the create/update payload for a course
type CourseRequest struct {
	CourseCode string  `json:"courseCode" binding:"required" example:"CS301"`
	CourseName string  `json:"courseName" binding:"required" example:"Operating Systems"`
	Credits    *int    `json:"credits"`
	Grade      *string `json:"grade" example:"A"`
	Semester   *string `json:"semester"`
	Instructor *string `json:"instructor"`
	Status     string  `json:"status" example:"enrolled"`
}

// AssignmentRequest is the create/update payload for an assignment
type AssignmentRequest struct {
	CourseID       int64    `json:"courseId" binding:"required"`
	Title          string   `json:"title" binding:"required"`
	Description    *string  `json:"description"`
	DueDate        string   `json:"dueDate" binding:"required" example:"2026-05-30"`
	SubmissionDate *string  `json:"submissionDate"`
	Grade          *float64 `json:"grade"`
	Status         string   `json:"status" example:"pending"`
}

// ProjectRequest is the create/update payload for a project
type ProjectRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  *string  `json:"description"`
	Technologies []string `json:"technologies"`
	GithubLink   *string  `json:"githubLink"`
	LiveLink     *string  `json:"liveLink"`
	StartDate    *string  `json:"startDate"`
	EndDate      *string  `json:"endDate"`
	Status       string   `json:"status" example:"ongoing"`
}

// InternshipRequest is the create/update payload for an internship
type InternshipRequest struct {
	CompanyName   string   `json:"companyName" binding:"required"`
	Position      string   `json:"position" binding:"required"`
	Description   *string  `json:"description"`
	StartDate     string   `json:"startDate" binding:"required" example:"2025-06-01"`
	EndDate       *string  `json:"endDate"`
	IsOngoing     bool     `json:"isOngoing"`
	Location      *string  `json:"location"`
	SkillsLearned []string `json:"skillsLearned"`
}

// AttendanceRequest is the create/update payload for an attendance record
type AttendanceRequest struct {
	CourseID int64  `json:"courseId" binding:"required"`
	Date     string `json:"date" binding:"required" example:"2026-03-02"`
	Status   string `json:"status" binding:"required" example:"present"`
}
