// Package seed creates a demo student account with a spread of records so a
// fresh install has something to show on the dashboard and in the exports.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/okandemir/studytrack/internal/app/models"
	appRepos "github.com/okandemir/studytrack/internal/app/repositories"
	"github.com/okandemir/studytrack/internal/pkg/auth"
)

const (
	demoEmail    = "demo@studytrack.app"
	demoPassword = "demo-password-123"
)

// CreateDemoData inserts the demo account if it does not exist yet
func CreateDemoData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(dbPool)

	exists, err := repos.UserRepository.EmailExists(ctx, demoEmail)
	if err != nil {
		return fmt.Errorf("checking demo account: %w", err)
	}
	if exists {
		lgr.Debug().Str("email", demoEmail).Msg("Demo account already present, skipping seed")
		return nil
	}

	lgr.Info().Str("email", demoEmail).Msg("Seeding demo account...")

	hashed, err := auth.HashPassword(demoPassword)
	if err != nil {
		return fmt.Errorf("hashing demo password: %w", err)
	}

	user := &appModels.User{Email: demoEmail, Password: hashed, IsActive: true}
	if err := repos.UserRepository.Create(ctx, user); err != nil {
		return fmt.Errorf("creating demo user: %w", err)
	}
	if err := repos.ProfileRepository.Create(ctx, user.ID, user.Email); err != nil {
		return fmt.Errorf("creating demo profile: %w", err)
	}

	fullName := "Demo Student"
	major := "Computer Science"
	gpa := 3.4
	grad := time.Date(2027, time.June, 15, 0, 0, 0, 0, time.UTC)
	profile := &appModels.Profile{
		UserID:         user.ID,
		Email:          user.Email,
		FullName:       &fullName,
		Major:          &major,
		GPA:            &gpa,
		GraduationDate: &grad,
		Skills:         []string{"Go", "SQL", "React"},
	}
	if err := repos.ProfileRepository.Upsert(ctx, profile); err != nil {
		return fmt.Errorf("seeding demo profile: %w", err)
	}

	gradeA := "A"
	gradeB := "B+"
	credits := 6
	courses := []*appModels.Course{
		{UserID: user.ID, CourseCode: "CS301", CourseName: "Operating Systems", Credits: &credits, Grade: &gradeA, Status: appModels.CourseCompleted},
		{UserID: user.ID, CourseCode: "CS305", CourseName: "Databases", Credits: &credits, Grade: &gradeB, Status: appModels.CourseCompleted},
		{UserID: user.ID, CourseCode: "CS310", CourseName: "Distributed Systems", Credits: &credits, Status: appModels.CourseEnrolled},
	}
	for _, c := range courses {
		if err := repos.CourseRepository.Create(ctx, c); err != nil {
			return fmt.Errorf("seeding demo course: %w", err)
		}
	}

	now := time.Now()
	assignments := []*appModels.Assignment{
		{UserID: user.ID, CourseID: courses[0].ID, Title: "Scheduler lab", DueDate: now.AddDate(0, 0, -20), Status: appModels.AssignmentGraded},
		{UserID: user.ID, CourseID: courses[1].ID, Title: "Query optimizer report", DueDate: now.AddDate(0, 0, -5), Status: appModels.AssignmentSubmitted},
		{UserID: user.ID, CourseID: courses[2].ID, Title: "Consensus reading notes", DueDate: now.AddDate(0, 0, 10), Status: appModels.AssignmentPending},
	}
	for _, a := range assignments {
		if err := repos.AssignmentRepository.Create(ctx, a); err != nil {
			return fmt.Errorf("seeding demo assignment: %w", err)
		}
	}

	desc := "A study planner that tracks courses and deadlines."
	project := &appModels.Project{
		UserID:       user.ID,
		Title:        "Course Planner",
		Description:  &desc,
		Technologies: []string{"Go", "Postgres"},
		Status:       appModels.ProjectCompleted,
	}
	if err := repos.ProjectRepository.Create(ctx, project); err != nil {
		return fmt.Errorf("seeding demo project: %w", err)
	}

	internship := &appModels.Internship{
		UserID:        user.ID,
		CompanyName:   "Acme Corp",
		Position:      "Backend Intern",
		StartDate:     now.AddDate(0, -3, 0),
		IsOngoing:     true,
		SkillsLearned: []string{"Go", "Kubernetes"},
	}
	if err := repos.InternshipRepository.Create(ctx, internship); err != nil {
		return fmt.Errorf("seeding demo internship: %w", err)
	}

	statuses := []appModels.AttendanceStatus{
		appModels.AttendancePresent, appModels.AttendancePresent,
		appModels.AttendanceAbsent, appModels.AttendanceLate,
	}
	for i, st := range statuses {
		record := &appModels.AttendanceRecord{
			UserID:   user.ID,
			CourseID: courses[2].ID,
			Date:     now.AddDate(0, 0, -(i + 1)),
			Status:   st,
		}
		if err := repos.AttendanceRepository.Create(ctx, record); err != nil {
			return fmt.Errorf("seeding demo attendance: %w", err)
		}
	}

	lgr.Info().Int64("userId", user.ID).Msg("Demo account seeded")
	return nil
}
