package services

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okandemir/studytrack/internal/app/models"
	"github.com/okandemir/studytrack/internal/pkg/apperrors"
	"github.com/okandemir/studytrack/internal/pkg/document"
)

// recordingCanvas captures every text write in order, ignoring geometry.
type recordingCanvas struct {
	lines []string
}

func (c *recordingCanvas) AddPage()                        {}
func (c *recordingCanvas) PageHeight() float64             { return 297 }
func (c *recordingCanvas) SetFont(_ string, _ float64)     {}
func (c *recordingCanvas) Text(_, _ float64, s string)     { c.lines = append(c.lines, s) }
func (c *recordingCanvas) SplitText(s string, _ float64) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}

func exportFixture() *fakeStore {
	grad := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.August, 30, 0, 0, 0, 0, time.UTC)
	gpa := 3.4

	return &fakeStore{
		profile: &models.Profile{
			UserID:   1,
			Email:    "jane@university.edu",
			FullName: strp("Jane Doe"),
			Major:    strp("Computer Science"),
			GPA:      &gpa,
			GraduationDate: &grad,
			Skills:   []string{"Go", "SQL"},
		},
		projects: []models.Project{
			{
				Title:        "Course Planner",
				Description:  strp("A planner for degree requirements."),
				Technologies: []string{"Go", "Postgres"},
				Status:       models.ProjectCompleted,
			},
		},
		internships: []models.Internship{
			{
				CompanyName: "Acme Corp",
				Position:    "Backend Intern",
				StartDate:   time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
				IsOngoing:   true,
			},
			{
				CompanyName: "Initech",
				Position:    "QA Intern",
				StartDate:   time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
				EndDate:     &end,
			},
		},
		courses: []models.Course{
			{CourseCode: "CS301", CourseName: "Operating Systems", Grade: strp("A")},
			{CourseCode: "CS302", CourseName: "Databases"},
		},
		assignments: assignmentsWithStatuses(
			models.AssignmentSubmitted, models.AssignmentGraded, models.AssignmentPending,
		),
		attendance: attendanceWithStatuses(
			models.AttendancePresent, models.AttendancePresent, models.AttendanceAbsent, models.AttendanceLate,
		),
	}
}

func TestFetchSnapshotAbortsOnError(t *testing.T) {
	store := exportFixture()
	store.errs = map[string]error{"assignments": errors.New("connection refused")}
	svc := NewExportService(store, zerolog.Nop())

	snap, err := svc.FetchSnapshot(context.Background(), 1)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrSnapshotFetchFailed))
	assert.Nil(t, snap)
}

func TestExportJSONRoundTrip(t *testing.T) {
	store := exportFixture()
	svc := NewExportService(store, zerolog.Nop())

	name, data, err := svc.ExportJSON(context.Background(), 1)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^student-data-\d+\.json$`), name)

	var got Snapshot
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, store.profile.Email, got.Profile.Email)
	assert.Len(t, got.Projects, 1)
	assert.Len(t, got.Internships, 2)
	assert.Len(t, got.Courses, 2)
	assert.Len(t, got.Assignments, 3)
	assert.Len(t, got.Attendance, 4)
	assert.Equal(t, models.AssignmentSubmitted, got.Assignments[0].Status)
}

func TestExportJSONKeyOrder(t *testing.T) {
	svc := NewExportService(exportFixture(), zerolog.Nop())

	_, data, err := svc.ExportJSON(context.Background(), 1)
	require.NoError(t, err)

	posOf := func(key string) int {
		idx := regexp.MustCompile(`(?m)^  "` + key + `":`).FindIndex(data)
		require.NotNil(t, idx, "missing top-level key %q", key)
		return idx[0]
	}

	order := []string{"profile", "projects", "internships", "courses", "assignments", "attendance"}
	for i := 1; i < len(order); i++ {
		assert.Less(t, posOf(order[i-1]), posOf(order[i]),
			"%q must precede %q", order[i-1], order[i])
	}
}

func TestExportFilenamesUseMillisTimestamp(t *testing.T) {
	svc := NewExportService(exportFixture(), zerolog.Nop())
	fixed := time.Date(2026, time.August, 31, 14, 30, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	jsonName, _, err := svc.ExportJSON(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "student-data-1788186605000.json", jsonName)

	pdfName, body, err := svc.ExportPDF(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "student-data-1788186605000.pdf", pdfName)
	assert.NotEmpty(t, body)
}

func TestWriteReportSections(t *testing.T) {
	canvas := &recordingCanvas{}
	snap, err := NewExportService(exportFixture(), zerolog.Nop()).FetchSnapshot(context.Background(), 1)
	require.NoError(t, err)

	now := time.Date(2026, time.August, 31, 14, 30, 5, 0, time.Local)
	writeReport(document.NewLayout(canvas), snap, now)

	assert.Contains(t, canvas.lines, "Student Dashboard Export")
	assert.Contains(t, canvas.lines, "Profile Information")
	assert.Contains(t, canvas.lines, "Name: Jane Doe")
	assert.Contains(t, canvas.lines, "GPA: 3.4")
	assert.Contains(t, canvas.lines, "Graduation Date: 2026-06-15")
	// Missing profile fields fall back to the literal N/A.
	assert.Contains(t, canvas.lines, "Location: N/A")
	assert.Contains(t, canvas.lines, "Phone: N/A")
	assert.Contains(t, canvas.lines, "Skills: Go, SQL")

	assert.Contains(t, canvas.lines, "Projects (1)")
	assert.Contains(t, canvas.lines, "Project 1: Course Planner: N/A")
	assert.Contains(t, canvas.lines, "A planner for degree requirements.")
	assert.Contains(t, canvas.lines, "  Technologies: Go, Postgres")

	assert.Contains(t, canvas.lines, "Internships (2)")
	assert.Contains(t, canvas.lines, "Internship 1: Backend Intern at Acme Corp: N/A")
	assert.Contains(t, canvas.lines, "  Duration: 2025-06-01 to Present")
	assert.Contains(t, canvas.lines, "  Duration: 2025-02-01 to 2025-08-30")

	assert.Contains(t, canvas.lines, "Courses (2)")
	assert.Contains(t, canvas.lines, "CS301: Operating Systems: Grade: A")
	assert.Contains(t, canvas.lines, "CS302: Databases: Grade: N/A")

	assert.Contains(t, canvas.lines, "Attendance Summary")
	assert.Contains(t, canvas.lines, "Course: 2/4 (50.0%): N/A")

	assert.Contains(t, canvas.lines, "Assignments Summary (3)")
	assert.Contains(t, canvas.lines, "Completed: 0/3")

	assert.Contains(t, canvas.lines,
		"Generated on 8/31/2026 at 2:30:05 PM")
}

func TestWriteReportSkipsEmptySections(t *testing.T) {
	canvas := &recordingCanvas{}
	snap := &Snapshot{Profile: &models.Profile{Email: "jane@university.edu"}}

	writeReport(document.NewLayout(canvas), snap, time.Now())

	joined := ""
	for _, l := range canvas.lines {
		joined += l + "\n"
	}
	assert.Contains(t, joined, "Profile Information")
	assert.NotContains(t, joined, "Projects (")
	assert.NotContains(t, joined, "Internships (")
	assert.NotContains(t, joined, "Courses (")
	assert.NotContains(t, joined, "Attendance Summary")
	assert.NotContains(t, joined, "Assignments Summary")
}
