package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/okandemir/studytrack/internal/app/models"
	"github.com/okandemir/studytrack/internal/pkg/apperrors"
	"github.com/okandemir/studytrack/internal/pkg/document"
	"github.com/okandemir/studytrack/internal/pkg/helpers"
)

// Snapshot is the unified export payload. Field order here is the key order
// of the JSON export, so it must not be reordered.
type Snapshot struct {
	Profile     *models.Profile           `json:"profile"`
	Projects    []models.Project          `json:"projects"`
	Internships []models.Internship       `json:"internships"`
	Courses     []models.Course           `json:"courses"`
	Assignments []models.Assignment       `json:"assignments"`
	Attendance  []models.AttendanceRecord `json:"attendance"`
}

// ExportService fetches a full snapshot of a student's data and renders it
// as a downloadable JSON or PDF file. Unlike analytics, a failed fetch here
// aborts the whole export; a partial document is never produced.
type ExportService struct {
	store  RecordStore
	logger zerolog.Logger
	now    func() time.Time
}

// NewExportService creates a new export service
func NewExportService(store RecordStore, logger zerolog.Logger) *ExportService {
	return &ExportService{store: store, logger: logger, now: time.Now}
}

// FetchSnapshot issues the six owner-scoped fetches concurrently and joins
// them into one snapshot. The first error encountered aborts the export.
func (s *ExportService) FetchSnapshot(ctx context.Context, userID int64) (*Snapshot, error) {
	var snap Snapshot
	var errs [6]error
	var wg sync.WaitGroup
	wg.Add(6)

	go func() {
		defer wg.Done()
		snap.Profile, errs[0] = s.store.Profile(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		snap.Projects, errs[1] = s.store.Projects(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		snap.Internships, errs[2] = s.store.Internships(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		snap.Courses, errs[3] = s.store.Courses(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		snap.Assignments, errs[4] = s.store.Assignments(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		snap.Attendance, errs[5] = s.store.Attendance(ctx, userID)
	}()

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			s.logger.Error().Err(err).Int64("userId", userID).Msg("Export snapshot fetch failed")
			return nil, fmt.Errorf("%w: %v", apperrors.ErrSnapshotFetchFailed, err)
		}
	}

	if snap.Projects == nil {
		snap.Projects = []models.Project{}
	}
	if snap.Internships == nil {
		snap.Internships = []models.Internship{}
	}
	if snap.Courses == nil {
		snap.Courses = []models.Course{}
	}
	if snap.Assignments == nil {
		snap.Assignments = []models.Assignment{}
	}
	if snap.Attendance == nil {
		snap.Attendance = []models.AttendanceRecord{}
	}

	return &snap, nil
}

// ExportJSON serializes the snapshot verbatim and returns the download
// filename alongside the file body.
func (s *ExportService) ExportJSON(ctx context.Context, userID int64) (string, []byte, error) {
	snap, err := s.FetchSnapshot(ctx, userID)
	if err != nil {
		return "", nil, err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", apperrors.ErrRenderFailed, err)
	}

	return fmt.Sprintf("student-data-%d.json", s.now().UnixMilli()), data, nil
}

// ExportPDF renders the snapshot as a paginated report and returns the
// download filename alongside the file body.
func (s *ExportService) ExportPDF(ctx context.Context, userID int64) (string, []byte, error) {
	snap, err := s.FetchSnapshot(ctx, userID)
	if err != nil {
		return "", nil, err
	}

	now := s.now()
	canvas := document.NewPDFCanvas()
	writeReport(document.NewLayout(canvas), snap, now)

	var buf bytes.Buffer
	if err := canvas.Output(&buf); err != nil {
		s.logger.Error().Err(err).Int64("userId", userID).Msg("PDF rendering failed")
		return "", nil, fmt.Errorf("%w: %v", apperrors.ErrRenderFailed, err)
	}

	return fmt.Sprintf("student-data-%d.pdf", now.UnixMilli()), buf.Bytes(), nil
}

// writeReport drives the layout through the report sections. Entry headers
// go through KeyValue with an empty value, so they carry the same trailing
// "N/A" the web export produced; the format is kept byte-compatible.
func writeReport(l *document.Layout, snap *Snapshot, now time.Time) {
	l.Title("Student Dashboard Export")

	l.Section("Profile Information")
	if p := snap.Profile; p != nil {
		l.KeyValue("Name", strPtr(p.FullName))
		l.KeyValue("Email", p.Email)
		l.KeyValue("Major", strPtr(p.Major))
		l.KeyValue("GPA", floatPtr(p.GPA))
		l.KeyValue("Graduation Date", helpers.FormatDate(p.GraduationDate))
		l.KeyValue("Location", strPtr(p.Location))
		l.KeyValue("Phone", strPtr(p.Phone))
		if len(p.Skills) > 0 {
			l.KeyValue("Skills", strings.Join(p.Skills, ", "))
		}
	}

	if len(snap.Projects) > 0 {
		l.Section(fmt.Sprintf("Projects (%d)", len(snap.Projects)))
		for i, p := range snap.Projects {
			l.KeyValue(fmt.Sprintf("Project %d: %s", i+1, p.Title), "")
			l.Gap(2)
			if p.Description != nil && *p.Description != "" {
				l.Wrapped(*p.Description)
			}
			if len(p.Technologies) > 0 {
				l.KeyValue("  Technologies", strings.Join(p.Technologies, ", "))
			}
			l.Gap(3)
		}
	}

	if len(snap.Internships) > 0 {
		l.Section(fmt.Sprintf("Internships (%d)", len(snap.Internships)))
		for i, in := range snap.Internships {
			l.KeyValue(fmt.Sprintf("Internship %d: %s at %s", i+1, in.Position, in.CompanyName), "")
			l.Gap(2)
			end := "Present"
			if in.EndDate != nil {
				end = helpers.FormatDate(in.EndDate)
			}
			start := in.StartDate
			l.KeyValue("  Duration", fmt.Sprintf("%s to %s", helpers.FormatDate(&start), end))
			if len(in.SkillsLearned) > 0 {
				l.KeyValue("  Skills Learned", strings.Join(in.SkillsLearned, ", "))
			}
			l.Gap(3)
		}
	}

	if len(snap.Courses) > 0 {
		l.Section(fmt.Sprintf("Courses (%d)", len(snap.Courses)))
		for _, c := range snap.Courses {
			grade := "N/A"
			if c.Grade != nil && *c.Grade != "" {
				grade = *c.Grade
			}
			l.KeyValue(fmt.Sprintf("%s: %s", c.CourseCode, c.CourseName), "Grade: "+grade)
		}
	}

	if len(snap.Attendance) > 0 {
		l.Section("Attendance Summary")
		type stats struct{ total, present int }
		perCourse := make(map[int64]*stats)
		for _, r := range snap.Attendance {
			st, ok := perCourse[r.CourseID]
			if !ok {
				st = &stats{}
				perCourse[r.CourseID] = st
			}
			st.total++
			if r.Status == models.AttendancePresent {
				st.present++
			}
		}
		ids := make([]int64, 0, len(perCourse))
		for id := range perCourse {
			ids = append(ids, id)
		}
		slices.Sort(ids)
		for _, id := range ids {
			st := perCourse[id]
			pct := strconv.FormatFloat(float64(st.present)/float64(st.total)*100, 'f', 1, 64)
			l.KeyValue(fmt.Sprintf("Course: %d/%d (%s%%)", st.present, st.total, pct), "")
		}
	}

	if len(snap.Assignments) > 0 {
		l.Section(fmt.Sprintf("Assignments Summary (%d)", len(snap.Assignments)))
		completed := 0
		for _, a := range snap.Assignments {
			if string(a.Status) == completedStatus {
				completed++
			}
		}
		l.KeyValue("Completed", fmt.Sprintf("%d/%d", completed, len(snap.Assignments)))
	}

	l.Footer(fmt.Sprintf("Generated on %s at %s", now.Format("1/2/2006"), now.Format("3:04:05 PM")))
}

func strPtr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatPtr(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'g', -1, 64)
}
