package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/okandemir/studytrack/internal/app/models"
	"github.com/okandemir/studytrack/internal/app/models/dto"
	"github.com/okandemir/studytrack/internal/app/repositories"
	"github.com/okandemir/studytrack/internal/pkg/apperrors"
)

// CourseService handles course CRUD, always scoped to the owner
type CourseService struct {
	courses *repositories.CourseRepository
	logger  zerolog.Logger
}

// NewCourseService creates a new course service
func NewCourseService(courses *repositories.CourseRepository, logger zerolog.Logger) *CourseService {
	return &CourseService{courses: courses, logger: logger}
}

// List returns the user's courses, newest first
func (s *CourseService) List(ctx context.Context, userID int64) ([]models.Course, error) {
	return s.courses.ListByUser(ctx, userID)
}

// Get returns one course by id
func (s *CourseService) Get(ctx context.Context, id, userID int64) (*models.Course, error) {
	return s.courses.GetByID(ctx, id, userID)
}

// Create validates the payload and inserts a new course
func (s *CourseService) Create(ctx context.Context, userID int64, req *dto.CourseRequest) (*models.Course, error) {
	course, err := courseFromRequest(userID, req)
	if err != nil {
		return nil, err
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("creating course: %w", err)
	}
	s.logger.Debug().Int64("userId", userID).Int64("courseId", course.ID).Msg("Course created")
	return course, nil
}

// Update validates the payload and overwrites an existing course
func (s *CourseService) Update(ctx context.Context, id, userID int64, req *dto.CourseRequest) (*models.Course, error) {
	course, err := courseFromRequest(userID, req)
	if err != nil {
		return nil, err
	}
	course.ID = id
	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}
	return s.courses.GetByID(ctx, id, userID)
}

// Delete removes a course by id
func (s *CourseService) Delete(ctx context.Context, id, userID int64) error {
	return s.courses.Delete(ctx, id, userID)
}

func courseFromRequest(userID int64, req *dto.CourseRequest) (*models.Course, error) {
	status := models.CourseStatus(req.Status)
	if req.Status == "" {
		status = models.CourseEnrolled
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown course status %q", apperrors.ErrValidationFailed, req.Status)
	}
	return &models.Course{
		UserID:     userID,
		CourseCode: req.CourseCode,
		CourseName: req.CourseName,
		Credits:    req.Credits,
		Grade:      req.Grade,
		Semester:   req.Semester,
		Instructor: req.Instructor,
		Status:     status,
	}, nil
}
