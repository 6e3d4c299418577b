package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/okandemir/studytrack/internal/app/models"
	"github.com/okandemir/studytrack/internal/app/models/dto"
	"github.com/okandemir/studytrack/internal/app/repositories"
	"github.com/okandemir/studytrack/internal/pkg/apperrors"
)

// AssignmentService handles assignment CRUD. Every assignment belongs to
// one of the user's courses; the link is checked on create and update.
type AssignmentService struct {
	assignments *repositories.AssignmentRepository
	courses     *repositories.CourseRepository
	logger      zerolog.Logger
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(
	assignments *repositories.AssignmentRepository,
	courses *repositories.CourseRepository,
	logger zerolog.Logger,
) *AssignmentService {
	return &AssignmentService{assignments: assignments, courses: courses, logger: logger}
}

// List returns the user's assignments ordered by due date
func (s *AssignmentService) List(ctx context.Context, userID int64) ([]models.Assignment, error) {
	return s.assignments.ListByUser(ctx, userID)
}

// Get returns one assignment by id
func (s *AssignmentService) Get(ctx context.Context, id, userID int64) (*models.Assignment, error) {
	return s.assignments.GetByID(ctx, id, userID)
}

// Create validates the payload, checks course ownership and inserts
func (s *AssignmentService) Create(ctx context.Context, userID int64, req *dto.AssignmentRequest) (*models.Assignment, error) {
	assignment, err := s.assignmentFromRequest(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	if err := s.assignments.Create(ctx, assignment); err != nil {
		return nil, fmt.Errorf("creating assignment: %w", err)
	}
	s.logger.Debug().Int64("userId", userID).Int64("assignmentId", assignment.ID).Msg("Assignment created")
	return assignment, nil
}

// Update validates the payload and overwrites an existing assignment
func (s *AssignmentService) Update(ctx context.Context, id, userID int64, req *dto.AssignmentRequest) (*models.Assignment, error) {
	assignment, err := s.assignmentFromRequest(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	assignment.ID = id
	if err := s.assignments.Update(ctx, assignment); err != nil {
		return nil, err
	}
	return s.assignments.GetByID(ctx, id, userID)
}

// Delete removes an assignment by id
func (s *AssignmentService) Delete(ctx context.Context, id, userID int64) error {
	return s.assignments.Delete(ctx, id, userID)
}

func (s *AssignmentService) assignmentFromRequest(ctx context.Context, userID int64, req *dto.AssignmentRequest) (*models.Assignment, error) {
	status := models.AssignmentStatus(req.Status)
	if req.Status == "" {
		status = models.AssignmentPending
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown assignment status %q", apperrors.ErrValidationFailed, req.Status)
	}

	dueDate, err := time.Parse(dateLayout, req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: dueDate must be YYYY-MM-DD", apperrors.ErrValidationFailed)
	}

	var submissionDate *time.Time
	if req.SubmissionDate != nil && *req.SubmissionDate != "" {
		t, err := time.Parse(dateLayout, *req.SubmissionDate)
		if err != nil {
			return nil, fmt.Errorf("%w: submissionDate must be YYYY-MM-DD", apperrors.ErrValidationFailed)
		}
		submissionDate = &t
	}

	// The course must exist and belong to the same user.
	if _, err := s.courses.GetByID(ctx, req.CourseID, userID); err != nil {
		return nil, err
	}

	return &models.Assignment{
		UserID:         userID,
		CourseID:       req.CourseID,
		Title:          req.Title,
		Description:    req.Description,
		DueDate:        dueDate,
		SubmissionDate: submissionDate,
		Grade:          req.Grade,
		Status:         status,
	}, nil
}
