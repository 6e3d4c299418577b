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

// AttendanceService handles attendance records. Each record marks one class
// session of one of the user's courses.
type AttendanceService struct {
	attendance *repositories.AttendanceRepository
	courses    *repositories.CourseRepository
	logger     zerolog.Logger
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(
	attendance *repositories.AttendanceRepository,
	courses *repositories.CourseRepository,
	logger zerolog.Logger,
) *AttendanceService {
	return &AttendanceService{attendance: attendance, courses: courses, logger: logger}
}

// List returns the user's attendance records, most recent session first
func (s *AttendanceService) List(ctx context.Context, userID int64) ([]models.AttendanceRecord, error) {
	return s.attendance.ListByUser(ctx, userID)
}

// Get returns one attendance record by id
func (s *AttendanceService) Get(ctx context.Context, id, userID int64) (*models.AttendanceRecord, error) {
	return s.attendance.GetByID(ctx, id, userID)
}

// Create validates the payload, checks course ownership and inserts
func (s *AttendanceService) Create(ctx context.Context, userID int64, req *dto.AttendanceRequest) (*models.AttendanceRecord, error) {
	record, err := s.attendanceFromRequest(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	if err := s.attendance.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("creating attendance record: %w", err)
	}
	return record, nil
}

// Update validates the payload and overwrites an existing record
func (s *AttendanceService) Update(ctx context.Context, id, userID int64, req *dto.AttendanceRequest) (*models.AttendanceRecord, error) {
	record, err := s.attendanceFromRequest(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	record.ID = id
	if err := s.attendance.Update(ctx, record); err != nil {
		return nil, err
	}
	return s.attendance.GetByID(ctx, id, userID)
}

// Delete removes an attendance record by id
func (s *AttendanceService) Delete(ctx context.Context, id, userID int64) error {
	return s.attendance.Delete(ctx, id, userID)
}

func (s *AttendanceService) attendanceFromRequest(ctx context.Context, userID int64, req *dto.AttendanceRequest) (*models.AttendanceRecord, error) {
	status := models.AttendanceStatus(req.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown attendance status %q", apperrors.ErrValidationFailed, req.Status)
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidationFailed)
	}

	if _, err := s.courses.GetByID(ctx, req.CourseID, userID); err != nil {
		return nil, err
	}

	return &models.AttendanceRecord{
		UserID:   userID,
		CourseID: req.CourseID,
		Date:     date,
		Status:   status,
	}, nil
}
