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

// InternshipService handles internship CRUD
type InternshipService struct {
	internships *repositories.InternshipRepository
	logger      zerolog.Logger
}

// NewInternshipService creates a new internship service
func NewInternshipService(internships *repositories.InternshipRepository, logger zerolog.Logger) *InternshipService {
	return &InternshipService{internships: internships, logger: logger}
}

// List returns the user's internships, most recent start first
func (s *InternshipService) List(ctx context.Context, userID int64) ([]models.Internship, error) {
	return s.internships.ListByUser(ctx, userID)
}

// Get returns one internship by id
func (s *InternshipService) Get(ctx context.Context, id, userID int64) (*models.Internship, error) {
	return s.internships.GetByID(ctx, id, userID)
}

// Create validates the payload and inserts a new internship
func (s *InternshipService) Create(ctx context.Context, userID int64, req *dto.InternshipRequest) (*models.Internship, error) {
	internship, err := internshipFromRequest(userID, req)
	if err != nil {
		return nil, err
	}
	if err := s.internships.Create(ctx, internship); err != nil {
		return nil, fmt.Errorf("creating internship: %w", err)
	}
	s.logger.Debug().Int64("userId", userID).Int64("internshipId", internship.ID).Msg("Internship created")
	return internship, nil
}

// Update validates the payload and overwrites an existing internship
func (s *InternshipService) Update(ctx context.Context, id, userID int64, req *dto.InternshipRequest) (*models.Internship, error) {
	internship, err := internshipFromRequest(userID, req)
	if err != nil {
		return nil, err
	}
	internship.ID = id
	if err := s.internships.Update(ctx, internship); err != nil {
		return nil, err
	}
	return s.internships.GetByID(ctx, id, userID)
}

// Delete removes an internship by id
func (s *InternshipService) Delete(ctx context.Context, id, userID int64) error {
	return s.internships.Delete(ctx, id, userID)
}

func internshipFromRequest(userID int64, req *dto.InternshipRequest) (*models.Internship, error) {
	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: startDate must be YYYY-MM-DD", apperrors.ErrValidationFailed)
	}

	// An ongoing internship carries no end date.
	var endDate *time.Time
	if !req.IsOngoing {
		endDate, err = parseOptionalDate(req.EndDate, "endDate")
		if err != nil {
			return nil, err
		}
	}

	skills := req.SkillsLearned
	if skills == nil {
		skills = []string{}
	}

	return &models.Internship{
		UserID:        userID,
		CompanyName:   req.CompanyName,
		Position:      req.Position,
		Description:   req.Description,
		StartDate:     startDate,
		EndDate:       endDate,
		IsOngoing:     req.IsOngoing,
		Location:      req.Location,
		SkillsLearned: skills,
	}, nil
}
