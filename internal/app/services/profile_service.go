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

// maxProfileGPA is the cap the profile editor enforces. The dashboard
// independently labels GPA "out of 10.0"; both behaviors are kept.
const maxProfileGPA = 4.0

// ProfileService reads and upserts the per-user profile row
type ProfileService struct {
	profiles *repositories.ProfileRepository
	logger   zerolog.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(profiles *repositories.ProfileRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{profiles: profiles, logger: logger}
}

// Get returns the current user's profile
func (s *ProfileService) Get(ctx context.Context, userID int64) (*models.Profile, error) {
	return s.profiles.GetByUserID(ctx, userID)
}

// Update validates and upserts the profile. Email is never changed here; it
// belongs to the account.
func (s *ProfileService) Update(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	if req.GPA != nil && (*req.GPA < 0 || *req.GPA > maxProfileGPA) {
		return nil, fmt.Errorf("%w: gpa must be between 0 and %.1f", apperrors.ErrValidationFailed, maxProfileGPA)
	}

	var gradDate *time.Time
	if req.GraduationDate != nil && *req.GraduationDate != "" {
		t, err := time.Parse(dateLayout, *req.GraduationDate)
		if err != nil {
			return nil, fmt.Errorf("%w: graduationDate must be YYYY-MM-DD", apperrors.ErrValidationFailed)
		}
		gradDate = &t
	}

	current, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}

	profile := &models.Profile{
		UserID:         userID,
		Email:          current.Email,
		FullName:       req.FullName,
		Bio:            req.Bio,
		Phone:          req.Phone,
		Location:       req.Location,
		GPA:            req.GPA,
		GraduationDate: gradDate,
		Major:          req.Major,
		Skills:         skills,
	}
	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("upserting profile: %w", err)
	}

	s.logger.Debug().Int64("userId", userID).Msg("Profile updated")
	return s.profiles.GetByUserID(ctx, userID)
}
