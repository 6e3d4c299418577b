package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/okandemir/studytrack/internal/app/models/dto"
	"github.com/okandemir/studytrack/internal/app/repositories"
)

// dashboardGPAScale is the scale the dashboard displays GPA against. The
// profile editor caps input at 4.0; the two never agreed and both are kept.
const dashboardGPAScale = 10.0

// DashboardService assembles the dashboard screen: the trigger-maintained
// analytics snapshot plus the profile. Missing rows are delivered as nil
// rather than errors, the dashboard renders placeholders for them.
type DashboardService struct {
	analytics *repositories.AnalyticsRepository
	profiles  *repositories.ProfileRepository
	logger    zerolog.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	analytics *repositories.AnalyticsRepository,
	profiles *repositories.ProfileRepository,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{analytics: analytics, profiles: profiles, logger: logger}
}

// Get returns the dashboard payload for one user
func (s *DashboardService) Get(ctx context.Context, userID int64) (*dto.DashboardResponse, error) {
	snapshot, err := s.analytics.GetSnapshot(ctx, userID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("userId", userID).Msg("Dashboard: snapshot fetch failed")
		snapshot = nil
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("userId", userID).Msg("Dashboard: profile fetch failed")
		profile = nil
	}

	return &dto.DashboardResponse{
		Snapshot: snapshot,
		Profile:  profile,
		GPAScale: dashboardGPAScale,
	}, nil
}
