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

// ProjectService handles project CRUD
type ProjectService struct {
	projects *repositories.ProjectRepository
	logger   zerolog.Logger
}

// NewProjectService creates a new project service
func NewProjectService(projects *repositories.ProjectRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, logger: logger}
}

// List returns the user's projects, newest first
func (s *ProjectService) List(ctx context.Context, userID int64) ([]models.Project, error) {
	return s.projects.ListByUser(ctx, userID)
}

// Get returns one project by id
func (s *ProjectService) Get(ctx context.Context, id, userID int64) (*models.Project, error) {
	return s.projects.GetByID(ctx, id, userID)
}

// Create validates the payload and inserts a new project
func (s *ProjectService) Create(ctx context.Context, userID int64, req *dto.ProjectRequest) (*models.Project, error) {
	project, err := projectFromRequest(userID, req)
	if err != nil {
		return nil, err
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}
	s.logger.Debug().Int64("userId", userID).Int64("projectId", project.ID).Msg("Project created")
	return project, nil
}

// Update validates the payload and overwrites an existing project
func (s *ProjectService) Update(ctx context.Context, id, userID int64, req *dto.ProjectRequest) (*models.Project, error) {
	project, err := projectFromRequest(userID, req)
	if err != nil {
		return nil, err
	}
	project.ID = id
	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return s.projects.GetByID(ctx, id, userID)
}

// Delete removes a project by id
func (s *ProjectService) Delete(ctx context.Context, id, userID int64) error {
	return s.projects.Delete(ctx, id, userID)
}

func projectFromRequest(userID int64, req *dto.ProjectRequest) (*models.Project, error) {
	status := models.ProjectStatus(req.Status)
	if req.Status == "" {
		status = models.ProjectOngoing
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown project status %q", apperrors.ErrValidationFailed, req.Status)
	}

	startDate, err := parseOptionalDate(req.StartDate, "startDate")
	if err != nil {
		return nil, err
	}
	endDate, err := parseOptionalDate(req.EndDate, "endDate")
	if err != nil {
		return nil, err
	}

	technologies := req.Technologies
	if technologies == nil {
		technologies = []string{}
	}

	return &models.Project{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		Technologies: technologies,
		GithubLink:   req.GithubLink,
		LiveLink:     req.LiveLink,
		StartDate:    startDate,
		EndDate:      endDate,
		Status:       status,
	}, nil
}

func parseOptionalDate(s *string, field string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be YYYY-MM-DD", apperrors.ErrValidationFailed, field)
	}
	return &t, nil
}
