package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okandemir/studytrack/internal/app/models"
)

// AnalyticsRepository reads the precomputed analytics snapshot. The row is
// maintained by database triggers; this repository never writes it.
type AnalyticsRepository struct {
	db *pgxpool.Pool
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// GetSnapshot retrieves the snapshot row for userID, nil when none exists yet
func (r *AnalyticsRepository) GetSnapshot(ctx context.Context, userID int64) (*models.AnalyticsSnapshot, error) {
	query := `
		SELECT id, user_id, total_projects, completed_projects, total_internships,
			current_gpa, total_assignments, completed_assignments, avg_attendance,
			productivity_score, last_updated
		FROM analytics
		WHERE user_id = $1
	`

	var s models.AnalyticsSnapshot
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&s.ID,
		&s.UserID,
		&s.TotalProjects,
		&s.CompletedProjects,
		&s.TotalInternships,
		&s.CurrentGPA,
		&s.TotalAssignments,
		&s.CompletedAssignments,
		&s.AvgAttendance,
		&s.ProductivityScore,
		&s.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving analytics snapshot: %w", err)
	}

	return &s, nil
}
