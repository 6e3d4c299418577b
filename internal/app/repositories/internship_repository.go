package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/okandemir/studytrack/internal/app/models"
	"github.com/okandemir/studytrack/internal/pkg/apperrors"
)

// InternshipRepository handles database operations for internships
type InternshipRepository struct {
	db *pgxpool.Pool
}

// NewInternshipRepository creates a new internship repository
func NewInternshipRepository(db *pgxpool.Pool) *InternshipRepository {
	return &InternshipRepository{db: db}
}

const internshipColumns = `
	id, user_id, company_name, position, description, start_date, end_date,
	is_ongoing, location, skills_learned, created_at, updated_at
`

func scanInternship(row pgx.Row) (*models.Internship, error) {
	var i models.Internship
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.CompanyName,
		&i.Position,
		&i.Description,
		&i.StartDate,
		&i.EndDate,
		&i.IsOngoing,
		&i.Location,
		&i.SkillsLearned,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if i.SkillsLearned == nil {
		i.SkillsLearned = []string{}
	}
	return &i, nil
}

// Create inserts a new internship
func (r *InternshipRepository) Create(ctx context.Context, internship *models.Internship) error {
	query := `
		INSERT INTO internships (user_id, company_name, position, description,
			start_date, end_date, is_ongoing, location, skills_learned)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		internship.UserID, internship.CompanyName, internship.Position,
		internship.Description, internship.StartDate, internship.EndDate,
		internship.IsOngoing, internship.Location, internship.SkillsLearned,
	).Scan(&internship.ID, &internship.CreatedAt, &internship.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating internship: %w", err)
	}

	return nil
}

// GetByID retrieves an internship owned by userID
func (r *InternshipRepository) GetByID(ctx context.Context, id, userID int64) (*models.Internship, error) {
	query := `SELECT ` + internshipColumns + ` FROM internships WHERE id = $1 AND user_id = $2`

	internship, err := scanInternship(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInternshipNotFound
		}
		return nil, fmt.Errorf("error retrieving internship: %w", err)
	}

	return internship, nil
}

// ListByUser retrieves all internships owned by userID, latest start first
func (r *InternshipRepository) ListByUser(ctx context.Context, userID int64) ([]models.Internship, error) {
	query := `SELECT ` + internshipColumns + ` FROM internships WHERE user_id = $1 ORDER BY start_date DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing internships: %w", err)
	}
	defer rows.Close()

	var internships []models.Internship
	for rows.Next() {
		internship, err := scanInternship(rows)
		if err != nil {
			return nil, err
		}
		internships = append(internships, *internship)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return internships, nil
}

// Update rewrites the editable fields of an internship owned by userID
func (r *InternshipRepository) Update(ctx context.Context, internship *models.Internship) error {
	query := `
		UPDATE internships
		SET company_name = $1, position = $2, description = $3, start_date = $4,
			end_date = $5, is_ongoing = $6, location = $7, skills_learned = $8,
			updated_at = NOW()
		WHERE id = $9 AND user_id = $10
	`

	cmdTag, err := r.db.Exec(ctx, query,
		internship.CompanyName, internship.Position, internship.Description,
		internship.StartDate, internship.EndDate, internship.IsOngoing,
		internship.Location, internship.SkillsLearned,
		internship.ID, internship.UserID,
	)
	if err != nil {
		return fmt.Errorf("error updating internship: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInternshipNotFound
	}

	return nil
}

// Delete removes an internship owned by userID
func (r *InternshipRepository) Delete(ctx context.Context, id, userID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM internships WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("error deleting internship: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInternshipNotFound
	}
	return nil
}
