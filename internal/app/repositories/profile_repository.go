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

// ProfileRepository handles database operations for student profiles
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `
	id, user_id, email, full_name, bio, profile_image_url, phone, location,
	gpa, graduation_date, major, skills, created_at, updated_at
`

func scanProfile(row pgx.Row) (*models.Profile, error) {
	var p models.Profile
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Email,
		&p.FullName,
		&p.Bio,
		&p.ProfileImageURL,
		&p.Phone,
		&p.Location,
		&p.GPA,
		&p.GraduationDate,
		&p.Major,
		&p.Skills,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	return &p, nil
}

// Create inserts the initial (empty) profile row for a new account
func (r *ProfileRepository) Create(ctx context.Context, userID int64, email string) error {
	query := `
		INSERT INTO profiles (user_id, email, skills)
		VALUES ($1, $2, '{}')
	`

	_, err := r.db.Exec(ctx, query, userID, email)
	if err != nil {
		return fmt.Errorf("error creating profile: %w", err)
	}
	return nil
}

// GetByUserID retrieves the profile owned by userID
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`

	profile, err := scanProfile(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}

	return profile, nil
}

// Upsert writes the editable profile fields, creating the row if missing
func (r *ProfileRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	query := `
		INSERT INTO profiles (user_id, email, full_name, bio, phone, location,
			gpa, graduation_date, major, skills)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			bio = EXCLUDED.bio,
			phone = EXCLUDED.phone,
			location = EXCLUDED.location,
			gpa = EXCLUDED.gpa,
			graduation_date = EXCLUDED.graduation_date,
			major = EXCLUDED.major,
			skills = EXCLUDED.skills,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		profile.UserID, profile.Email, profile.FullName, profile.Bio,
		profile.Phone, profile.Location, profile.GPA, profile.GraduationDate,
		profile.Major, profile.Skills,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error upserting profile: %w", err)
	}

	return nil
}
