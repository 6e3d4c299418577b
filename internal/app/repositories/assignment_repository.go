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

// AssignmentRepository handles database operations for assignments
type AssignmentRepository struct {
	db *pgxpool.Pool
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

const assignmentColumns = `
	id, user_id, course_id, title, description, due_date, submission_date,
	grade, status, created_at, updated_at
`

func scanAssignment(row pgx.Row) (*models.Assignment, error) {
	var a models.Assignment
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.CourseID,
		&a.Title,
		&a.Description,
		&a.DueDate,
		&a.SubmissionDate,
		&a.Grade,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new assignment
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	query := `
		INSERT INTO assignments (user_id, course_id, title, description,
			due_date, submission_date, grade, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		assignment.UserID, assignment.CourseID, assignment.Title,
		assignment.Description, assignment.DueDate, assignment.SubmissionDate,
		assignment.Grade, assignment.Status,
	).Scan(&assignment.ID, &assignment.CreatedAt, &assignment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating assignment: %w", err)
	}

	return nil
}

// GetByID retrieves an assignment owned by userID
func (r *AssignmentRepository) GetByID(ctx context.Context, id, userID int64) (*models.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = $1 AND user_id = $2`

	assignment, err := scanAssignment(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("error retrieving assignment: %w", err)
	}

	return assignment, nil
}

// ListByUser retrieves all assignments owned by userID, earliest due first
func (r *AssignmentRepository) ListByUser(ctx context.Context, userID int64) ([]models.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE user_id = $1 ORDER BY due_date ASC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing assignments: %w", err)
	}
	defer rows.Close()

	var assignments []models.Assignment
	for rows.Next() {
		assignment, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, *assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

// Update rewrites the editable fields of an assignment owned by userID
func (r *AssignmentRepository) Update(ctx context.Context, assignment *models.Assignment) error {
	query := `
		UPDATE assignments
		SET course_id = $1, title = $2, description = $3, due_date = $4,
			submission_date = $5, grade = $6, status = $7, updated_at = NOW()
		WHERE id = $8 AND user_id = $9
	`

	cmdTag, err := r.db.Exec(ctx, query,
		assignment.CourseID, assignment.Title, assignment.Description,
		assignment.DueDate, assignment.SubmissionDate, assignment.Grade,
		assignment.Status, assignment.ID, assignment.UserID,
	)
	if err != nil {
		return fmt.Errorf("error updating assignment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}

	return nil
}

// Delete removes an assignment owned by userID
func (r *AssignmentRepository) Delete(ctx context.Context, id, userID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM assignments WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("error deleting assignment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}
	return nil
}
