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

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

const attendanceColumns = `id, user_id, course_id, date, status, created_at`

func scanAttendance(row pgx.Row) (*models.AttendanceRecord, error) {
	var a models.AttendanceRecord
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.CourseID,
		&a.Date,
		&a.Status,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new attendance record
func (r *AttendanceRepository) Create(ctx context.Context, record *models.AttendanceRecord) error {
	query := `
		INSERT INTO attendance (user_id, course_id, date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		record.UserID, record.CourseID, record.Date, record.Status,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating attendance record: %w", err)
	}

	return nil
}

// GetByID retrieves an attendance record owned by userID
func (r *AttendanceRepository) GetByID(ctx context.Context, id, userID int64) (*models.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE id = $1 AND user_id = $2`

	record, err := scanAttendance(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("error retrieving attendance record: %w", err)
	}

	return record, nil
}

// ListByUser retrieves all attendance records owned by userID, newest first
func (r *AttendanceRepository) ListByUser(ctx context.Context, userID int64) ([]models.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE user_id = $1 ORDER BY date DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing attendance records: %w", err)
	}
	defer rows.Close()

	var records []models.AttendanceRecord
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Update rewrites an attendance record owned by userID
func (r *AttendanceRepository) Update(ctx context.Context, record *models.AttendanceRecord) error {
	query := `
		UPDATE attendance
		SET course_id = $1, date = $2, status = $3
		WHERE id = $4 AND user_id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		record.CourseID, record.Date, record.Status, record.ID, record.UserID,
	)
	if err != nil {
		return fmt.Errorf("error updating attendance record: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAttendanceNotFound
	}

	return nil
}

// Delete removes an attendance record owned by userID
func (r *AttendanceRepository) Delete(ctx context.Context, id, userID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM attendance WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("error deleting attendance record: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAttendanceNotFound
	}
	return nil
}
