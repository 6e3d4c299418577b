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

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

const courseColumns = `
	id, user_id, course_code, course_name, credits, grade, semester,
	instructor, status, created_at, updated_at
`

func scanCourse(row pgx.Row) (*models.Course, error) {
	var c models.Course
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.CourseCode,
		&c.CourseName,
		&c.Credits,
		&c.Grade,
		&c.Semester,
		&c.Instructor,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (user_id, course_code, course_name, credits, grade,
			semester, instructor, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		course.UserID, course.CourseCode, course.CourseName, course.Credits,
		course.Grade, course.Semester, course.Instructor, course.Status,
	).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course owned by userID
func (r *CourseRepository) GetByID(ctx context.Context, id, userID int64) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1 AND user_id = $2`

	course, err := scanCourse(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// ListByUser retrieves all courses owned by userID, newest first
func (r *CourseRepository) ListByUser(ctx context.Context, userID int64) ([]models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, *course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Update rewrites the editable fields of a course owned by userID
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET course_code = $1, course_name = $2, credits = $3, grade = $4,
			semester = $5, instructor = $6, status = $7, updated_at = NOW()
		WHERE id = $8 AND user_id = $9
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.CourseCode, course.CourseName, course.Credits, course.Grade,
		course.Semester, course.Instructor, course.Status,
		course.ID, course.UserID,
	)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course owned by userID
func (r *CourseRepository) Delete(ctx context.Context, id, userID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}
