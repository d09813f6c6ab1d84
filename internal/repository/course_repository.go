package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"womenhub/internal/database"
	"womenhub/internal/models"
)

const courseColumns = `id, title,
	COALESCE(category, '') AS category,
	COALESCE(level, '') AS level,
	COALESCE(duration, '') AS duration,
	COALESCE(description, '') AS description,
	COALESCE(instructor, '') AS instructor,
	COALESCE(price, 0) AS price,
	is_free,
	COALESCE(enrollment_count, 0) AS enrollment_count,
	COALESCE(rating, 0) AS rating,
	created_at`

type courseRepository struct {
	db *database.DB
}

func NewCourseRepository(db *database.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Insert(ctx context.Context, course models.NewCourse) (int64, error) {
	query := r.db.Rebind(`
		INSERT INTO courses (title, category, level, duration, description, instructor, price, is_free)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`)

	var id int64
	err := r.db.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		return tx.GetContext(ctx, &id, query,
			course.Title,
			nullable(course.Category),
			nullable(course.Level),
			nullable(course.Duration),
			nullable(course.Description),
			nullable(course.Instructor),
			course.Price,
			course.IsFree,
		)
	})
	if err != nil {
		return 0, fmt.Errorf("insert course: %w", err)
	}

	return id, nil
}

// List returns every course, newest first. An empty category means no filter.
func (r *courseRepository) List(ctx context.Context, category string) ([]models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses`
	var args []any
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query = r.db.Rebind(query + ` ORDER BY created_at DESC, id DESC`)

	courses := []models.Course{}
	err := r.db.WithConn(ctx, func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &courses, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	return courses, nil
}
