package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"womenhub/internal/database"
	"womenhub/internal/models"
)

type mentorRepository struct {
	db *database.DB
}

func NewMentorRepository(db *database.DB) MentorRepository {
	return &mentorRepository{db: db}
}

// Insert adds a mentor profile. Like users, mentors are unique by email and a
// repeated email is a no-op returning 0.
func (r *mentorRepository) Insert(ctx context.Context, m models.Mentor) (int64, error) {
	query := r.db.Rebind(`
		INSERT INTO mentors (name, email, expertise, bio, linkedin_url, available_slots, rating, total_mentees)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (email) DO NOTHING
		RETURNING id
	`)

	var id int64
	err := r.db.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &id, query,
			m.Name,
			m.Email,
			nullable(m.Expertise),
			nullable(m.Bio),
			nullable(m.LinkedInURL),
			m.AvailableSlots,
			m.Rating,
			m.TotalMentees,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("insert mentor: %w", err)
	}

	return id, nil
}

// List returns mentors ordered by rating. A non-empty expertise filters by a
// case-insensitive substring match.
func (r *mentorRepository) List(ctx context.Context, expertise string) ([]models.Mentor, error) {
	query := `SELECT id, name, email,
			COALESCE(expertise, '') AS expertise,
			COALESCE(bio, '') AS bio,
			COALESCE(linkedin_url, '') AS linkedin_url,
			COALESCE(available_slots, 0) AS available_slots,
			COALESCE(rating, 0) AS rating,
			COALESCE(total_mentees, 0) AS total_mentees,
			created_at
		FROM mentors`
	var args []any
	if expertise != "" {
		query += ` WHERE LOWER(expertise) LIKE LOWER(?)`
		args = append(args, "%"+expertise+"%")
	}
	query = r.db.Rebind(query + ` ORDER BY rating DESC, id ASC`)

	mentors := []models.Mentor{}
	err := r.db.WithConn(ctx, func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &mentors, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("list mentors: %w", err)
	}

	return mentors, nil
}
