package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"womenhub/internal/database"
	"womenhub/internal/models"
)

type legalRepository struct {
	db *database.DB
}

func NewLegalRepository(db *database.DB) LegalRepository {
	return &legalRepository{db: db}
}

func (r *legalRepository) List(ctx context.Context, category string) ([]models.LegalRight, error) {
	query := `SELECT id, title,
			COALESCE(category, '') AS category,
			COALESCE(description, '') AS description,
			COALESCE(country, '') AS country,
			COALESCE(law_reference, '') AS law_reference,
			created_at
		FROM legal_rights`
	var args []any
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query = r.db.Rebind(query + ` ORDER BY id`)

	rights := []models.LegalRight{}
	err := r.db.WithConn(ctx, func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &rights, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("list legal rights: %w", err)
	}

	return rights, nil
}
