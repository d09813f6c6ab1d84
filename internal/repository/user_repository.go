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

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Insert(ctx context.Context, user models.NewUser) (int64, error) {
	query := r.db.Rebind(`
		INSERT INTO users (email, name, phone, location)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (email) DO NOTHING
		RETURNING id
	`)

	var id int64
	err := r.db.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &id, query, user.Email, user.Name, nullable(user.Phone), nullable(user.Location))
		if errors.Is(err, sql.ErrNoRows) {
			// conflict: the row already exists and nothing was written
			id = 0
			return nil
		}
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}

	return id, nil
}
