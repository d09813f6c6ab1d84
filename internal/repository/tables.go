package repository

import (
	"context"

	"womenhub/internal/database"
	"womenhub/internal/models"
)

type tablesRepository struct {
	db *database.DB
}

func NewTablesRepository(db *database.DB) TablesRepository {
	return &tablesRepository{db: db}
}

func (r *tablesRepository) ListTables(ctx context.Context) ([]string, error) {
	return r.db.ListTables(ctx)
}

func (r *tablesRepository) InitSchema(ctx context.Context) ([]models.TableStatus, error) {
	return r.db.InitSchema(ctx)
}

func (r *tablesRepository) Ping(ctx context.Context) error {
	return r.db.HealthCheck(ctx)
}
