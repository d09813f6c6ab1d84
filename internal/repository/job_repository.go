package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"womenhub/internal/database"
	"womenhub/internal/models"
)

const jobColumns = `id, title, company,
	COALESCE(location, '') AS location,
	COALESCE(job_type, '') AS job_type,
	COALESCE(salary_range, '') AS salary_range,
	COALESCE(description, '') AS description,
	COALESCE(requirements, '') AS requirements,
	posted_date, is_active,
	COALESCE(apply_link, '') AS apply_link`

type jobRepository struct {
	db *database.DB
}

func NewJobRepository(db *database.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Insert(ctx context.Context, job models.NewJob) (int64, error) {
	query := r.db.Rebind(`
		INSERT INTO jobs (title, company, location, job_type, salary_range, description, requirements, apply_link)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`)

	var id int64
	err := r.db.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		return tx.GetContext(ctx, &id, query,
			job.Title,
			job.Company,
			nullable(job.Location),
			nullable(job.JobType),
			nullable(job.SalaryRange),
			nullable(job.Description),
			nullable(job.Requirements),
			nullable(job.ApplyLink),
		)
	})
	if err != nil {
		return 0, fmt.Errorf("insert job: %w", err)
	}

	return id, nil
}

func (r *jobRepository) ListActive(ctx context.Context, limit int) ([]models.Job, error) {
	query := r.db.Rebind(`SELECT ` + jobColumns + `
		FROM jobs
		WHERE is_active = TRUE
		ORDER BY posted_date DESC, id DESC
		LIMIT ?`)

	jobs := []models.Job{}
	err := r.db.WithConn(ctx, func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &jobs, query, limit)
	})
	if err != nil {
		return nil, fmt.Errorf("list active jobs: %w", err)
	}

	return jobs, nil
}

func (r *jobRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.WithConn(ctx, func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.GetContext(ctx, &count, `SELECT COUNT(*) FROM jobs`)
	})
	if err != nil {
		return 0, fmt.Errorf("count jobs: %w", err)
	}

	return count, nil
}
