package database

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"

	"womenhub/internal/models"
)

type tableDef struct {
	name    string
	ddl     string
	indexes []string
}

// {{pk}} and {{json}} are replaced per dialect.
var tableDefs = []tableDef{
	{
		name: "users",
		ddl: `CREATE TABLE IF NOT EXISTS users (
			id {{pk}},
			email VARCHAR(255) UNIQUE NOT NULL,
			name VARCHAR(255) NOT NULL,
			phone VARCHAR(20),
			location VARCHAR(255),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		name: "jobs",
		ddl: `CREATE TABLE IF NOT EXISTS jobs (
			id {{pk}},
			title VARCHAR(255) NOT NULL,
			company VARCHAR(255) NOT NULL,
			location VARCHAR(255),
			job_type VARCHAR(50),
			salary_range VARCHAR(100),
			description TEXT,
			requirements TEXT,
			posted_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			is_active BOOLEAN DEFAULT TRUE,
			apply_link VARCHAR(500)
		)`,
		indexes: []string{
			`CREATE INDEX IF NOT EXISTS idx_jobs_active_posted ON jobs (is_active, posted_date)`,
		},
	},
	{
		name: "courses",
		ddl: `CREATE TABLE IF NOT EXISTS courses (
			id {{pk}},
			title VARCHAR(255) NOT NULL,
			category VARCHAR(100),
			level VARCHAR(50),
			duration VARCHAR(50),
			description TEXT,
			instructor VARCHAR(255),
			price DECIMAL(10, 2) DEFAULT 0,
			is_free BOOLEAN DEFAULT TRUE,
			enrollment_count INTEGER DEFAULT 0,
			rating DECIMAL(3, 2) DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		indexes: []string{
			`CREATE INDEX IF NOT EXISTS idx_courses_category ON courses (category)`,
		},
	},
	{
		name: "success_stories",
		ddl: `CREATE TABLE IF NOT EXISTS success_stories (
			id {{pk}},
			name VARCHAR(255) NOT NULL,
			title VARCHAR(255) NOT NULL,
			story TEXT NOT NULL,
			image_url VARCHAR(500),
			category VARCHAR(100),
			date_posted TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			is_approved BOOLEAN DEFAULT TRUE
		)`,
	},
	{
		name: "resources",
		ddl: `CREATE TABLE IF NOT EXISTS resources (
			id {{pk}},
			title VARCHAR(255) NOT NULL,
			category VARCHAR(100),
			resource_type VARCHAR(50),
			description TEXT,
			url VARCHAR(500),
			file_path VARCHAR(500),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		name: "mentors",
		ddl: `CREATE TABLE IF NOT EXISTS mentors (
			id {{pk}},
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			expertise VARCHAR(255),
			bio TEXT,
			linkedin_url VARCHAR(500),
			available_slots INTEGER DEFAULT 0,
			rating DECIMAL(3, 2) DEFAULT 0,
			total_mentees INTEGER DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		name: "community_posts",
		ddl: `CREATE TABLE IF NOT EXISTS community_posts (
			id {{pk}},
			user_id INTEGER,
			title VARCHAR(255) NOT NULL,
			content TEXT NOT NULL,
			category VARCHAR(100),
			likes INTEGER DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		indexes: []string{
			`CREATE INDEX IF NOT EXISTS idx_community_posts_created ON community_posts (created_at)`,
		},
	},
	{
		name: "emergency_contacts",
		ddl: `CREATE TABLE IF NOT EXISTS emergency_contacts (
			id {{pk}},
			user_id INTEGER,
			contact_name VARCHAR(255) NOT NULL,
			contact_phone VARCHAR(20) NOT NULL,
			relationship VARCHAR(100),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		name: "health_records",
		ddl: `CREATE TABLE IF NOT EXISTS health_records (
			id {{pk}},
			user_id INTEGER,
			record_type VARCHAR(50),
			record_date DATE,
			data {{json}},
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		name: "legal_rights",
		ddl: `CREATE TABLE IF NOT EXISTS legal_rights (
			id {{pk}},
			title VARCHAR(255) NOT NULL,
			category VARCHAR(100),
			description TEXT,
			country VARCHAR(100) DEFAULT 'India',
			law_reference VARCHAR(255),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	},
}

// TableNames returns the managed tables in creation order.
func TableNames() []string {
	names := make([]string, 0, len(tableDefs))
	for _, t := range tableDefs {
		names = append(names, t.name)
	}
	return names
}

func (d Dialect) render(ddl string) string {
	pk, js := "SERIAL PRIMARY KEY", "JSONB"
	if d == SQLite {
		pk, js = "INTEGER PRIMARY KEY AUTOINCREMENT", "TEXT"
	}
	return strings.NewReplacer("{{pk}}", pk, "{{json}}", js).Replace(ddl)
}

func (d Dialect) listTablesQuery() string {
	if d == SQLite {
		return `SELECT name FROM sqlite_master
			WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
			ORDER BY name`
	}
	return `SELECT table_name FROM information_schema.tables
		WHERE table_schema = 'public' AND table_type = 'BASE TABLE'
		ORDER BY table_name`
}

// ListTables returns the user tables present in the database, sorted by name.
func (db *DB) ListTables(ctx context.Context) ([]string, error) {
	names := []string{}
	err := db.WithConn(ctx, func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &names, db.Dialect.listTablesQuery())
	})
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return names, nil
}

// InitSchema creates every managed table that does not exist yet. Each table is
// created on its own so one failure does not hide the others; the report has one
// entry per table and the returned error joins every failure.
func (db *DB) InitSchema(ctx context.Context) ([]models.TableStatus, error) {
	existing, err := db.ListTables(ctx)
	if err != nil {
		return nil, err
	}

	report := make([]models.TableStatus, 0, len(tableDefs))
	var errs []error

	for _, t := range tableDefs {
		status := models.TableStatus{Name: t.name, Status: models.TableCreated}
		if slices.Contains(existing, t.name) {
			status.Status = models.TableExists
		}

		if err := db.createTable(ctx, t); err != nil {
			status.Status = models.TableFailed
			status.Error = err.Error()
			errs = append(errs, fmt.Errorf("table %s: %w", t.name, err))
		}
		report = append(report, status)
	}

	return report, errors.Join(errs...)
}

func (db *DB) createTable(ctx context.Context, t tableDef) error {
	return db.WithConn(ctx, func(ctx context.Context, conn *sqlx.Conn) error {
		if _, err := conn.ExecContext(ctx, db.Dialect.render(t.ddl)); err != nil {
			return err
		}
		for _, idx := range t.indexes {
			if _, err := conn.ExecContext(ctx, idx); err != nil {
				return fmt.Errorf("index: %w", err)
			}
		}
		return nil
	})
}
