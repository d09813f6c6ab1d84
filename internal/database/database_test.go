package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"womenhub/internal/config"
	"womenhub/internal/models"
)

func openSQLite(t *testing.T) *DB {
	t.Helper()

	cfg := config.DB{URL: "sqlite://" + filepath.Join(t.TempDir(), "hub.db")}
	db, err := Open(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.CloseDB() })
	return db
}

func TestParseDSN(t *testing.T) {
	tests := []struct {
		name    string
		dsn     string
		driver  string
		dialect Dialect
		wantErr bool
	}{
		{name: "postgres url", dsn: "postgres://u:p@localhost:5432/hub?sslmode=disable", driver: "postgres", dialect: Postgres},
		{name: "postgresql url", dsn: "postgresql://localhost/hub", driver: "postgres", dialect: Postgres},
		{name: "keyword form", dsn: "host=localhost user=u dbname=hub", driver: "postgres", dialect: Postgres},
		{name: "sqlite path", dsn: "sqlite:///tmp/hub.db", driver: "sqlite", dialect: SQLite},
		{name: "sqlite file uri", dsn: "file:hub.db?cache=shared", driver: "sqlite", dialect: SQLite},
		{name: "mysql", dsn: "mysql://root@localhost/hub", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driver, source, dialect, err := ParseDSN(tt.dsn)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.driver, driver)
			assert.Equal(t, tt.dialect, dialect)
			assert.NotEmpty(t, source)
		})
	}
}

func TestSQLiteSourceAddsPragmas(t *testing.T) {
	assert.Equal(t, "/tmp/a.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", sqliteSource("/tmp/a.db"))
	assert.Equal(t, "file:a.db?mode=rwc&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", sqliteSource("file:a.db?mode=rwc"))
	assert.Equal(t, "a.db?_pragma=journal_mode(WAL)", sqliteSource("a.db?_pragma=journal_mode(WAL)"))
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "postgres://***@db:5432/hub", redact("postgres://hub:p@ss@db:5432/hub"))
	assert.Equal(t, "sqlite:///tmp/hub.db", redact("sqlite:///tmp/hub.db"))
}

func TestOpen_NotConfigured(t *testing.T) {
	_, err := Open(context.Background(), config.DB{}, zap.NewNop())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestInitSchema_Idempotent(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()

	report, err := db.InitSchema(ctx)
	require.NoError(t, err)
	require.Len(t, report, 10)
	for _, st := range report {
		assert.Equal(t, models.TableCreated, st.Status, st.Name)
	}

	first, err := db.ListTables(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, TableNames(), first)

	report, err = db.InitSchema(ctx)
	require.NoError(t, err)
	for _, st := range report {
		assert.Equal(t, models.TableExists, st.Status, st.Name)
		assert.Empty(t, st.Error)
	}

	second, err := db.ListTables(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestInitSchema_ReportsEachFailure(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db := Wrap(sqlx.NewDb(mockDB, "sqlmock"), Postgres)

	mock.ExpectQuery("SELECT table_name FROM information_schema.tables").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("users"))

	for _, name := range TableNames() {
		exec := mock.ExpectExec("CREATE TABLE IF NOT EXISTS " + name)
		if name == "jobs" {
			exec.WillReturnError(errors.New("permission denied"))
			continue
		}
		exec.WillReturnResult(sqlmock.NewResult(0, 0))
		for range indexCount(name) {
			mock.ExpectExec("CREATE INDEX IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
		}
	}

	report, err := db.InitSchema(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "table jobs")
	require.Len(t, report, 10)
	assert.Equal(t, models.TableExists, report[0].Status)
	assert.Equal(t, models.TableFailed, report[1].Status)
	assert.Equal(t, "permission denied", report[1].Error)
	assert.Equal(t, models.TableCreated, report[2].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func indexCount(table string) int {
	for _, t := range tableDefs {
		if t.name == table {
			return len(t.indexes)
		}
	}
	return 0
}

func TestDialectRender(t *testing.T) {
	ddl := "id {{pk}}, data {{json}}"
	assert.Equal(t, "id SERIAL PRIMARY KEY, data JSONB", Postgres.render(ddl))
	assert.Equal(t, "id INTEGER PRIMARY KEY AUTOINCREMENT, data TEXT", SQLite.render(ddl))
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db := Wrap(sqlx.NewDb(mockDB, "sqlmock"), Postgres)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO jobs").WillReturnError(boom)
	mock.ExpectRollback()

	err = db.WithTx(context.Background(), func(ctx context.Context, tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, "INSERT INTO jobs (title) VALUES ($1)", "x")
		return err
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_Commits(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db := Wrap(sqlx.NewDb(mockDB, "sqlmock"), Postgres)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO jobs").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err = db.WithTx(context.Background(), func(ctx context.Context, tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, "INSERT INTO jobs (title) VALUES ($1)", "x")
		return err
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollsBackOnPanic(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db := Wrap(sqlx.NewDb(mockDB, "sqlmock"), Postgres)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = db.WithTx(context.Background(), func(ctx context.Context, tx *sqlx.Tx) error {
			panic("bad state")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthCheck(t *testing.T) {
	var nilDB *DB
	assert.ErrorIs(t, nilDB.HealthCheck(context.Background()), ErrNotConfigured)

	db := openSQLite(t)
	assert.NoError(t, db.HealthCheck(context.Background()))
}
