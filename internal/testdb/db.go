// Package testdb provides utilities for database-backed tests. It depends
// only on database/sql and the migration files, not on the store
// implementations under test.
package testdb

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"github.com/ltmb786/taskboard-api/internal/platform/postgres"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// GetTestDatabaseURL returns the database URL for tests. It checks
// DATABASE_URL and TASKBOARD_TEST_DB_URL in that order, returning the first
// non-empty value.
func GetTestDatabaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return os.Getenv("TASKBOARD_TEST_DB_URL")
}

// IsIntegrationTestEnvironment returns true if a test database URL is
// configured, indicating that integration tests can run.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// SkipIfNoDB skips the test unless a test database URL is configured.
func SkipIfNoDB(t *testing.T) {
	t.Helper()
	if !IsIntegrationTestEnvironment() {
		t.Skip("skipping: DATABASE_URL or TASKBOARD_TEST_DB_URL not set")
	}
}

// Open connects to the test database, verifies the connection, and applies
// any pending migrations. The connection is closed automatically when the
// test finishes.
func Open(t *testing.T) *sql.DB {
	t.Helper()
	SkipIfNoDB(t)

	db, err := sql.Open("pgx", GetTestDatabaseURL())
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "failed to ping test database")

	goose.SetBaseFS(postgres.MigrationsFS)
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(db, postgres.MigrationsDir), "failed to migrate test database")

	return db
}

// WithTx runs fn inside a transaction that is always rolled back, keeping
// tests isolated from each other without per-test table cleanup.
func WithTx(t *testing.T, db *sql.DB, fn func(tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err, "failed to begin transaction")
	defer func() {
		// Rollback after commit is a no-op error; tests never commit.
		_ = tx.Rollback()
	}()

	fn(tx)
}
