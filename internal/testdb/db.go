package testdb

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/norsklab/norsk-api/internal/platform/postgres"
	"github.com/stretchr/testify/require"
)

// TestTimeout bounds the ping and the one-off migration run.
const TestTimeout = 10 * time.Second

var (
	migrateOnce sync.Once
	migrateErr  error
)

// urlVars are consulted in order; CI sets the first, developers the second.
var urlVars = []string{"DATABASE_URL", "NORSK_TEST_DB_URL"}

// GetTestDatabaseURL returns the first non-empty of urlVars.
func GetTestDatabaseURL() string {
	for _, name := range urlVars {
		if u := os.Getenv(name); u != "" {
			return u
		}
	}
	return ""
}

// IsIntegrationTestEnvironment reports whether a test database is configured.
func IsIntegrationTestEnvironment() bool {
	return GetTestDatabaseURL() != ""
}

// GetTestDBWithT returns a pool on the migrated schema, or skips t. The pool
// is closed by t.Cleanup.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skipf("no test database: set one of %v", urlVars)
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "open test database")
	db.SetMaxOpenConns(4)

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "ping test database")

	migrateOnce.Do(func() {
		migrateErr = postgres.Migrate(ctx, db, "up", nil)
	})
	require.NoError(t, migrateErr, "migrate test database")

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("close test database: %v", err)
		}
	})

	return db
}

// WithTx hands fn a transaction that is always rolled back.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err, "begin test transaction")

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("roll back test transaction: %v", err)
		}
	}()

	fn(t, tx)
}
