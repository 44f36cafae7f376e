package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"github.com/vytor/leitnerflash/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied
// and foreign keys enabled. The pool is limited to one connection so every
// query sees the same in-memory database.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(context.Background(), sqlDB), "failed to apply migrations")
	return sqlDB
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}

// MustProfile inserts a profile and returns its ID.
func MustProfile(t *testing.T, sqlDB *sql.DB, username string) int64 {
	t.Helper()

	var id int64
	err := sqlDB.QueryRow(`INSERT INTO profiles (username) VALUES (?) RETURNING id`, username).Scan(&id)
	require.NoError(t, err)
	return id
}

// MustCard inserts a card in the given bucket and returns its ID.
func MustCard(t *testing.T, sqlDB *sql.DB, profileID int64, front string, bucket int) int64 {
	t.Helper()

	var id int64
	err := sqlDB.QueryRow(`INSERT INTO cards (profile_id, front, back, hint) VALUES (?, ?, ?, ?) RETURNING id`,
		profileID, front, front+" answer", "hint for "+front).Scan(&id)
	require.NoError(t, err)
	_, err = sqlDB.Exec(`INSERT INTO card_buckets (card_id, bucket) VALUES (?, ?)`, id, bucket)
	require.NoError(t, err)
	return id
}
