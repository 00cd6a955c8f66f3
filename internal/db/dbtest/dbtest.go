// Package dbtest opens throwaway migrated databases for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/templui/goaltracker/internal/db"
)

// New returns a migrated SQLite database in a temp dir, closed on cleanup.
func New(t *testing.T) *sqlx.DB {
	t.Helper()

	connection := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	database, err := db.Init("sqlite", connection, db.DefaultPool)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close(database)
	})

	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))
	return database
}
