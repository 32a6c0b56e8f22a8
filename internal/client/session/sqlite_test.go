package session

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestOpenSQLiteStore_CreatesSchema(t *testing.T) {
	s := newSQLite(t)

	require.True(t, tableExists(t, s.db, "goose_db_version"))
	require.True(t, tableExists(t, s.db, "session"))
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db))
	require.True(t, tableExists(t, db, "session"))
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "session.db")

	s, err := OpenSQLiteStore(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "persisted"))
	require.NoError(t, s.Close())

	s, err = OpenSQLiteStore(ctx, dsn)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "persisted", got)
}

func TestSQLiteStore_HoldsSingleRow(t *testing.T) {
	s := newSQLite(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a"))
	require.NoError(t, s.Set(ctx, "b"))
	require.NoError(t, s.Set(ctx, "c"))

	var n int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM session`).Scan(&n))
	require.Equal(t, 1, n)
}

func TestSQLiteStore_ErrorsAreWrapped(t *testing.T) {
	s := newSQLite(t)
	ctx := context.Background()
	require.NoError(t, s.db.Close())

	_, err := s.Get(ctx)
	require.ErrorContains(t, err, "failed to get session")

	err = s.Set(ctx, "x")
	require.ErrorContains(t, err, "failed to set session")

	err = s.Clear(ctx)
	require.ErrorContains(t, err, "failed to clear session")
}
