package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/badgekeeper/internal/client/migrations"
	"github.com/dmitrijs2005/badgekeeper/internal/dbx"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// sessionSlot is the only row the session table may hold.
const sessionSlot = 1

// SQLiteStore persists the slot in a local SQLite file so the session
// survives restarts of the client on the same machine.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps an already migrated database.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// OpenSQLiteStore opens (creating if needed) the database at dsn and brings
// its schema up to date.
func OpenSQLiteStore(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open session db: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate session db: %w", err)
	}

	return NewSQLiteStore(db), nil
}

func (s *SQLiteStore) Get(ctx context.Context) (string, error) {
	token, err := readSlot(ctx, s.db)
	if err != nil {
		return "", fmt.Errorf("failed to get session: %w", err)
	}
	return token, nil
}

// Set replaces the slot in one transaction, so readers never see two rows
// or an empty slot mid-write.
func (s *SQLiteStore) Set(ctx context.Context, token string) error {
	if token == "" {
		return s.Clear(ctx)
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := clearSlot(ctx, tx); err != nil {
			return err
		}
		return writeSlot(ctx, tx, token)
	})
	if err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if err := clearSlot(ctx, s.db); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func readSlot(ctx context.Context, q dbx.DBTX) (string, error) {
	var token string
	err := q.QueryRowContext(ctx, `SELECT token FROM session WHERE slot = ?`, sessionSlot).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return token, err
}

func writeSlot(ctx context.Context, q dbx.DBTX, token string) error {
	_, err := q.ExecContext(ctx, `INSERT INTO session (slot, token) VALUES (?, ?)`, sessionSlot, token)
	return err
}

func clearSlot(ctx context.Context, q dbx.DBTX) error {
	_, err := q.ExecContext(ctx, `DELETE FROM session`)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
