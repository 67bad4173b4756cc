package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pathfinderai/pathfinder/internal/career/store"

	sqlite3 "modernc.org/sqlite"
)

type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Users() store.Users { return &usersRepo{db: s.db} }

// mapNotFound converts driver-level "no rows" into the store sentinel.
func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// SQLITE_CONSTRAINT_UNIQUE, per the sqlite result-code list.
const sqliteConstraintUnique = 2067

// mapConflict converts a unique-constraint violation into the store sentinel.
func mapConflict(err error) error {
	var serr *sqlite3.Error
	if errors.As(err, &serr) && serr.Code() == sqliteConstraintUnique {
		return store.ErrAlreadyExists
	}
	return err
}
