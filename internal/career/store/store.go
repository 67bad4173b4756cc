package store

import (
	"context"
	"errors"

	"github.com/pathfinderai/pathfinder/internal/career/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. Every operation is a single atomic statement; no endpoint
// performs more than one write, so there is no transaction surface.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// CreateUser inserts a new user and returns the assigned id.
	// Returns ErrAlreadyExists when the email is already registered; the
	// uniqueness check and the insert are one statement, so a conflict
	// leaves no partial state behind.
	CreateUser(ctx context.Context, name, email, passwordHash string) (int64, error)

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByEmail is used during login. Email matching is exact and
	// case-sensitive, the same as at signup.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// UpdateAcademicDetails overwrites the stored profile wholesale and
	// bumps updated_at. Returns ErrNotFound for an unknown user.
	UpdateAcademicDetails(ctx context.Context, userID int64, details domain.AcademicDetails) error
}
