package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pathfinderai/pathfinder/internal/career/domain"
	"github.com/pathfinderai/pathfinder/internal/career/store"
)

type usersRepo struct {
	db *sql.DB
}

func (r *usersRepo) CreateUser(
	ctx context.Context,
	name, email, passwordHash string,
) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO users (name, email, password_hash)
		VALUES (?, ?, ?)`,
		name, email, passwordHash,
	)
	if err != nil {
		return 0, mapConflict(err)
	}
	return res.LastInsertId()
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, academic_details, created_at, updated_at
		FROM users WHERE id = ?`,
		id,
	)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, academic_details, created_at, updated_at
		FROM users WHERE email = ?`,
		email,
	)
	return scanUser(row)
}

func (r *usersRepo) UpdateAcademicDetails(
	ctx context.Context,
	userID int64,
	details domain.AcademicDetails,
) error {
	blob, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("sqlite: marshal academic details: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET academic_details = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		string(blob), userID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u       domain.User
		details sql.NullString
	)
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&details,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	if details.Valid && details.String != "" {
		var parsed domain.AcademicDetails
		if err := json.Unmarshal([]byte(details.String), &parsed); err != nil {
			return domain.User{}, fmt.Errorf("sqlite: unmarshal academic details: %w", err)
		}
		u.AcademicDetails = &parsed
	}

	return u, nil
}
