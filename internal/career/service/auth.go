package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pathfinderai/pathfinder/internal/career/store"
	"github.com/pathfinderai/pathfinder/pkg/cryptox"
	"github.com/pathfinderai/pathfinder/pkg/jwtx"
	"github.com/pathfinderai/pathfinder/pkg/slogx"
)

var (
	ErrEmailTaken      = errors.New("email already in use")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
)

// AuthService handles signup and login. Login failures deliberately
// distinguish "no such user" from "wrong password"; the HTTP layer maps
// them to different status codes.
type AuthService struct {
	Store      store.Store
	Signer     jwtx.Signer
	Issuer     string
	SessionTTL time.Duration
}

// Signup hashes the password and creates the user record. The email
// uniqueness invariant is enforced by the store in the same statement as
// the insert, so a duplicate signup fails without partial mutation.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (int64, error) {
	log := slogx.FromContext(ctx)

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return 0, fmt.Errorf("hash password: %w", err)
	}

	userID, err := s.Store.Users().CreateUser(ctx, name, email, hash)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return 0, ErrEmailTaken
		}
		log.Error("failed to create user", slog.Any("error", err))
		return 0, fmt.Errorf("create user: %w", err)
	}

	log.Info("user created", slog.Int64("user_id", userID))
	return userID, nil
}

// Login verifies the credentials and issues a signed session token bound to
// the user id with a 24-hour expiry. Verification of the returned token is
// stateless; nothing is stored server-side.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUserNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return "", fmt.Errorf("fetch user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return "", ErrInvalidPassword
	}

	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	claims := jwtx.NewSessionClaims(user.ID, s.Issuer, ttl, time.Now().UTC())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return "", fmt.Errorf("sign session token: %w", err)
	}

	log.Info("user logged in", slog.Int64("user_id", user.ID))
	return token, nil
}
