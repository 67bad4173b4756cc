package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pathfinderai/pathfinder/internal/career/store"
	"github.com/pathfinderai/pathfinder/internal/career/store/drivers/sqlite"
	"github.com/pathfinderai/pathfinder/pkg/cryptox"
	"github.com/pathfinderai/pathfinder/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "pathfinder-test"

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "pathfinder-service-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newAuthService(t *testing.T, st store.Store) *AuthService {
	t.Helper()

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	return &AuthService{
		Store:      st,
		Signer:     signer,
		Issuer:     testIssuer,
		SessionTTL: jwtx.DefaultSessionTTL,
	}
}

func TestSignupSucceedsOncePerEmail(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	ctx := t.Context()

	id, err := auth.Signup(ctx, "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)
	require.Positive(t, id)

	_, err = auth.Signup(ctx, "Alice Again", "alice@example.com", "different")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignupNeverStoresPlaintext(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	ctx := t.Context()

	_, err := auth.Signup(ctx, "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	user, err := st.Users().GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotEqual(t, "hunter22", user.PasswordHash)
	require.NotContains(t, user.PasswordHash, "hunter22")
}

func TestLoginIssuesTokenForValidCredentials(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	ctx := t.Context()

	id, err := auth.Signup(ctx, "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	token, err := auth.Login(ctx, "alice@example.com", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	verifier := jwtx.NewVerifierHS256(testSecret, testIssuer)
	claims, err := verifier.Verify(token)
	require.NoError(t, err)

	subject, err := claims.UserID()
	require.NoError(t, err)
	require.Equal(t, id, subject)
}

func TestLoginDistinguishesUnknownUserFromBadPassword(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	ctx := t.Context()

	_, err := auth.Signup(ctx, "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	t.Run("unknown email", func(t *testing.T) {
		_, err := auth.Login(ctx, "nobody@example.com", "hunter22")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := auth.Login(ctx, "alice@example.com", "wrong")
		require.ErrorIs(t, err, ErrInvalidPassword)
	})
}
