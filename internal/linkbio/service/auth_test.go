package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/veerabala/linkbio/internal/linkbio/service"
	"github.com/veerabala/linkbio/internal/linkbio/store"
	"github.com/veerabala/linkbio/internal/linkbio/store/drivers/sqlite"
	"github.com/veerabala/linkbio/pkg/jwtx"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newAuthService(t *testing.T, st store.Store) *service.AuthService {
	t.Helper()

	hs, err := jwtx.NewHS256([]byte("test-secret"))
	require.NoError(t, err)

	return &service.AuthService{
		Store:    st,
		Signer:   hs,
		Verifier: hs,
		TokenTTL: time.Minute,
	}
}

func TestAuthRegisterLoginResolve(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	ctx := context.Background()

	user, err := auth.Register(ctx, "alice", "alice@example.com", "s3cret", "Alice A")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.Equal(t, "alice", user.Username)
	require.NotEqual(t, "s3cret", user.PasswordHash)

	token, err := auth.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := auth.Resolve(ctx, token)
	require.NoError(t, err)
	require.Equal(t, user.ID, identity.User.ID)
	require.Equal(t, "alice", identity.PrincipalName())
}

func TestAuthRegisterDuplicate(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	ctx := context.Background()

	_, err := auth.Register(ctx, "alice", "alice@example.com", "s3cret", "")
	require.NoError(t, err)

	_, err = auth.Register(ctx, "alice", "fresh@example.com", "s3cret", "")
	require.ErrorIs(t, err, service.ErrDuplicateAccount)

	_, err = auth.Register(ctx, "alice2", "alice@example.com", "s3cret", "")
	require.ErrorIs(t, err, service.ErrDuplicateAccount)
}

func TestAuthLoginRejectsBadCredentials(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	ctx := context.Background()

	_, err := auth.Register(ctx, "alice", "alice@example.com", "s3cret", "")
	require.NoError(t, err)

	// Wrong password and unknown username collapse into the same error.
	_, err = auth.Login(ctx, "alice", "wrong")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = auth.Login(ctx, "nobody", "s3cret")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthResolveRejectsBadTokens(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	ctx := context.Background()

	_, err := auth.Resolve(ctx, "not-a-token")
	require.ErrorIs(t, err, service.ErrInvalidToken)

	// A valid token naming a user that does not exist resolves to nobody.
	hs, err := jwtx.NewHS256([]byte("test-secret"))
	require.NoError(t, err)
	ghost, err := hs.Sign(jwtx.NewAccessClaims("ghost", time.Minute, time.Now()))
	require.NoError(t, err)

	_, err = auth.Resolve(ctx, ghost)
	require.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestAuthResolveRejectsExpiredToken(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	ctx := context.Background()

	_, err := auth.Register(ctx, "alice", "alice@example.com", "s3cret", "")
	require.NoError(t, err)

	hs, err := jwtx.NewHS256([]byte("test-secret"))
	require.NoError(t, err)
	stale, err := hs.Sign(jwtx.NewAccessClaims("alice", time.Minute, time.Now().Add(-time.Hour)))
	require.NoError(t, err)

	_, err = auth.Resolve(ctx, stale)
	require.ErrorIs(t, err, service.ErrInvalidToken)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestAuthLoginTruncatesLongPasswords(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	ctx := context.Background()

	long := make([]byte, 100)
	for i := range long {
		long[i] = 'a'
	}

	_, err := auth.Register(ctx, "alice", "alice@example.com", string(long), "")
	require.NoError(t, err)

	// Only the first 72 bytes participate in the hash.
	_, err = auth.Login(ctx, "alice", string(long[:72]))
	require.NoError(t, err)

	_, err = auth.Login(ctx, "alice", string(long[:71]))
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}
