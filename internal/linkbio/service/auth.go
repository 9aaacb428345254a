package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/veerabala/linkbio/internal/linkbio/domain"
	"github.com/veerabala/linkbio/internal/linkbio/store"
	"github.com/veerabala/linkbio/pkg/cryptox"
	"github.com/veerabala/linkbio/pkg/jwtx"
	"github.com/veerabala/linkbio/pkg/slogx"
)

var (
	// ErrInvalidCredentials covers both unknown username and wrong password
	// so login responses can't be used to probe for accounts.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// ErrDuplicateAccount reports a registration with a taken username or email.
	ErrDuplicateAccount = errors.New("duplicate_account")

	// ErrInvalidToken reports a missing, malformed, expired or forged token.
	ErrInvalidToken = errors.New("invalid_token")

	// ErrUserNotFound reports a token that verified but whose subject no
	// longer has an account. Externally indistinguishable from
	// ErrInvalidToken; kept separate for diagnostics.
	ErrUserNotFound = errors.New("user_not_found")
)

// AuthService owns the credential and session lifecycle: registration,
// password verification, token issuance and identity resolution. Resolve is
// the single choke point every protected operation passes through before
// touching user-scoped data.
type AuthService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	TokenTTL time.Duration
}

// Register creates a new account with a hashed password and returns the
// stored user. The plain password never leaves this function.
func (s *AuthService) Register(ctx context.Context, username, email, password, fullName string) (domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.Store.Users().CreateUser(ctx, domain.User{
		Username:     username,
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrDuplicateAccount
		}
		return domain.User{}, err
	}

	return s.Store.Users().GetUserByID(ctx, id)
}

// Login verifies the credentials and issues a bearer token whose subject is
// the username, expiring TokenTTL after now.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("login failed: unknown username", slog.String("username", username))
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrMismatch) {
			// Corrupted hash in storage; worth surfacing in logs but the
			// caller still just sees bad credentials.
			l.Error("stored password hash unreadable", slog.Int64("user_id", user.ID), "err", err)
		}
		return "", ErrInvalidCredentials
	}

	token, err := s.Signer.Sign(jwtx.NewAccessClaims(user.Username, s.ttl(), time.Now()))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Resolve verifies a bearer token and binds it to the concrete user record
// it names. Failure modes stay distinguishable via errors.Is for
// diagnostics, but handlers surface all of them as a uniform 401.
func (s *AuthService) Resolve(ctx context.Context, token string) (domain.Identity, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Identity{}, fmt.Errorf("%w: %q", ErrUserNotFound, claims.Subject)
		}
		return domain.Identity{}, err
	}

	return domain.Identity{User: user}, nil
}

func (s *AuthService) ttl() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return jwtx.DefaultAccessTokenTTL
}
