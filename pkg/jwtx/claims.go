// Package jwtx issues and verifies the service's bearer tokens.
//
// Tokens are self-contained HS256 JWTs signed with a single process-wide
// secret. The claim set is deliberately minimal: the subject (username) and
// an absolute expiry. Rotating the secret invalidates every previously
// issued token, which callers must treat as a hard session-invalidation
// event.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the default lifetime for access tokens,
// measured from wall-clock time at issuance. Not renewed, not sliding.
const DefaultAccessTokenTTL = 30 * time.Minute

var (
	ErrMalformed  = errors.New("jwtx: malformed token")
	ErrInvalidSig = errors.New("jwtx: invalid signature")
	ErrExpired    = errors.New("jwtx: token expired")
	ErrNoSubject  = errors.New("jwtx: missing subject claim")
)

// Claims is the access-token claim set. On the wire it serializes to
// exactly {"sub": <username>, "exp": <unix-epoch-seconds>}; external
// clients depend on that shape.
type Claims struct {
	jwt.RegisteredClaims
}

// NewAccessClaims builds claims for subject expiring ttl after now.
func NewAccessClaims(subject string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

// ValidateSubject ensures the subject claim is present.
func (c *Claims) ValidateSubject() error {
	if c.Subject == "" {
		return ErrNoSubject
	}
	return nil
}
