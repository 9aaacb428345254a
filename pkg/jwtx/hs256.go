package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Signer is our interface for anything that can sign access tokens.
type Signer interface {
	Sign(Claims) (string, error)
}

// Verifier validates a token and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// HS256 signs and verifies tokens with a shared HMAC-SHA256 secret. The
// secret is injected at construction and never read from globals, so it
// can be rotated (and tested) without a process restart.
type HS256 struct {
	secret []byte
}

// NewHS256 creates a combined signer/verifier from the given secret.
func NewHS256(secret []byte) (*HS256, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwtx: empty signing secret")
	}
	// Copy so a caller mutating its slice can't silently rotate the key.
	s := make([]byte, len(secret))
	copy(s, secret)
	return &HS256{secret: s}, nil
}

// Sign turns claims into a signed compact JWT string.
func (h *HS256) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(h.secret)
}

// Verify validates the token's signature and expiry and returns its claims.
// The subject claim must be present.
func (h *HS256) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return h.secret, nil
	})
	if err != nil {
		return Claims{}, mapParseError(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrMalformed
	}

	if err := claims.ValidateSubject(); err != nil {
		return Claims{}, err
	}

	return *claims, nil
}

// mapParseError folds the library's error tree into our sentinels so
// callers can switch on them without importing golang-jwt.
func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	default:
		return ErrMalformed
	}
}
