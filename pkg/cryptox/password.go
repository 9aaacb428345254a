// Package cryptox provides password hashing for the service.
package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the bcrypt input limit. Anything beyond this is
// silently truncated before hashing, so callers must not assume longer
// passwords are distinguished.
const MaxPasswordBytes = 72

var (
	// ErrMismatch reports a password that does not match the stored hash.
	ErrMismatch = errors.New("cryptox: password does not match")

	// ErrInvalidHash reports a stored hash that is not a structurally valid
	// bcrypt encoding (e.g. corrupted data).
	ErrInvalidHash = errors.New("cryptox: invalid password hash encoding")
)

// HashPassword generates a salted bcrypt hash of password. Each call
// produces a different encoded value for the same input.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncate(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a stored bcrypt hash
// using the salt embedded in the hash. It returns nil on match, ErrMismatch
// on a wrong password, and ErrInvalidHash when the stored value is not a
// bcrypt encoding at all.
func VerifyPassword(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), truncate(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return errors.Join(ErrInvalidHash, err)
	}
}

func truncate(password string) []byte {
	b := []byte(password)
	if len(b) > MaxPasswordBytes {
		b = b[:MaxPasswordBytes]
	}
	return b
}
