package domain

import "time"

type User struct {
	ID           int64
	Username     string
	Email        string
	FullName     string
	Bio          string
	PasswordHash string // bcrypt encoded, never the plain value
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is an authenticated principal bound to a concrete user row.
// It is produced only by the identity resolver, so holding one proves the
// bearer token verified and the account still exists.
type Identity struct {
	User User
}

// PrincipalName satisfies httpx.Principal.
func (id Identity) PrincipalName() string { return id.User.Username }
