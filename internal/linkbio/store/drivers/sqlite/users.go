package sqlite

import (
	"context"
	"time"

	"github.com/veerabala/linkbio/internal/linkbio/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, username, email, full_name, bio, password_hash, created_at, updated_at`

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (int64, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO users (username, email, full_name, bio, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.Username, u.Email, u.FullName, u.Bio, u.PasswordHash, now, now,
	)
	if err != nil {
		return 0, mapConflict(err)
	}
	return res.LastInsertId()
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.FullName, &u.Bio,
		&u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}
