package sqlite

import (
	"context"
	"time"

	"github.com/veerabala/linkbio/internal/linkbio/domain"
	"github.com/veerabala/linkbio/internal/linkbio/store"
)

type linksRepo struct {
	db dbtx
}

const linkColumns = `id, user_id, title, url, created_at, updated_at`

func (r *linksRepo) CreateLink(ctx context.Context, l domain.Link) (int64, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO links (user_id, title, url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		l.UserID, l.Title, l.URL, now, now,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *linksRepo) ListLinksByUser(ctx context.Context, userID int64) ([]domain.Link, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+linkColumns+` FROM links WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := []domain.Link{}
	for rows.Next() {
		var l domain.Link
		if err := rows.Scan(&l.ID, &l.UserID, &l.Title, &l.URL, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

func (r *linksRepo) GetLinkByID(ctx context.Context, id, userID int64) (domain.Link, error) {
	// Ownership scoping happens in the query itself: another user's row is
	// indistinguishable from a missing one.
	row := r.db.QueryRowContext(ctx,
		`SELECT `+linkColumns+` FROM links WHERE id = ? AND user_id = ?`, id, userID)

	var l domain.Link
	if err := row.Scan(&l.ID, &l.UserID, &l.Title, &l.URL, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return domain.Link{}, mapNotFound(err)
	}
	return l, nil
}

func (r *linksRepo) UpdateLink(ctx context.Context, l domain.Link) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE links SET title = ?, url = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`,
		l.Title, l.URL, time.Now().UTC(), l.ID, l.UserID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *linksRepo) DeleteLink(ctx context.Context, id, userID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM links WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func requireRowAffected(res interface{ RowsAffected() (int64, error) }) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
