package sqlite

import (
	"context"
	"time"

	"github.com/veerabala/linkbio/internal/linkbio/domain"
)

type settingsRepo struct {
	db dbtx
}

const settingsColumns = `id, user_id, theme, layout, show_icons, background_effect,
	font_family, button_shape, button_style, color_palette, featured_links,
	created_at, updated_at`

func (r *settingsRepo) GetSettingsByUserID(ctx context.Context, userID int64) (domain.Settings, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+settingsColumns+` FROM settings WHERE user_id = ?`, userID)

	var s domain.Settings
	err := row.Scan(
		&s.ID, &s.UserID, &s.Theme, &s.Layout, &s.ShowIcons, &s.BackgroundEffect,
		&s.FontFamily, &s.ButtonShape, &s.ButtonStyle, &s.ColorPalette, &s.FeaturedLinks,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return domain.Settings{}, mapNotFound(err)
	}
	return s, nil
}

func (r *settingsRepo) CreateSettingsIfAbsent(ctx context.Context, s domain.Settings) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (user_id, theme, layout, show_icons, background_effect,
			font_family, button_shape, button_style, color_palette, featured_links,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO NOTHING`,
		s.UserID, s.Theme, s.Layout, s.ShowIcons, s.BackgroundEffect,
		s.FontFamily, s.ButtonShape, s.ButtonStyle, s.ColorPalette, s.FeaturedLinks,
		now, now,
	)
	return err
}

func (r *settingsRepo) UpdateSettings(ctx context.Context, s domain.Settings) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE settings SET theme = ?, layout = ?, show_icons = ?, background_effect = ?,
			font_family = ?, button_shape = ?, button_style = ?, color_palette = ?,
			featured_links = ?, updated_at = ?
		WHERE user_id = ?`,
		s.Theme, s.Layout, s.ShowIcons, s.BackgroundEffect,
		s.FontFamily, s.ButtonShape, s.ButtonStyle, s.ColorPalette,
		s.FeaturedLinks, time.Now().UTC(), s.UserID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}
