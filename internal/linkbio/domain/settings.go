package domain

import "time"

// Settings holds a user's presentation preferences, one row per user,
// materialized lazily with defaults on first authenticated access.
type Settings struct {
	ID               int64
	UserID           int64
	Theme            string
	Layout           string
	ShowIcons        bool
	BackgroundEffect string
	FontFamily       string
	ButtonShape      string
	ButtonStyle      string
	ColorPalette     string
	FeaturedLinks    string // JSON array of link ids, opaque to the backend
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DefaultSettings returns the documented default values. External clients
// depend on these exact strings; do not change them casually.
func DefaultSettings(userID int64) Settings {
	return Settings{
		UserID:           userID,
		Theme:            "ocean",
		Layout:           "list",
		ShowIcons:        true,
		BackgroundEffect: "gradient",
		FontFamily:       "Inter",
		ButtonShape:      "rounded",
		ButtonStyle:      "solid",
		ColorPalette:     "indigo-500",
		FeaturedLinks:    "[]",
	}
}

// SettingsPatch is an allow-listed partial update. Nil fields are left
// untouched. This replaces the original's dynamic attribute copy so
// unintended fields can never be written.
type SettingsPatch struct {
	Theme            *string
	Layout           *string
	ShowIcons        *bool
	BackgroundEffect *string
	FontFamily       *string
	ButtonShape      *string
	ButtonStyle      *string
	ColorPalette     *string
	FeaturedLinks    *string
}

// Apply copies the non-nil patch fields onto s.
func (p SettingsPatch) Apply(s *Settings) {
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.Layout != nil {
		s.Layout = *p.Layout
	}
	if p.ShowIcons != nil {
		s.ShowIcons = *p.ShowIcons
	}
	if p.BackgroundEffect != nil {
		s.BackgroundEffect = *p.BackgroundEffect
	}
	if p.FontFamily != nil {
		s.FontFamily = *p.FontFamily
	}
	if p.ButtonShape != nil {
		s.ButtonShape = *p.ButtonShape
	}
	if p.ButtonStyle != nil {
		s.ButtonStyle = *p.ButtonStyle
	}
	if p.ColorPalette != nil {
		s.ColorPalette = *p.ColorPalette
	}
	if p.FeaturedLinks != nil {
		s.FeaturedLinks = *p.FeaturedLinks
	}
}
