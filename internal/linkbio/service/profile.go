package service

import (
	"context"
	"errors"

	"github.com/veerabala/linkbio/internal/linkbio/domain"
	"github.com/veerabala/linkbio/internal/linkbio/store"
)

// ProfileService assembles the public, unauthenticated view of a user:
// their display fields, links and presentation settings.
type ProfileService struct {
	Store store.Store
}

// ByUsername returns the public profile for username, or ErrNotFound if no
// such account exists. Settings fall back to defaults without being
// materialized, matching SettingsService.PublicByUsername.
func (s *ProfileService) ByUsername(ctx context.Context, username string) (domain.Profile, error) {
	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Profile{}, ErrNotFound
		}
		return domain.Profile{}, err
	}

	links, err := s.Store.Links().ListLinksByUser(ctx, user.ID)
	if err != nil {
		return domain.Profile{}, err
	}

	settings, err := s.Store.Settings().GetSettingsByUserID(ctx, user.ID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return domain.Profile{}, err
		}
		settings = domain.DefaultSettings(user.ID)
	}

	return domain.Profile{
		Username: user.Username,
		FullName: user.FullName,
		Bio:      user.Bio,
		Links:    links,
		Settings: settings,
	}, nil
}
