package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/veerabala/linkbio/internal/linkbio/domain"
	"github.com/veerabala/linkbio/internal/linkbio/store"
)

// SettingsService manages per-user presentation settings with lazy
// materialization: a row is created with defaults the first time its owner
// asks for it, and never earlier.
type SettingsService struct {
	Store store.Store
}

// GetOrCreate returns the user's settings, materializing the default row if
// none exists yet. Concurrent first reads are safe: the insert ignores
// conflicts and both callers re-read the single surviving row.
func (s *SettingsService) GetOrCreate(ctx context.Context, userID int64) (domain.Settings, error) {
	settings, err := s.Store.Settings().GetSettingsByUserID(ctx, userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Settings{}, err
	}

	if err := s.Store.Settings().CreateSettingsIfAbsent(ctx, domain.DefaultSettings(userID)); err != nil {
		return domain.Settings{}, fmt.Errorf("materialize default settings: %w", err)
	}
	return s.Store.Settings().GetSettingsByUserID(ctx, userID)
}

// Update materializes the row if needed, applies the patch and persists the
// result. Unknown fields never reach this layer; the patch is allow-listed.
func (s *SettingsService) Update(ctx context.Context, userID int64, patch domain.SettingsPatch) (domain.Settings, error) {
	settings, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return domain.Settings{}, err
	}

	patch.Apply(&settings)
	if err := s.Store.Settings().UpdateSettings(ctx, settings); err != nil {
		return domain.Settings{}, err
	}
	return s.Store.Settings().GetSettingsByUserID(ctx, userID)
}

// PublicByUsername returns the settings shown on a public profile. Unlike
// GetOrCreate it never writes: a user who has not customized anything gets
// the defaults without a row being materialized on their behalf.
func (s *SettingsService) PublicByUsername(ctx context.Context, username string) (domain.Settings, error) {
	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Settings{}, ErrNotFound
		}
		return domain.Settings{}, err
	}

	settings, err := s.Store.Settings().GetSettingsByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.DefaultSettings(user.ID), nil
		}
		return domain.Settings{}, err
	}
	return settings, nil
}
