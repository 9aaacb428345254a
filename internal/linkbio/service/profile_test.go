package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veerabala/linkbio/internal/linkbio/domain"
	"github.com/veerabala/linkbio/internal/linkbio/service"
)

func TestProfileByUsername(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	links := &service.LinkService{Store: st}
	settings := &service.SettingsService{Store: st}
	profiles := &service.ProfileService{Store: st}
	ctx := context.Background()

	alice := registerUser(t, auth, "alice")
	_, err := links.Create(ctx, alice.ID, "Blog", "https://alice.example")
	require.NoError(t, err)
	_, err = links.Create(ctx, alice.ID, "Shop", "https://shop.alice.example")
	require.NoError(t, err)

	theme := "sunset"
	_, err = settings.Update(ctx, alice.ID, domain.SettingsPatch{Theme: &theme})
	require.NoError(t, err)

	p, err := profiles.ByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "alice", p.Username)
	require.Equal(t, "Test alice", p.FullName)
	require.Len(t, p.Links, 2)
	require.Equal(t, "Blog", p.Links[0].Title)
	require.Equal(t, "sunset", p.Settings.Theme)
}

func TestProfileUnknownUser(t *testing.T) {
	st := newTestStore(t)
	profiles := &service.ProfileService{Store: st}

	_, err := profiles.ByUsername(context.Background(), "nobody")
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestProfileFallsBackToDefaultSettings(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	profiles := &service.ProfileService{Store: st}
	ctx := context.Background()

	registerUser(t, auth, "alice")

	p, err := profiles.ByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "ocean", p.Settings.Theme)
	require.NotNil(t, p.Links)
	require.Empty(t, p.Links)
}
