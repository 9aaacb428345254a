package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veerabala/linkbio/internal/linkbio/domain"
	"github.com/veerabala/linkbio/internal/linkbio/service"
	"github.com/veerabala/linkbio/internal/linkbio/store"
)

func TestSettingsGetOrCreateDefaults(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	settings := &service.SettingsService{Store: st}
	ctx := context.Background()

	alice := registerUser(t, auth, "alice")

	got, err := settings.GetOrCreate(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, "ocean", got.Theme)
	require.Equal(t, "list", got.Layout)
	require.True(t, got.ShowIcons)
	require.Equal(t, "gradient", got.BackgroundEffect)
	require.Equal(t, "Inter", got.FontFamily)
	require.Equal(t, "rounded", got.ButtonShape)
	require.Equal(t, "solid", got.ButtonStyle)
	require.Equal(t, "indigo-500", got.ColorPalette)
	require.Equal(t, "[]", got.FeaturedLinks)

	again, err := settings.GetOrCreate(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, got.ID, again.ID)
}

func TestSettingsConcurrentFirstAccess(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	settings := &service.SettingsService{Store: st}
	ctx := context.Background()

	alice := registerUser(t, auth, "alice")

	const callers = 8
	ids := make([]int64, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := settings.GetOrCreate(ctx, alice.ID)
			ids[i], errs[i] = got.ID, err
		}(i)
	}
	wg.Wait()

	// Everyone observed the same single row.
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		require.Equal(t, ids[0], ids[i])
	}
}

func TestSettingsPatchLeavesUnnamedFieldsAlone(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	settings := &service.SettingsService{Store: st}
	ctx := context.Background()

	alice := registerUser(t, auth, "alice")

	theme := "neon"
	show := false
	got, err := settings.Update(ctx, alice.ID, domain.SettingsPatch{
		Theme:     &theme,
		ShowIcons: &show,
	})
	require.NoError(t, err)
	require.Equal(t, "neon", got.Theme)
	require.False(t, got.ShowIcons)
	require.Equal(t, "list", got.Layout)
	require.Equal(t, "Inter", got.FontFamily)

	// A later empty patch changes nothing.
	same, err := settings.Update(ctx, alice.ID, domain.SettingsPatch{})
	require.NoError(t, err)
	require.Equal(t, "neon", same.Theme)
	require.False(t, same.ShowIcons)
}

func TestSettingsPublicByUsernameDoesNotMaterialize(t *testing.T) {
	st := newTestStore(t)
	auth := newAuthService(t, st)
	settings := &service.SettingsService{Store: st}
	ctx := context.Background()

	alice := registerUser(t, auth, "alice")

	got, err := settings.PublicByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "ocean", got.Theme)

	// The public read must not have created a row.
	_, err = st.Settings().GetSettingsByUserID(ctx, alice.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = settings.PublicByUsername(ctx, "nobody")
	require.ErrorIs(t, err, service.ErrNotFound)
}
