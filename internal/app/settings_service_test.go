package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appctx "github.com/jsamuelsen11/discovery-dashboard/internal/app/context"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/completion"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/settings"
	"github.com/jsamuelsen11/discovery-dashboard/mocks"
)

func TestSettingsService_GetSettings(t *testing.T) {
	t.Parallel()

	t.Run("returns stored settings", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockSettingsStore(t)
		want := settings.Settings{Theme: settings.ThemeDark}
		store.EXPECT().Load(mock.Anything).Return(want, nil)

		got, err := NewSettingsService(store, discardLogger()).GetSettings(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockSettingsStore(t)
		store.EXPECT().Load(mock.Anything).Return(settings.Settings{}, domain.ErrUnavailable)

		_, err := NewSettingsService(store, discardLogger()).GetSettings(context.Background())
		assert.ErrorIs(t, err, domain.ErrUnavailable)
	})
}

func TestSettingsService_UpdateSettings(t *testing.T) {
	t.Parallel()

	t.Run("saves the patch", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockSettingsStore(t)
		dark := settings.ThemeDark
		patch := settings.Patch{Theme: &dark}
		want := settings.Settings{Theme: dark, UpdatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)}
		store.EXPECT().Save(mock.Anything, patch).Return(want, nil)

		got, err := NewSettingsService(store, discardLogger()).UpdateSettings(context.Background(), patch)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("propagates validation errors", func(t *testing.T) {
		t.Parallel()
		store := mocks.NewMockSettingsStore(t)
		patch := settings.Patch{Completion: settings.CompletionOverrides{PartialWeight: floatPtr(3)}}
		store.EXPECT().Save(mock.Anything, patch).Return(settings.Settings{}, &domain.ValidationError{
			Fields: map[string]string{"completion.partial_weight": "must be between 0 and 1, got 3"},
		})

		_, err := NewSettingsService(store, discardLogger()).UpdateSettings(context.Background(), patch)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestSettingsService_UpdateInvalidatesRequestMemo(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockSettingsStore(t)
	before := settings.Default()
	after := settings.Settings{
		Theme:      settings.ThemeLight,
		Completion: settings.CompletionOverrides{CompletedThreshold: intPtr(80)},
	}
	patch := settings.Patch{Completion: after.Completion}

	store.EXPECT().Load(mock.Anything).Return(before, nil).Once()
	store.EXPECT().Save(mock.Anything, patch).Return(after, nil).Once()
	store.EXPECT().Load(mock.Anything).Return(after, nil).Once()

	ctx := appctx.With(context.Background(), appctx.New())
	policies := NewPolicies(completion.DefaultPolicy(), store, discardLogger())
	svc := NewSettingsService(store, discardLogger())

	p, err := policies.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, completion.DefaultCompletedThreshold, p.CompletedThreshold)

	_, err = svc.UpdateSettings(ctx, patch)
	require.NoError(t, err)

	p, err = policies.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, 80, p.CompletedThreshold)
}
