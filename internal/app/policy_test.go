package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appctx "github.com/jsamuelsen11/discovery-dashboard/internal/app/context"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/completion"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/settings"
	"github.com/jsamuelsen11/discovery-dashboard/mocks"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestPolicies_Resolve_Layering(t *testing.T) {
	t.Parallel()

	base := completion.NewPolicy(completion.WithCompletedThreshold(90))

	tests := []struct {
		name      string
		overrides settings.CompletionOverrides
		opts      []completion.Option
		want      completion.Policy
	}{
		{
			name: "base only",
			want: base,
		},
		{
			name:      "stored overrides replace base",
			overrides: settings.CompletionOverrides{PartialWeight: floatPtr(0.5)},
			want:      completion.NewPolicy(completion.WithPolicy(base), completion.WithPartialWeight(0.5)),
		},
		{
			name:      "options replace stored overrides",
			overrides: settings.CompletionOverrides{PartialWeight: floatPtr(0.5), CompletedThreshold: intPtr(80)},
			opts:      []completion.Option{completion.WithPartialWeight(0.25)},
			want: completion.NewPolicy(
				completion.WithPolicy(base),
				completion.WithPartialWeight(0.25),
				completion.WithCompletedThreshold(80),
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := mocks.NewMockSettingsStore(t)
			store.EXPECT().Load(mock.Anything).Return(settings.Settings{Theme: settings.ThemeLight, Completion: tt.overrides}, nil)

			got, err := NewPolicies(base, store, discardLogger()).Resolve(context.Background(), tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPolicies_Resolve_NilStore(t *testing.T) {
	t.Parallel()

	got, err := NewPolicies(completion.DefaultPolicy(), nil, discardLogger()).Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, completion.DefaultPolicy(), got)
}

func TestPolicies_Resolve_InvalidOrdering(t *testing.T) {
	t.Parallel()

	p := NewPolicies(completion.DefaultPolicy(), nil, discardLogger())

	_, err := p.Resolve(context.Background(), completion.WithActiveLowThreshold(80))
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "active_low_threshold")
}

func TestPolicies_Resolve_StoreError(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockSettingsStore(t)
	store.EXPECT().Load(mock.Anything).Return(settings.Settings{}, domain.ErrUnavailable)

	_, err := NewPolicies(completion.DefaultPolicy(), store, discardLogger()).Resolve(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestPolicies_Resolve_LoadsOncePerRequest(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockSettingsStore(t)
	store.EXPECT().Load(mock.Anything).Return(settings.Default(), nil).Once()

	p := NewPolicies(completion.DefaultPolicy(), store, discardLogger())
	ctx := appctx.With(context.Background(), appctx.New())

	for range 3 {
		_, err := p.Resolve(ctx)
		require.NoError(t, err)
	}
}

// themeRecorder collects the themes of recorded settings changes.
type themeRecorder struct {
	themes []string
}

func (r *themeRecorder) RecordSettingsChange(_ context.Context, theme string) {
	r.themes = append(r.themes, theme)
}

func TestPolicies_Follow(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockSettingsStore(t)
	var listener func(settings.Settings)
	unsubscribed := false
	store.EXPECT().Subscribe(mock.Anything).RunAndReturn(func(fn func(settings.Settings)) func() {
		listener = fn
		return func() { unsubscribed = true }
	})

	rec := &themeRecorder{}
	stop := NewPolicies(completion.DefaultPolicy(), store, discardLogger()).Follow(rec)
	require.NotNil(t, listener)

	listener(settings.Settings{Theme: settings.ThemeDark})
	listener(settings.Settings{Theme: settings.ThemeSystem, Completion: settings.CompletionOverrides{PartialWeight: floatPtr(0.5)}})
	assert.Equal(t, []string{"dark", "system"}, rec.themes)

	stop()
	assert.True(t, unsubscribed)
}

func TestPolicies_Follow_NilStoreAndRecorder(t *testing.T) {
	t.Parallel()

	stop := NewPolicies(completion.DefaultPolicy(), nil, discardLogger()).Follow(nil)
	assert.NotPanics(t, stop)

	store := mocks.NewMockSettingsStore(t)
	var listener func(settings.Settings)
	store.EXPECT().Subscribe(mock.Anything).RunAndReturn(func(fn func(settings.Settings)) func() {
		listener = fn
		return func() {}
	})
	_ = NewPolicies(completion.DefaultPolicy(), store, discardLogger()).Follow(nil)
	assert.NotPanics(t, func() { listener(settings.Default()) })
}
