package settings

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/discovery-dashboard/internal/domain"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/completion"
)

func ptr[T any](v T) *T { return &v }

func TestTheme_Normalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ThemeDark, ThemeDark.Normalize())
	assert.Equal(t, ThemeSystem, ThemeSystem.Normalize())
	assert.Equal(t, ThemeLight, Theme("").Normalize())
	assert.Equal(t, ThemeLight, Theme("solarized").Normalize())
}

func TestDefault(t *testing.T) {
	t.Parallel()

	s := Default()
	assert.Equal(t, ThemeLight, s.Theme)
	assert.True(t, s.Completion.IsZero())
	assert.Equal(t, completion.DefaultPolicy(), s.Policy())
	require.NoError(t, s.Validate())
}

func TestCompletionOverrides_Options(t *testing.T) {
	t.Parallel()

	o := CompletionOverrides{
		PartialWeight:      ptr(0.5),
		CompletedThreshold: ptr(90),
	}

	got := completion.NewPolicy(o.Options()...)

	want := completion.DefaultPolicy()
	want.PartialWeight = 0.5
	want.CompletedThreshold = 90
	assert.Equal(t, want, got)
	assert.False(t, o.IsZero())
}

func TestPatch_Apply(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("sets theme and overrides", func(t *testing.T) {
		t.Parallel()

		got, err := Patch{
			Theme:      ptr(ThemeDark),
			Completion: CompletionOverrides{AnsweredWeight: ptr(0.9)},
		}.Apply(Default(), now)
		require.NoError(t, err)

		assert.Equal(t, ThemeDark, got.Theme)
		require.NotNil(t, got.Completion.AnsweredWeight)
		assert.InDelta(t, 0.9, *got.Completion.AnsweredWeight, 1e-9)
		assert.Nil(t, got.Completion.PartialWeight)
		assert.Equal(t, now, got.UpdatedAt)
	})

	t.Run("keeps unspecified fields", func(t *testing.T) {
		t.Parallel()

		base := Settings{Theme: ThemeSystem, Completion: CompletionOverrides{PartialWeight: ptr(0.4)}}
		got, err := Patch{Completion: CompletionOverrides{ActiveLowThreshold: ptr(5)}}.Apply(base, now)
		require.NoError(t, err)

		assert.Equal(t, ThemeSystem, got.Theme)
		assert.InDelta(t, 0.4, *got.Completion.PartialWeight, 1e-9)
		assert.Equal(t, 5, *got.Completion.ActiveLowThreshold)
	})

	t.Run("reset clears overrides", func(t *testing.T) {
		t.Parallel()

		base := Settings{Theme: ThemeDark, Completion: CompletionOverrides{PartialWeight: ptr(0.4)}}
		got, err := Patch{ResetCompletion: true}.Apply(base, now)
		require.NoError(t, err)

		assert.True(t, got.Completion.IsZero())
		assert.Equal(t, ThemeDark, got.Theme)
	})

	t.Run("invalid theme is rejected", func(t *testing.T) {
		t.Parallel()

		base := Default()
		got, err := Patch{Theme: ptr(Theme("neon"))}.Apply(base, now)
		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Equal(t, base, got)
	})

	t.Run("invalid override is rejected with prefixed field", func(t *testing.T) {
		t.Parallel()

		_, err := Patch{Completion: CompletionOverrides{ActiveLowThreshold: ptr(80)}}.Apply(Default(), now)

		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Fields, "completion.active_low_threshold")
	})
}
