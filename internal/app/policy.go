package app

import (
	"context"
	"log/slog"

	appctx "github.com/jsamuelsen11/discovery-dashboard/internal/app/context"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/completion"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/settings"
	"github.com/jsamuelsen11/discovery-dashboard/internal/ports"
)

// settingsKey is the request-scoped memoization key for the stored settings.
const settingsKey = "settings"

// completionRecorder receives one event per computed completion. Satisfied
// by *telemetry.Metrics.
type completionRecorder interface {
	RecordCompletion(ctx context.Context, status string)
}

// settingsRecorder receives one event per applied settings change. Satisfied
// by *telemetry.Metrics.
type settingsRecorder interface {
	RecordSettingsChange(ctx context.Context, theme string)
}

// Policies resolves the effective scoring policy by layering the configured
// base policy, the stored settings overrides and per-call options, in that
// order. The stored settings are loaded at most once per request.
type Policies struct {
	base   completion.Policy
	store  ports.SettingsStore
	logger *slog.Logger
}

// NewPolicies creates a Policies resolver. A nil store skips the settings
// layer.
func NewPolicies(base completion.Policy, store ports.SettingsStore, logger *slog.Logger) *Policies {
	return &Policies{base: base, store: store, logger: logger}
}

// Resolve returns the effective policy for opts. The result is validated;
// an override that breaks the threshold ordering or a weight outside [0,1]
// returns a *domain.ValidationError.
func (p *Policies) Resolve(ctx context.Context, opts ...completion.Option) (completion.Policy, error) {
	layered := []completion.Option{completion.WithPolicy(p.base)}

	if p.store != nil {
		s, err := loadSettings(ctx, p.store)
		if err != nil {
			p.logger.ErrorContext(ctx, "failed to load settings",
				slog.String("operation", "ResolvePolicy"),
				slog.Any("error", err),
			)
			return completion.Policy{}, err
		}
		layered = append(layered, s.Completion.Options()...)
	}

	policy := completion.NewPolicy(append(layered, opts...)...)
	if err := policy.Validate(); err != nil {
		return completion.Policy{}, err
	}
	return policy, nil
}

// invalidateSettings drops the request's memoized settings after a write.
func invalidateSettings(ctx context.Context) {
	if rc := appctx.FromContext(ctx); rc != nil {
		rc.Invalidate(settingsKey)
	}
}

// loadSettings loads the stored settings through the request memo.
func loadSettings(ctx context.Context, store ports.SettingsStore) (settings.Settings, error) {
	return appctx.Memoize(ctx, settingsKey, store.Load)
}

// Follow subscribes to the settings store and reports each applied change,
// whether saved through the API or picked up from an edited file, with the
// effective policy it produces. metrics may be nil. The returned func
// unsubscribes.
func (p *Policies) Follow(metrics settingsRecorder) (stop func()) {
	if p.store == nil {
		return func() {}
	}
	return p.store.Subscribe(func(s settings.Settings) {
		ctx := context.Background()
		policy := completion.NewPolicy(append([]completion.Option{completion.WithPolicy(p.base)}, s.Completion.Options()...)...)

		p.logger.InfoContext(ctx, "settings applied",
			slog.String("theme", s.Theme.String()),
			slog.Float64("answered_weight", policy.AnsweredWeight),
			slog.Float64("partial_weight", policy.PartialWeight),
			slog.Int("completed_threshold", policy.CompletedThreshold),
			slog.Int("active_high_threshold", policy.ActiveHighThreshold),
			slog.Int("active_low_threshold", policy.ActiveLowThreshold),
		)
		if metrics != nil {
			metrics.RecordSettingsChange(ctx, s.Theme.String())
		}
	})
}
