package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/settings"
	"github.com/jsamuelsen11/discovery-dashboard/internal/ports"
)

// Compile-time check that SettingsService implements ports.SettingsService.
var _ ports.SettingsService = (*SettingsService)(nil)

// SettingsService reads and updates the dashboard settings.
type SettingsService struct {
	store  ports.SettingsStore
	logger *slog.Logger
}

// NewSettingsService creates a SettingsService backed by store.
func NewSettingsService(store ports.SettingsStore, logger *slog.Logger) *SettingsService {
	return &SettingsService{store: store, logger: logger}
}

// GetSettings returns the current settings.
func (s *SettingsService) GetSettings(ctx context.Context) (settings.Settings, error) {
	cur, err := loadSettings(ctx, s.store)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load settings",
			slog.String("operation", "GetSettings"),
			slog.Any("error", err),
		)
		return settings.Settings{}, err
	}
	return cur, nil
}

// UpdateSettings applies patch and persists the result. Later reads in the
// same request see the new settings.
func (s *SettingsService) UpdateSettings(ctx context.Context, patch settings.Patch) (settings.Settings, error) {
	s.logger.InfoContext(ctx, "updating settings",
		slog.Bool("theme", patch.Theme != nil),
		slog.Bool("completion", !patch.Completion.IsZero()),
		slog.Bool("reset_completion", patch.ResetCompletion),
	)

	next, err := s.store.Save(ctx, patch)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update settings",
			slog.String("operation", "UpdateSettings"),
			slog.Any("error", err),
		)
		return settings.Settings{}, err
	}

	invalidateSettings(ctx)
	return next, nil
}
