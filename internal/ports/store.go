package ports

import (
	"context"

	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/settings"
)

// SettingsStore persists dashboard settings. Implementations create the
// defaults on first load and notify subscribers after every change, whether
// made through Save or by an external edit of the backing storage.
type SettingsStore interface {
	// Load returns the current settings.
	Load(ctx context.Context) (settings.Settings, error)

	// Save applies patch, persists the result and returns it.
	// Returns domain.ErrValidation if the patched settings are invalid.
	Save(ctx context.Context, patch settings.Patch) (settings.Settings, error)

	// Subscribe registers fn to be called with the new settings after each
	// change. The returned function removes the subscription.
	Subscribe(fn func(settings.Settings)) (unsubscribe func())
}
