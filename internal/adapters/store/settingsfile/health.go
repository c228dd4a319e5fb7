package settingsfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Name returns the identifier used when the store is registered with a
// health registry.
func (s *Store) Name() string {
	return "settings-store"
}

// HealthCheck reports whether the settings can be loaded and the backing
// directory still exists.
func (s *Store) HealthCheck(ctx context.Context) error {
	if _, err := s.Load(ctx); err != nil {
		return fmt.Errorf("settings-store: %w", err)
	}
	if _, err := os.Stat(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("settings-store: %w", err)
	}
	return nil
}
