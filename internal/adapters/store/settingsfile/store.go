// Package settingsfile implements [ports.SettingsStore] on a YAML file.
//
// The file is created with defaults on first load and rewritten atomically
// (temp file + rename) on every save. Watch follows external edits of the
// file with fsnotify and notifies subscribers, so a hand-edited settings file
// takes effect without a restart.
package settingsfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/settings"
	"github.com/jsamuelsen11/discovery-dashboard/internal/ports"
)

// Compile-time interface check.
var _ ports.SettingsStore = (*Store)(nil)

const defaultDebounce = 100 * time.Millisecond

// Store is a file-backed settings store. It is safe for concurrent use.
type Store struct {
	path     string
	logger   *slog.Logger
	now      func() time.Time
	debounce time.Duration

	mu      sync.RWMutex
	current settings.Settings
	loaded  bool
	// written is the last content this store wrote, used to tell its own
	// writes apart from external edits.
	written []byte

	subMu  sync.Mutex
	subs   map[int]func(settings.Settings)
	nextID int
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used for UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithDebounce sets how long Watch waits for a burst of file events to
// settle before reloading.
func WithDebounce(d time.Duration) Option {
	return func(s *Store) { s.debounce = d }
}

// New creates a Store for the file at path. Nothing is read until the first
// Load or Save.
func New(path string, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		path:     filepath.Clean(path),
		logger:   logger,
		now:      time.Now,
		debounce: defaultDebounce,
		subs:     make(map[int]func(settings.Settings)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the current settings, reading the file on first use. A
// missing file is created with the defaults.
func (s *Store) Load(ctx context.Context) (settings.Settings, error) {
	if err := ctx.Err(); err != nil {
		return settings.Settings{}, err
	}

	s.mu.RLock()
	if s.loaded {
		cur := s.current
		s.mu.RUnlock()
		return cur, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoadedLocked(); err != nil {
		return settings.Settings{}, err
	}
	return s.current, nil
}

// Save applies patch to the current settings, persists the result and
// notifies subscribers. An invalid patch leaves the file untouched and
// returns a *domain.ValidationError.
func (s *Store) Save(ctx context.Context, patch settings.Patch) (settings.Settings, error) {
	if err := ctx.Err(); err != nil {
		return settings.Settings{}, err
	}

	s.mu.Lock()
	if err := s.ensureLoadedLocked(); err != nil {
		s.mu.Unlock()
		return settings.Settings{}, err
	}

	next, err := patch.Apply(s.current, s.now())
	if err != nil {
		s.mu.Unlock()
		return settings.Settings{}, err
	}
	if err := s.writeLocked(next); err != nil {
		s.mu.Unlock()
		return settings.Settings{}, err
	}
	s.current = next
	s.mu.Unlock()

	s.notify(next)
	return next, nil
}

// Subscribe registers fn for change notifications. Callbacks run on the
// goroutine that made the change and must not call Save.
func (s *Store) Subscribe(fn func(settings.Settings)) func() {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

func (s *Store) notify(cur settings.Settings) {
	s.subMu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(settings.Settings), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.subs[id])
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(cur)
	}
}

// ensureLoadedLocked reads the file once. Callers hold s.mu.
func (s *Store) ensureLoadedLocked() error {
	if s.loaded {
		return nil
	}

	data, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		def := settings.Default()
		if err := s.writeLocked(def); err != nil {
			return err
		}
		s.current = def
	case err != nil:
		return fmt.Errorf("reading settings file %s: %w", s.path, err)
	default:
		cur, err := s.decode(data)
		if err != nil {
			return err
		}
		s.current = cur
		s.written = data
	}

	s.loaded = true
	return nil
}

// decode parses file content. An unknown theme falls back to light and
// invalid scoring overrides are dropped, both with a warning, so that a bad
// hand edit never keeps the service from starting.
func (s *Store) decode(data []byte) (settings.Settings, error) {
	var dto fileDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return settings.Settings{}, fmt.Errorf("parsing settings file %s: %w", s.path, err)
	}

	cur := fromFile(dto)
	if !cur.Theme.IsValid() {
		s.logger.Warn("unknown theme in settings file, using default",
			slog.String("path", s.path),
			slog.String("theme", cur.Theme.String()),
		)
		cur.Theme = cur.Theme.Normalize()
	}
	if err := cur.Validate(); err != nil {
		s.logger.Warn("invalid completion overrides in settings file, ignoring them",
			slog.String("path", s.path),
			slog.Any("error", err),
		)
		cur.Completion = settings.CompletionOverrides{}
	}
	return cur, nil
}

// writeLocked persists cur atomically. Callers hold s.mu.
func (s *Store) writeLocked(cur settings.Settings) error {
	data, err := yaml.Marshal(toFile(cur))
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating settings directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.yaml")
	if err != nil {
		return fmt.Errorf("creating temp settings file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// Only present if the rename below did not happen.
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing temp settings file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("syncing temp settings file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp settings file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("setting settings file mode: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replacing settings file %s: %w", s.path, err)
	}

	s.written = data
	return nil
}

// reload re-reads the file after an external change and notifies
// subscribers when the content differs from what this store last wrote.
func (s *Store) reload(ctx context.Context) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.WarnContext(ctx, "failed to reload settings file",
				slog.String("path", s.path),
				slog.Any("error", err),
			)
		}
		return
	}

	s.mu.Lock()
	if bytes.Equal(data, s.written) {
		s.mu.Unlock()
		return
	}
	cur, err := s.decode(data)
	if err != nil {
		s.mu.Unlock()
		s.logger.WarnContext(ctx, "ignoring unreadable settings file change",
			slog.String("path", s.path),
			slog.Any("error", err),
		)
		return
	}
	s.current = cur
	s.written = data
	s.loaded = true
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "settings reloaded from file",
		slog.String("path", s.path),
		slog.String("theme", cur.Theme.String()),
	)
	s.notify(cur)
}
