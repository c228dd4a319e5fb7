package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks the environment variables that override configuration.
const EnvPrefix = "APP_"

// Option adjusts how Load finds its inputs.
type Option func(*loader)

// WithConfigDir reads the YAML files from dir instead of ./configs.
func WithConfigDir(dir string) Option {
	return func(l *loader) { l.dir = dir }
}

// WithEnviron replaces os.Environ as the source of APP_ overrides.
func WithEnviron(environ func() []string) Option {
	return func(l *loader) { l.environ = environ }
}

type loader struct {
	dir     string
	environ func() []string
	k       *koanf.Koanf
}

// Load builds the configuration for profile from four layers, each
// overriding the one before:
//
//	built-in defaults → configs/base.yaml → configs/<profile>.yaml → APP_* env
//
// An environment variable is the upper-case, underscore-joined form of a
// known key (APP_DISCOVERY_COMPLETION_PARTIAL_WEIGHT sets
// discovery.completion.partial_weight); variables that match no key are
// ignored. The result is validated before it is returned.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	l := &loader{dir: "configs", environ: os.Environ, k: koanf.New(".")}
	for _, opt := range opts {
		opt(l)
	}

	steps := []struct {
		what string
		run  func() error
	}{
		{"defaults", l.loadDefaults},
		{"base config", func() error { return l.loadYAML("base") }},
		{"profile config", func() error { return l.loadYAML(profile) }},
		{"environment", l.loadEnv},
	}
	for _, s := range steps {
		if err := s.run(); err != nil {
			return nil, fmt.Errorf("loading %s: %w", s.what, err)
		}
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", profile, err)
	}
	return &cfg, nil
}

func (l *loader) loadDefaults() error {
	for key, value := range defaults() {
		if err := l.k.Set(key, value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func (l *loader) loadYAML(name string) error {
	path := filepath.Join(l.dir, name+".yaml")
	if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (l *loader) loadEnv() error {
	// Field names contain underscores too, so APP_SERVER_READ_TIMEOUT cannot
	// be split mechanically; it is matched against the keys loaded so far.
	known := make(map[string]string, len(l.k.Keys()))
	for _, key := range l.k.Keys() {
		known[strings.ToUpper(strings.ReplaceAll(key, ".", "_"))] = key
	}

	return l.k.Load(env.Provider(".", env.Opt{
		Prefix:      EnvPrefix,
		EnvironFunc: l.environ,
		TransformFunc: func(name, value string) (string, any) {
			return known[strings.TrimPrefix(name, EnvPrefix)], value
		},
	}), nil)
}

func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("profile must be a bare file name, got %q", profile)
	}
	return nil
}
