// Package settings defines the user-adjustable dashboard preferences: the
// display theme and overrides for the completion scoring policy.
package settings

import (
	"errors"
	"fmt"
	"time"

	"github.com/jsamuelsen11/discovery-dashboard/internal/domain"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/completion"
)

// Theme is the dashboard color scheme.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// IsValid returns true if the theme is one of the defined constants.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t Theme) String() string {
	return string(t)
}

// Normalize returns t, or ThemeLight when t is not a known theme.
func (t Theme) Normalize() Theme {
	if t.IsValid() {
		return t
	}
	return ThemeLight
}

// CompletionOverrides replaces individual fields of the default scoring
// policy. Nil fields keep the default.
type CompletionOverrides struct {
	AnsweredWeight      *float64
	PartialWeight       *float64
	CompletedThreshold  *int
	ActiveHighThreshold *int
	ActiveLowThreshold  *int
}

// Options converts the overrides into calculator options.
func (o CompletionOverrides) Options() []completion.Option {
	var opts []completion.Option
	if o.AnsweredWeight != nil {
		opts = append(opts, completion.WithAnsweredWeight(*o.AnsweredWeight))
	}
	if o.PartialWeight != nil {
		opts = append(opts, completion.WithPartialWeight(*o.PartialWeight))
	}
	if o.CompletedThreshold != nil {
		opts = append(opts, completion.WithCompletedThreshold(*o.CompletedThreshold))
	}
	if o.ActiveHighThreshold != nil {
		opts = append(opts, completion.WithActiveHighThreshold(*o.ActiveHighThreshold))
	}
	if o.ActiveLowThreshold != nil {
		opts = append(opts, completion.WithActiveLowThreshold(*o.ActiveLowThreshold))
	}
	return opts
}

// IsZero reports whether no override is set.
func (o CompletionOverrides) IsZero() bool {
	return o.AnsweredWeight == nil && o.PartialWeight == nil && o.CompletedThreshold == nil &&
		o.ActiveHighThreshold == nil && o.ActiveLowThreshold == nil
}

// Settings is the persisted preference set.
type Settings struct {
	Theme      Theme
	Completion CompletionOverrides
	UpdatedAt  time.Time
}

// Default returns the settings used before anything has been saved.
func Default() Settings {
	return Settings{Theme: ThemeLight}
}

// Policy returns the scoring policy the settings produce.
func (s Settings) Policy() completion.Policy {
	return completion.NewPolicy(s.Completion.Options()...)
}

// Validate checks the theme and that the overrides produce a valid policy.
func (s Settings) Validate() error {
	var fields map[string]string

	if !s.Theme.IsValid() {
		fields = map[string]string{"theme": fmt.Sprintf("invalid: %q", s.Theme)}
	}

	var verr *domain.ValidationError
	if err := s.Policy().Validate(); errors.As(err, &verr) {
		if fields == nil {
			fields = make(map[string]string, len(verr.Fields))
		}
		for k, v := range verr.Fields {
			fields["completion."+k] = v
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Patch is a partial update. Nil fields are left unchanged. ResetCompletion
// clears every completion override before the patch's own overrides apply.
type Patch struct {
	Theme           *Theme
	Completion      CompletionOverrides
	ResetCompletion bool
}

// Apply returns s with p applied and UpdatedAt set to now. The result is
// validated; s is returned unchanged alongside the error on failure.
func (p Patch) Apply(s Settings, now time.Time) (Settings, error) {
	next := s
	if p.Theme != nil {
		next.Theme = *p.Theme
	}
	if p.ResetCompletion {
		next.Completion = CompletionOverrides{}
	}

	c := p.Completion
	if c.AnsweredWeight != nil {
		next.Completion.AnsweredWeight = c.AnsweredWeight
	}
	if c.PartialWeight != nil {
		next.Completion.PartialWeight = c.PartialWeight
	}
	if c.CompletedThreshold != nil {
		next.Completion.CompletedThreshold = c.CompletedThreshold
	}
	if c.ActiveHighThreshold != nil {
		next.Completion.ActiveHighThreshold = c.ActiveHighThreshold
	}
	if c.ActiveLowThreshold != nil {
		next.Completion.ActiveLowThreshold = c.ActiveLowThreshold
	}

	if err := next.Validate(); err != nil {
		return s, err
	}
	next.UpdatedAt = now.UTC()
	return next, nil
}
