package dto

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/discovery-dashboard/internal/domain"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/completion"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/settings"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
	msgMustBeNumber = "must be a number"
	msgMustBeInt    = "must be an integer"
)

// Query parameters that override the scoring policy for one request.
const (
	QueryAnsweredWeight      = "answered_weight"
	QueryPartialWeight       = "partial_weight"
	QueryCompletedThreshold  = "completed_threshold"
	QueryActiveHighThreshold = "active_high_threshold"
	QueryActiveLowThreshold  = "active_low_threshold"
)

// TranscriptRequest represents the JSON body for submitting a transcript.
type TranscriptRequest struct {
	TranscriptText string `json:"transcript_text"`
}

// Validate checks that the transcript text is present.
// Returns a *domain.ValidationError if any checks fail.
func (r *TranscriptRequest) Validate() error {
	if strings.TrimSpace(r.TranscriptText) == "" {
		return domain.Invalid("transcript_text", msgRequired)
	}
	return nil
}

// CompletionOverridesRequest carries partial scoring overrides.
type CompletionOverridesRequest struct {
	AnsweredWeight      *float64 `json:"answered_weight,omitempty"`
	PartialWeight       *float64 `json:"partial_weight,omitempty"`
	CompletedThreshold  *int     `json:"completed_threshold,omitempty"`
	ActiveHighThreshold *int     `json:"active_high_threshold,omitempty"`
	ActiveLowThreshold  *int     `json:"active_low_threshold,omitempty"`
}

// UpdateSettingsRequest represents the JSON body for a settings update.
// Only non-nil fields are applied.
type UpdateSettingsRequest struct {
	Theme           *string                     `json:"theme,omitempty"`
	Completion      *CompletionOverridesRequest `json:"completion,omitempty"`
	ResetCompletion bool                        `json:"reset_completion,omitempty"`
}

// Validate checks the fields that can be checked without the current
// settings. Ranges and threshold ordering are checked when the patch is
// applied. Returns a *domain.ValidationError if any checks fail.
func (r *UpdateSettingsRequest) Validate() error {
	fields := make(map[string]string)

	if r.Theme == nil && r.Completion == nil && !r.ResetCompletion {
		fields["body"] = "at least one field must be provided"
	}
	if r.Theme != nil {
		switch {
		case strings.TrimSpace(*r.Theme) == "":
			fields["theme"] = msgMustNotEmpty
		case !settings.Theme(*r.Theme).IsValid():
			fields["theme"] = fmt.Sprintf("invalid: %q", *r.Theme)
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToPatch converts the request into a settings patch.
func (r *UpdateSettingsRequest) ToPatch() settings.Patch {
	p := settings.Patch{ResetCompletion: r.ResetCompletion}
	if r.Theme != nil {
		theme := settings.Theme(*r.Theme)
		p.Theme = &theme
	}
	if c := r.Completion; c != nil {
		p.Completion = settings.CompletionOverrides{
			AnsweredWeight:      c.AnsweredWeight,
			PartialWeight:       c.PartialWeight,
			CompletedThreshold:  c.CompletedThreshold,
			ActiveHighThreshold: c.ActiveHighThreshold,
			ActiveLowThreshold:  c.ActiveLowThreshold,
		}
	}
	return p
}

// ParsePolicyQuery reads scoring overrides from query parameters. Absent
// parameters produce no option. A malformed value returns a
// *domain.ValidationError keyed "query.<name>"; range checks are left to the
// policy.
func ParsePolicyQuery(q url.Values) ([]completion.Option, error) {
	var (
		opts   []completion.Option
		fields = make(map[string]string)
	)

	floats := []struct {
		name string
		opt  func(float64) completion.Option
	}{
		{QueryAnsweredWeight, completion.WithAnsweredWeight},
		{QueryPartialWeight, completion.WithPartialWeight},
	}
	for _, f := range floats {
		raw := q.Get(f.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			fields["query."+f.name] = msgMustBeNumber
			continue
		}
		opts = append(opts, f.opt(v))
	}

	ints := []struct {
		name string
		opt  func(int) completion.Option
	}{
		{QueryCompletedThreshold, completion.WithCompletedThreshold},
		{QueryActiveHighThreshold, completion.WithActiveHighThreshold},
		{QueryActiveLowThreshold, completion.WithActiveLowThreshold},
	}
	for _, f := range ints {
		raw := q.Get(f.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			fields["query."+f.name] = msgMustBeInt
			continue
		}
		opts = append(opts, f.opt(v))
	}

	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}
	return opts, nil
}
