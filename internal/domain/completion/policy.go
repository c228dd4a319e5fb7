package completion

import (
	"fmt"

	"github.com/jsamuelsen11/discovery-dashboard/internal/domain"
)

// Default weights and thresholds.
const (
	DefaultAnsweredWeight      = 1.0
	DefaultPartialWeight       = 0.6
	DefaultCompletedThreshold  = 95
	DefaultActiveHighThreshold = 70
	DefaultActiveLowThreshold  = 10
)

// Progress bar bands. These are fixed and independent of the status
// thresholds in Policy.
const (
	excellentBand = 90
	goodBand      = 70
	moderateBand  = 40
)

// Policy holds the weights and thresholds used to score a project.
// Unanswered questions always weigh 0.
type Policy struct {
	AnsweredWeight      float64
	PartialWeight       float64
	CompletedThreshold  int
	ActiveHighThreshold int
	ActiveLowThreshold  int
}

// DefaultPolicy returns the standard scoring policy.
func DefaultPolicy() Policy {
	return Policy{
		AnsweredWeight:      DefaultAnsweredWeight,
		PartialWeight:       DefaultPartialWeight,
		CompletedThreshold:  DefaultCompletedThreshold,
		ActiveHighThreshold: DefaultActiveHighThreshold,
		ActiveLowThreshold:  DefaultActiveLowThreshold,
	}
}

// Option overrides a single field of a Policy.
type Option func(*Policy)

// WithAnsweredWeight sets the weight of a fully answered question.
func WithAnsweredWeight(w float64) Option {
	return func(p *Policy) { p.AnsweredWeight = w }
}

// WithPartialWeight sets the weight of a partially answered question.
func WithPartialWeight(w float64) Option {
	return func(p *Policy) { p.PartialWeight = w }
}

// WithCompletedThreshold sets the percentage at which a project is completed.
func WithCompletedThreshold(pct int) Option {
	return func(p *Policy) { p.CompletedThreshold = pct }
}

// WithActiveHighThreshold sets the percentage at which an active project is
// shown as well advanced.
func WithActiveHighThreshold(pct int) Option {
	return func(p *Policy) { p.ActiveHighThreshold = pct }
}

// WithActiveLowThreshold sets the percentage at which a project stops being
// pending.
func WithActiveLowThreshold(pct int) Option {
	return func(p *Policy) { p.ActiveLowThreshold = pct }
}

// WithPolicy replaces every field with the values of other.
func WithPolicy(other Policy) Option {
	return func(p *Policy) { *p = other }
}

// NewPolicy applies opts, in order, on top of DefaultPolicy.
func NewPolicy(opts ...Option) Policy {
	p := DefaultPolicy()
	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}
	return p
}

// Validate reports weights outside [0,1] and thresholds outside [0,100] or
// out of order. Calculate does not require a valid policy; Validate exists
// for callers accepting overrides from users.
func (p Policy) Validate() error {
	fields := make(map[string]string)

	if !validWeight(p.AnsweredWeight) {
		fields["answered_weight"] = fmt.Sprintf("must be between 0 and 1, got %g", p.AnsweredWeight)
	}
	if !validWeight(p.PartialWeight) {
		fields["partial_weight"] = fmt.Sprintf("must be between 0 and 1, got %g", p.PartialWeight)
	}

	thresholds := []struct {
		name  string
		value int
	}{
		{"completed_threshold", p.CompletedThreshold},
		{"active_high_threshold", p.ActiveHighThreshold},
		{"active_low_threshold", p.ActiveLowThreshold},
	}
	for _, th := range thresholds {
		if th.value < 0 || th.value > 100 {
			fields[th.name] = fmt.Sprintf("must be between 0 and 100, got %d", th.value)
		}
	}

	if len(fields) == 0 {
		if p.ActiveLowThreshold > p.ActiveHighThreshold {
			fields["active_low_threshold"] = "must not exceed active_high_threshold"
		}
		if p.ActiveHighThreshold > p.CompletedThreshold {
			fields["active_high_threshold"] = "must not exceed completed_threshold"
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// validWeight is false for NaN, which fails every comparison.
func validWeight(w float64) bool {
	return isFinite(w) && w >= 0 && w <= 1
}
