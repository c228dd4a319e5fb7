// Package completion scores discovery projects from their question status
// counts. It is the single implementation of the completion formula; every
// list view, dashboard, API response and CLI command goes through Calculate.
//
// The score is a weighted percentage:
//
//	weighted   = answered*AnsweredWeight + partial*PartialWeight
//	percentage = round_half_up(weighted / total * 100), clamped to [0,100]
//
// Arithmetic is decimal, so half-way values such as 7.5 always round up.
package completion

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/progress"
)

// Status is the lifecycle classification derived from the percentage.
type Status string

const (
	StatusCompleted   Status = "completed"
	StatusActive      Status = "active"
	StatusPending     Status = "pending"
	StatusNoQuestions Status = "no-questions"
	StatusUnknown     Status = "unknown"
)

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// StatusColor is the badge color associated with a Status.
type StatusColor string

const (
	ColorGreen  StatusColor = "green"
	ColorBlue   StatusColor = "blue"
	ColorYellow StatusColor = "yellow"
	ColorRed    StatusColor = "red"
	ColorGray   StatusColor = "gray"
)

// ProgressColor is the progress-bar band for a percentage.
type ProgressColor string

const (
	ProgressExcellent ProgressColor = "excellent"
	ProgressGood      ProgressColor = "good"
	ProgressModerate  ProgressColor = "moderate"
	ProgressPoor      ProgressColor = "poor"
)

// Details exposes the weighted components of the score, rounded to one
// decimal place.
type Details struct {
	AnsweredWeight float64
	PartialWeight  float64
	TotalWeight    float64
}

// Result is the derived completion of one project. It is a value type and is
// never persisted.
type Result struct {
	Percentage        int
	TotalQuestions    int
	AnsweredQuestions int
	PartiallyAnswered int
	Unanswered        int
	Status            Status
	StatusColor       StatusColor
	ProgressColor     ProgressColor
	WeightedScore     float64
	Details           Details
}

// DefaultResult is returned when no progress data is available.
func DefaultResult() Result {
	return Result{
		Status:        StatusUnknown,
		StatusColor:   ColorGray,
		ProgressColor: ProgressPoor,
	}
}

// Calculate scores r using DefaultPolicy with opts applied. A nil report or a
// report without a question block yields DefaultResult; a project with no
// questions yields status no-questions. Calculate never fails.
func Calculate(r *progress.Report, opts ...Option) Result {
	return NewPolicy(opts...).Calculate(r)
}

// Calculate scores r under p. See the package-level Calculate.
func (p Policy) Calculate(r *progress.Report) Result {
	if r == nil || r.Questions == nil {
		return DefaultResult()
	}
	return p.Score(*r.Questions)
}

// Score scores a breakdown under p. Negative counts are treated as zero.
func (p Policy) Score(b progress.Breakdown) Result {
	total := nonNegative(b.Total)
	if total == 0 {
		res := DefaultResult()
		res.Status = StatusNoQuestions
		return res
	}

	answered := nonNegative(b.Answered)
	partial := nonNegative(b.PartiallyAnswered)
	unanswered := nonNegative(b.Unanswered)

	answeredWeight := decimal.NewFromInt(int64(answered)).Mul(weight(p.AnsweredWeight))
	partialWeight := decimal.NewFromInt(int64(partial)).Mul(weight(p.PartialWeight))
	weighted := answeredWeight.Add(partialWeight)

	raw := weighted.Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(int64(total)))
	percentage := clampPercent(raw.Round(0).IntPart())

	status, color := p.classify(percentage)

	return Result{
		Percentage:        percentage,
		TotalQuestions:    total,
		AnsweredQuestions: answered,
		PartiallyAnswered: partial,
		Unanswered:        unanswered,
		Status:            status,
		StatusColor:       color,
		ProgressColor:     progressColor(percentage),
		WeightedScore:     oneDecimal(weighted),
		Details: Details{
			AnsweredWeight: oneDecimal(answeredWeight),
			PartialWeight:  oneDecimal(partialWeight),
			TotalWeight:    oneDecimal(weighted),
		},
	}
}

// classify walks the status ladder; the first matching threshold wins.
func (p Policy) classify(pct int) (Status, StatusColor) {
	switch {
	case pct >= p.CompletedThreshold:
		return StatusCompleted, ColorGreen
	case pct >= p.ActiveHighThreshold:
		return StatusActive, ColorBlue
	case pct >= p.ActiveLowThreshold:
		return StatusActive, ColorYellow
	default:
		return StatusPending, ColorRed
	}
}

func progressColor(pct int) ProgressColor {
	switch {
	case pct >= excellentBand:
		return ProgressExcellent
	case pct >= goodBand:
		return ProgressGood
	case pct >= moderateBand:
		return ProgressModerate
	default:
		return ProgressPoor
	}
}

func clampPercent(v int64) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return int(v)
	}
}

// weight converts a policy weight to a decimal. NaN and ±Inf weigh nothing;
// decimal cannot represent them.
func weight(w float64) decimal.Decimal {
	if !isFinite(w) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(w)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func oneDecimal(d decimal.Decimal) float64 {
	return d.Round(1).InexactFloat64()
}
