// Package progress defines the per-project question status counts reported by
// the discovery backend.
package progress

import "fmt"

// Breakdown holds the number of discovery questions in each answer state.
// Answered + PartiallyAnswered + Unanswered is expected to equal Total, but a
// mismatch is tolerated and surfaced only as a validation warning.
type Breakdown struct {
	Total             int
	Answered          int
	PartiallyAnswered int
	Unanswered        int
}

// Report is a progress snapshot for a single project. Questions is nil when
// the backend response carried no question block.
type Report struct {
	ProjectID         int64
	Questions         *Breakdown
	TranscriptCount   int
	DiscoveryComplete bool
}

// Validation collects problems found in a progress payload. Errors make the
// payload unusable for display; Warnings flag inconsistencies the calculator
// tolerates.
type Validation struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were recorded.
func (v Validation) Valid() bool {
	return len(v.Errors) == 0
}

// Merge appends the findings of other to v.
func (v Validation) Merge(other Validation) Validation {
	v.Errors = append(v.Errors, other.Errors...)
	v.Warnings = append(v.Warnings, other.Warnings...)
	return v
}

// Sum returns the total of the three status counts.
func (b Breakdown) Sum() int {
	return b.Answered + b.PartiallyAnswered + b.Unanswered
}

// Validate checks the counts for negative values and for a status sum that
// disagrees with Total.
func (b Breakdown) Validate() Validation {
	var v Validation

	if b.Total < 0 {
		v.Errors = append(v.Errors, fmt.Sprintf("total must not be negative, got %d", b.Total))
	}
	counts := []struct {
		name  string
		value int
	}{
		{"answered", b.Answered},
		{"partially_answered", b.PartiallyAnswered},
		{"unanswered", b.Unanswered},
	}
	for _, c := range counts {
		if c.value < 0 {
			v.Errors = append(v.Errors, fmt.Sprintf("%s count must not be negative, got %d", c.name, c.value))
		}
	}

	if sum := b.Sum(); sum != b.Total {
		v.Warnings = append(v.Warnings,
			fmt.Sprintf("status counts (%d) don't match total questions (%d)", sum, b.Total))
	}
	return v
}

// Validate checks that the report carries a question block and that the
// block itself is consistent. A nil report is reported as an error.
func (r *Report) Validate() Validation {
	if r == nil {
		return Validation{Errors: []string{"no progress data provided"}}
	}
	if r.Questions == nil {
		return Validation{Errors: []string{"missing questions data"}}
	}
	return r.Questions.Validate()
}
