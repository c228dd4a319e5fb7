package completion

import "github.com/shopspring/decimal"

// Entry is one project's contribution to a Summary. Loaded is false when the
// project's progress could not be fetched.
type Entry struct {
	Result Result
	Loaded bool
}

// Summary aggregates completion across a portfolio of projects.
type Summary struct {
	TotalProjects          int
	AverageCompletion      int
	CompletedProjects      int
	ActiveProjects         int
	PendingProjects        int
	TotalQuestions         int
	TotalAnswered          int
	OrganizationEfficiency int
}

// Summarize aggregates entries. Entries that did not load count towards
// TotalProjects and dilute AverageCompletion, but contribute nothing else.
func Summarize(entries []Entry) Summary {
	if len(entries) == 0 {
		return Summary{}
	}

	var (
		sum int
		s   = Summary{TotalProjects: len(entries)}
	)
	for i := range entries {
		e := entries[i]
		if !e.Loaded {
			continue
		}
		sum += e.Result.Percentage
		s.TotalQuestions += e.Result.TotalQuestions
		s.TotalAnswered += e.Result.AnsweredQuestions

		switch e.Result.Status {
		case StatusCompleted:
			s.CompletedProjects++
		case StatusActive:
			s.ActiveProjects++
		case StatusPending:
			s.PendingProjects++
		}
	}

	s.AverageCompletion = roundRatio(int64(sum), int64(len(entries)), 1)
	if s.TotalQuestions > 0 {
		s.OrganizationEfficiency = roundRatio(int64(s.TotalAnswered), int64(s.TotalQuestions), 100)
	}
	return s
}

// roundRatio returns round_half_up(num * scale / den).
func roundRatio(num, den, scale int64) int {
	return int(decimal.NewFromInt(num * scale).Div(decimal.NewFromInt(den)).Round(0).IntPart())
}
