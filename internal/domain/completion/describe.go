package completion

import (
	"fmt"
	"strconv"
	"strings"
)

// Describe returns a one-line human summary of r. The wording follows fixed
// bands (95, 70, 40, 10) rather than the policy thresholds.
func Describe(r Result) string {
	switch {
	case r.TotalQuestions == 0:
		return "No questions available yet"
	case r.Percentage >= 95:
		return fmt.Sprintf("Discovery complete! %d/%d questions answered", r.AnsweredQuestions, r.TotalQuestions)
	case r.Percentage >= 70:
		msg := fmt.Sprintf("Great progress! %d answered", r.AnsweredQuestions)
		if r.PartiallyAnswered > 0 {
			msg += fmt.Sprintf(", %d partial", r.PartiallyAnswered)
		}
		return msg
	case r.Percentage >= 40:
		return fmt.Sprintf("Making progress: %d/%d questions completed", r.AnsweredQuestions, r.TotalQuestions)
	case r.Percentage >= 10:
		return fmt.Sprintf("Getting started: %d questions answered so far", r.AnsweredQuestions)
	default:
		return fmt.Sprintf("Just beginning: %d questions ready for discovery", r.TotalQuestions)
	}
}

// DetailedBreakdown renders the counts and weights of r as newline-separated
// lines, suitable for a tooltip or terminal output.
func DetailedBreakdown(r Result) string {
	lines := []string{
		fmt.Sprintf("Total Questions: %d", r.TotalQuestions),
		fmt.Sprintf("Fully Answered: %d (weight: %s)", r.AnsweredQuestions, formatWeight(r.Details.AnsweredWeight)),
		fmt.Sprintf("Partially Answered: %d (weight: %s)", r.PartiallyAnswered, formatWeight(r.Details.PartialWeight)),
		fmt.Sprintf("Unanswered: %d", r.Unanswered),
		fmt.Sprintf("Weighted Score: %s/%d", formatWeight(r.Details.TotalWeight), r.TotalQuestions),
	}
	return strings.Join(lines, "\n")
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', 1, 64)
}
