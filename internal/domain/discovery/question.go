package discovery

import "github.com/jsamuelsen11/discovery-dashboard/internal/domain/progress"

// QuestionStatus is the answer state of a discovery question.
type QuestionStatus string

const (
	QuestionAnswered          QuestionStatus = "answered"
	QuestionPartiallyAnswered QuestionStatus = "partially_answered"
	QuestionUnanswered        QuestionStatus = "unanswered"
)

// IsValid returns true if the status is one of the defined constants.
func (s QuestionStatus) IsValid() bool {
	switch s {
	case QuestionAnswered, QuestionPartiallyAnswered, QuestionUnanswered:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s QuestionStatus) String() string {
	return string(s)
}

// Answer is the backend's extracted answer to a question.
type Answer struct {
	Text       string
	Confidence float64
}

// Question is a discovery question generated from a statement of work or
// raised as a follow-up from a transcript.
type Question struct {
	ID        int64
	ProjectID int64
	ParentID  *int64
	Text      string
	Context   string
	Source    string
	Priority  int
	Status    QuestionStatus
	Answer    *Answer
}

// QuestionFilter narrows a question listing. A zero Status matches all.
type QuestionFilter struct {
	Status QuestionStatus
}

// Matches reports whether q passes the filter.
func (f QuestionFilter) Matches(q Question) bool {
	return f.Status == "" || q.Status == f.Status
}

// Tally counts questions by status. Unknown statuses only count towards
// Total, which keeps the breakdown's sum check meaningful.
func Tally(questions []Question) progress.Breakdown {
	b := progress.Breakdown{Total: len(questions)}
	for i := range questions {
		switch questions[i].Status {
		case QuestionAnswered:
			b.Answered++
		case QuestionPartiallyAnswered:
			b.PartiallyAnswered++
		case QuestionUnanswered:
			b.Unanswered++
		}
	}
	return b
}
