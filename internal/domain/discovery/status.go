package discovery

import "github.com/jsamuelsen11/discovery-dashboard/internal/domain/progress"

// Status is the backend's discovery status for a project.
type Status struct {
	ProjectID         int64
	TotalQuestions    int
	QuestionStatus    map[QuestionStatus]int
	TranscriptCount   int
	DiscoveryComplete bool
}

// Breakdown converts the status counts into a progress breakdown.
func (s *Status) Breakdown() progress.Breakdown {
	return progress.Breakdown{
		Total:             s.TotalQuestions,
		Answered:          s.QuestionStatus[QuestionAnswered],
		PartiallyAnswered: s.QuestionStatus[QuestionPartiallyAnswered],
		Unanswered:        s.QuestionStatus[QuestionUnanswered],
	}
}

// Report converts the status into a progress report.
func (s *Status) Report() *progress.Report {
	b := s.Breakdown()
	return &progress.Report{
		ProjectID:         s.ProjectID,
		Questions:         &b,
		TranscriptCount:   s.TranscriptCount,
		DiscoveryComplete: s.DiscoveryComplete,
	}
}

// SOWSummary summarizes the analysed statement of work.
type SOWSummary struct {
	SectionsCount     int
	RequirementsCount int
	InScopeItems      int
	OutOfScopeItems   int
	UnclearItems      int
}

// TranscriptInfo describes a transcript submitted for a project.
type TranscriptInfo struct {
	ID          int64
	MeetingDate string
	Text        string
	Processed   bool
}

// NewInformation is a topic raised in a transcript that no existing question
// covers.
type NewInformation struct {
	ID           int64
	TranscriptID *int64
	Topic        string
	Excerpt      string
	Impact       string
	Priority     int
	Status       string
}

// Report is the full discovery report for one project.
type Report struct {
	Project        Project
	Status         *Status
	SOW            SOWSummary
	Questions      progress.Breakdown
	QuestionList   []Question
	Transcripts    []TranscriptInfo
	NewInformation []NewInformation
}

// Progress returns the report's question counts as a progress report.
func (r *Report) Progress() *progress.Report {
	q := r.Questions
	pr := &progress.Report{ProjectID: r.Project.ID, Questions: &q, TranscriptCount: len(r.Transcripts)}
	if r.Status != nil {
		pr.DiscoveryComplete = r.Status.DiscoveryComplete
	}
	return pr
}
