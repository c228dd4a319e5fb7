package discovery

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/discovery-dashboard/internal/domain"
)

// Transcript is meeting text submitted for answer extraction.
type Transcript struct {
	ProjectID int64
	Text      string
}

// Validate checks that the transcript targets a project and carries text.
func (t *Transcript) Validate() error {
	fields := make(map[string]string)

	if t.ProjectID <= 0 {
		fields["project_id"] = fmt.Sprintf("%s, got %d", domain.MsgMustBePositive, t.ProjectID)
	}
	if strings.TrimSpace(t.Text) == "" {
		fields["transcript_text"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// TranscriptResult is the outcome of processing a transcript.
type TranscriptResult struct {
	AnswersFound      int
	FollowupQuestions []Question
	Status            *Status
}

// GenerationResult is the outcome of generating the initial questions for a
// project from its statement of work.
type GenerationResult struct {
	ProjectID             int64
	ProjectName           string
	InitialQuestionsCount int
	Questions             []Question
}
