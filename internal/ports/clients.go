package ports

import (
	"context"

	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/discovery"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/progress"
)

// DiscoveryClient defines the client port for the downstream discovery
// backend. Implemented by the ACL adapter; called by the application layer.
// Methods map 1:1 to backend endpoints using domain terminology.
type DiscoveryClient interface {
	// ListProjects returns every project the backend knows about.
	ListProjects(ctx context.Context) ([]discovery.Project, error)

	// GetProgress returns the question status counts for a project.
	// The returned report has nil Questions when the backend sent none.
	// Returns domain.ErrNotFound if the project does not exist.
	GetProgress(ctx context.Context, projectID int64) (*progress.Report, error)

	// GetDiscoveryStatus returns the backend's discovery status for a project.
	GetDiscoveryStatus(ctx context.Context, projectID int64) (*discovery.Status, error)

	// ListQuestions returns the project's questions, filtered by status when
	// filter.Status is set.
	ListQuestions(ctx context.Context, projectID int64, filter discovery.QuestionFilter) ([]discovery.Question, error)

	// GenerateQuestions asks the backend to generate the initial questions
	// from the project's statement of work.
	GenerateQuestions(ctx context.Context, projectID int64) (*discovery.GenerationResult, error)

	// ProcessTranscript submits a transcript for answer extraction.
	ProcessTranscript(ctx context.Context, transcript *discovery.Transcript) (*discovery.TranscriptResult, error)

	// GetReport returns the full discovery report for a project.
	GetReport(ctx context.Context, projectID int64) (*discovery.Report, error)
}

// ProgressDecoder turns a raw progress payload into a report. Implemented by
// the ACL; called by the completion service for payloads that did not come
// through [DiscoveryClient].
type ProgressDecoder interface {
	// Decode parses payload. Structural problems are reported in the returned
	// Validation, never as an error. The report is nil when the payload is not
	// usable at all; its Questions field is nil when the question block is
	// missing.
	Decode(payload []byte) (*progress.Report, progress.Validation)
}
