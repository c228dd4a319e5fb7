package ports

import (
	"context"

	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/completion"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/discovery"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/progress"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/settings"
)

// DiscoveryService defines the service port for discovery project operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every completion it returns is computed by the completion package under the
// settings policy plus any per-call options.
type DiscoveryService interface {
	// ListProjects returns every project with its completion. Uses partial
	// success semantics: a project whose progress cannot be fetched is
	// returned with Loaded=false and the default result instead of failing
	// the listing. Returns a hard error only if the project list itself fails.
	ListProjects(ctx context.Context, opts ...completion.Option) ([]ProjectCompletion, error)

	// Summary aggregates ListProjects into organization-wide statistics.
	Summary(ctx context.Context, opts ...completion.Option) (*completion.Summary, error)

	// GetProjectCompletion returns the completion of a single project.
	// Returns domain.ErrNotFound if the project does not exist.
	GetProjectCompletion(ctx context.Context, projectID int64, opts ...completion.Option) (*ProjectCompletion, error)

	// GetDiscoveryStatus returns the backend's discovery status.
	GetDiscoveryStatus(ctx context.Context, projectID int64) (*discovery.Status, error)

	// ListQuestions returns the project's questions.
	// Returns domain.ErrValidation if filter.Status is set but unknown.
	ListQuestions(ctx context.Context, projectID int64, filter discovery.QuestionFilter) ([]discovery.Question, error)

	// GenerateQuestions triggers initial question generation.
	GenerateQuestions(ctx context.Context, projectID int64) (*discovery.GenerationResult, error)

	// ProcessTranscript submits a transcript for answer extraction.
	// Returns domain.ErrValidation if the transcript fails validation.
	ProcessTranscript(ctx context.Context, transcript *discovery.Transcript) (*discovery.TranscriptResult, error)

	// GetReport returns the discovery report with its completion.
	GetReport(ctx context.Context, projectID int64, opts ...completion.Option) (*ProjectReport, error)
}

// CompletionService defines the service port for stateless completion
// scoring of raw progress payloads.
type CompletionService interface {
	// Evaluate validates and scores a raw progress payload. A bad payload is
	// never an error: count anomalies are scored as backend data would be,
	// a payload without a question block scores as the default result, and
	// the problems are listed in Evaluation.Validation.
	Evaluate(ctx context.Context, payload []byte, opts ...completion.Option) (*Evaluation, error)

	// Policy returns the effective scoring policy: defaults, then the stored
	// settings, then opts.
	Policy(ctx context.Context, opts ...completion.Option) (completion.Policy, error)
}

// SettingsService defines the service port for dashboard settings.
type SettingsService interface {
	// GetSettings returns the current settings.
	GetSettings(ctx context.Context) (settings.Settings, error)

	// UpdateSettings applies a partial update.
	// Returns domain.ErrValidation if the result is invalid.
	UpdateSettings(ctx context.Context, patch settings.Patch) (settings.Settings, error)
}

// ProjectCompletion pairs a project with its computed completion.
// Err holds the progress fetch failure when Loaded is false.
type ProjectCompletion struct {
	Project    discovery.Project
	Completion completion.Result
	Loaded     bool
	Err        error
}

// ProjectReport pairs a discovery report with its computed completion.
type ProjectReport struct {
	Report     *discovery.Report
	Completion completion.Result
}

// Evaluation is the outcome of scoring a raw payload.
type Evaluation struct {
	Report     *progress.Report
	Completion completion.Result
	Policy     completion.Policy
	Validation progress.Validation
}
