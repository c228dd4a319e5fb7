package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/clients/acl/progress"
	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/clients/acl/project"
	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/clients/acl/question"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/discovery"
	progressdomain "github.com/jsamuelsen11/discovery-dashboard/internal/domain/progress"
	"github.com/jsamuelsen11/discovery-dashboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/discovery-dashboard/internal/ports"
)

// Compile-time interface check.
var _ ports.DiscoveryClient = (*DiscoveryClient)(nil)

// DiscoveryClient is the outbound adapter for the discovery backend. It
// implements [ports.DiscoveryClient].
//
// All methods translate between domain types and the backend's wire shapes
// via the translators in sub-packages [progress], [project] and [question].
// HTTP errors are mapped to domain errors by [TranslateHTTPError]; 200
// responses carrying an error envelope are mapped by [TranslateEnvelopeError].
//
// The underlying [httpclient.Client] provides circuit breaking, rate
// limiting, retry with exponential backoff and OpenTelemetry tracing for
// every outbound call.
type DiscoveryClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewDiscoveryClient creates a DiscoveryClient that sends requests through
// the given [httpclient.Client], whose BaseURL points at the backend root
// (e.g. "http://localhost:4000").
func NewDiscoveryClient(client *httpclient.Client, logger *slog.Logger) *DiscoveryClient {
	return &DiscoveryClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// ListProjects fetches GET /list_projects. The backend lists names only;
// IDs are derived by [discovery.ProjectFromName]. A "warning" response with
// an error string means the backend failed to read its store.
func (c *DiscoveryClient) ListProjects(ctx context.Context) ([]discovery.Project, error) {
	var dto project.ProjectListResponseDTO
	if err := c.req.Get(ctx, "/list_projects", &dto); err != nil {
		return nil, err
	}
	if dto.Status == "warning" && dto.Error != "" {
		return nil, fmt.Errorf("listing projects: %s: %w", dto.Error, domain.ErrUnavailable)
	}
	return project.ToDomainProjects(dto), nil
}

// GetProgress fetches GET /project_progress/{id}. A response without a
// question block yields a report with nil Questions.
func (c *DiscoveryClient) GetProgress(ctx context.Context, projectID int64) (*progressdomain.Report, error) {
	path := fmt.Sprintf("/project_progress/%d", projectID)

	var dto progress.ProgressDTO
	if err := c.req.Get(ctx, path, &dto); err != nil {
		return nil, err
	}
	return progress.ToDomainReport(&dto, projectID), nil
}

// GetDiscoveryStatus fetches GET /discovery_status/{id}.
func (c *DiscoveryClient) GetDiscoveryStatus(ctx context.Context, projectID int64) (*discovery.Status, error) {
	path := fmt.Sprintf("/discovery_status/%d", projectID)

	var dto project.StatusResponseDTO
	if err := c.req.Get(ctx, path, &dto); err != nil {
		return nil, err
	}
	if dto.DiscoveryStatus == nil {
		return nil, fmt.Errorf("discovery status for project %d missing from response: %w", projectID, domain.ErrUnavailable)
	}
	return question.ToDomainStatus(dto.DiscoveryStatus), nil
}

// ListQuestions fetches GET /get_questions/{id}, adding ?status= when the
// filter names one.
func (c *DiscoveryClient) ListQuestions(ctx context.Context, projectID int64, filter discovery.QuestionFilter) ([]discovery.Question, error) {
	path := fmt.Sprintf("/get_questions/%d", projectID) + filterQuery(filter)

	var dto question.QuestionListResponseDTO
	if err := c.req.Get(ctx, path, &dto); err != nil {
		return nil, err
	}
	return question.ToDomainQuestions(dto.Questions), nil
}

// GenerateQuestions sends POST /generate_questions_by_id. Generation runs a
// model on the backend and can take minutes; the caller's context and the
// client timeout bound it.
func (c *DiscoveryClient) GenerateQuestions(ctx context.Context, projectID int64) (*discovery.GenerationResult, error) {
	reqDTO := question.GenerateRequestDTO{ProjectID: projectID}

	var respDTO question.GenerateResponseDTO
	if err := c.req.Post(ctx, "/generate_questions_by_id", reqDTO, &respDTO); err != nil {
		return nil, err
	}
	return question.ToDomainGeneration(&respDTO), nil
}

// ProcessTranscript sends POST /process_transcript.
func (c *DiscoveryClient) ProcessTranscript(ctx context.Context, transcript *discovery.Transcript) (*discovery.TranscriptResult, error) {
	reqDTO := question.ToTranscriptRequest(transcript)

	var respDTO question.TranscriptResponseDTO
	if err := c.req.Post(ctx, "/process_transcript", reqDTO, &respDTO); err != nil {
		return nil, err
	}
	return question.ToDomainTranscriptResult(&respDTO), nil
}

// GetReport fetches GET /discovery_report/{id}.
func (c *DiscoveryClient) GetReport(ctx context.Context, projectID int64) (*discovery.Report, error) {
	path := fmt.Sprintf("/discovery_report/%d", projectID)

	var dto project.ReportDTO
	if err := c.req.Get(ctx, path, &dto); err != nil {
		return nil, err
	}
	return project.ToDomainReport(&dto), nil
}

// filterQuery builds a query string from a QuestionFilter.
// Returns "" if the filter is empty.
func filterQuery(f discovery.QuestionFilter) string {
	if f.Status == "" {
		return ""
	}
	v := url.Values{}
	v.Set("status", f.Status.String())
	return "?" + v.Encode()
}
