// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/discovery-dashboard/internal/app/fanout"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/completion"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/discovery"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/progress"
	"github.com/jsamuelsen11/discovery-dashboard/internal/ports"
)

// Compile-time check that DiscoveryService implements ports.DiscoveryService.
var _ ports.DiscoveryService = (*DiscoveryService)(nil)

// DefaultMaxConcurrency bounds the per-project progress fetches of
// ListProjects when no limit is configured.
const DefaultMaxConcurrency = 8

// DiscoveryService implements ports.DiscoveryService by orchestrating calls to
// the discovery backend through the DiscoveryClient port and scoring the
// results with the completion package. It handles validation, structured
// logging, and fan-out but holds no scoring rules of its own.
type DiscoveryService struct {
	client         ports.DiscoveryClient
	policies       *Policies
	metrics        completionRecorder
	maxConcurrency int
	logger         *slog.Logger
}

// NewDiscoveryService creates a DiscoveryService. maxConcurrency bounds the
// concurrent progress fetches of ListProjects; values below 1 use
// DefaultMaxConcurrency. metrics may be nil.
func NewDiscoveryService(
	client ports.DiscoveryClient,
	policies *Policies,
	metrics completionRecorder,
	maxConcurrency int,
	logger *slog.Logger,
) *DiscoveryService {
	if maxConcurrency < 1 {
		maxConcurrency = DefaultMaxConcurrency
	}
	return &DiscoveryService{
		client:         client,
		policies:       policies,
		metrics:        metrics,
		maxConcurrency: maxConcurrency,
		logger:         logger,
	}
}

// ListProjects lists all projects and scores each one. Progress is fetched
// concurrently; a project whose progress cannot be fetched keeps the default
// result with Loaded=false, and the listing still succeeds.
func (s *DiscoveryService) ListProjects(ctx context.Context, opts ...completion.Option) ([]ports.ProjectCompletion, error) {
	s.logger.InfoContext(ctx, "listing projects")

	policy, err := s.policies.Resolve(ctx, opts...)
	if err != nil {
		return nil, err
	}

	projects, err := s.client.ListProjects(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list projects",
			slog.String("operation", "ListProjects"),
			slog.Any("error", err),
		)
		return nil, err
	}

	results := fanout.Run(ctx, s.maxConcurrency, projects,
		func(ctx context.Context, p discovery.Project) (*progress.Report, error) {
			return s.client.GetProgress(ctx, p.ID)
		},
	)

	out := make([]ports.ProjectCompletion, len(projects))
	failed := 0
	for i, r := range results {
		pc := ports.ProjectCompletion{
			Project:    projects[i],
			Completion: completion.DefaultResult(),
		}
		if r.Err != nil {
			failed++
			pc.Err = r.Err
			s.logger.WarnContext(ctx, "failed to fetch project progress",
				slog.String("operation", "ListProjects"),
				slog.Int64("project_id", projects[i].ID),
				slog.Any("error", r.Err),
			)
		} else {
			pc.Completion = s.score(ctx, policy, r.Value)
			pc.Loaded = true
		}
		out[i] = pc
	}

	if failed > 0 {
		s.logger.WarnContext(ctx, "listed projects with missing progress",
			slog.Int("total", len(projects)),
			slog.Int("failed", failed),
		)
	}
	return out, nil
}

// Summary aggregates the project listing into organization statistics.
func (s *DiscoveryService) Summary(ctx context.Context, opts ...completion.Option) (*completion.Summary, error) {
	projects, err := s.ListProjects(ctx, opts...)
	if err != nil {
		return nil, err
	}

	entries := make([]completion.Entry, len(projects))
	for i, p := range projects {
		entries[i] = completion.Entry{Result: p.Completion, Loaded: p.Loaded}
	}
	summary := completion.Summarize(entries)
	return &summary, nil
}

// GetProjectCompletion fetches one project's progress and scores it.
func (s *DiscoveryService) GetProjectCompletion(ctx context.Context, projectID int64, opts ...completion.Option) (*ports.ProjectCompletion, error) {
	s.logger.InfoContext(ctx, "scoring project", slog.Int64("project_id", projectID))

	if err := validateProjectID(projectID); err != nil {
		return nil, err
	}

	policy, err := s.policies.Resolve(ctx, opts...)
	if err != nil {
		return nil, err
	}

	report, err := s.client.GetProgress(ctx, projectID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch project progress",
			slog.String("operation", "GetProjectCompletion"),
			slog.Int64("project_id", projectID),
			slog.Any("error", err),
		)
		return nil, err
	}

	if v := report.Validate(); len(v.Warnings) > 0 || !v.Valid() {
		s.logger.WarnContext(ctx, "inconsistent progress data",
			slog.Int64("project_id", projectID),
			slog.Any("errors", v.Errors),
			slog.Any("warnings", v.Warnings),
		)
	}

	return &ports.ProjectCompletion{
		Project:    discovery.Project{ID: projectID},
		Completion: s.score(ctx, policy, report),
		Loaded:     true,
	}, nil
}

// GetDiscoveryStatus returns the backend's discovery status.
func (s *DiscoveryService) GetDiscoveryStatus(ctx context.Context, projectID int64) (*discovery.Status, error) {
	s.logger.InfoContext(ctx, "fetching discovery status", slog.Int64("project_id", projectID))

	if err := validateProjectID(projectID); err != nil {
		return nil, err
	}

	status, err := s.client.GetDiscoveryStatus(ctx, projectID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch discovery status",
			slog.String("operation", "GetDiscoveryStatus"),
			slog.Int64("project_id", projectID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return status, nil
}

// ListQuestions returns the project's questions, optionally filtered.
func (s *DiscoveryService) ListQuestions(ctx context.Context, projectID int64, filter discovery.QuestionFilter) ([]discovery.Question, error) {
	s.logger.InfoContext(ctx, "listing questions",
		slog.Int64("project_id", projectID),
		slog.String("status", filter.Status.String()),
	)

	if err := validateProjectID(projectID); err != nil {
		return nil, err
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domain.Invalid("status", "must be one of answered, partially_answered, unanswered")
	}

	questions, err := s.client.ListQuestions(ctx, projectID, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list questions",
			slog.String("operation", "ListQuestions"),
			slog.Int64("project_id", projectID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return questions, nil
}

// GenerateQuestions triggers initial question generation for a project.
func (s *DiscoveryService) GenerateQuestions(ctx context.Context, projectID int64) (*discovery.GenerationResult, error) {
	s.logger.InfoContext(ctx, "generating questions", slog.Int64("project_id", projectID))

	if err := validateProjectID(projectID); err != nil {
		return nil, err
	}

	result, err := s.client.GenerateQuestions(ctx, projectID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to generate questions",
			slog.String("operation", "GenerateQuestions"),
			slog.Int64("project_id", projectID),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "generated questions",
		slog.Int64("project_id", projectID),
		slog.Int("count", result.InitialQuestionsCount),
	)
	return result, nil
}

// ProcessTranscript validates and submits a transcript.
func (s *DiscoveryService) ProcessTranscript(ctx context.Context, transcript *discovery.Transcript) (*discovery.TranscriptResult, error) {
	s.logger.InfoContext(ctx, "processing transcript",
		slog.Int64("project_id", transcript.ProjectID),
		slog.Int("length", len(transcript.Text)),
	)

	if err := transcript.Validate(); err != nil {
		return nil, err
	}

	result, err := s.client.ProcessTranscript(ctx, transcript)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to process transcript",
			slog.String("operation", "ProcessTranscript"),
			slog.Int64("project_id", transcript.ProjectID),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "processed transcript",
		slog.Int64("project_id", transcript.ProjectID),
		slog.Int("answers_found", result.AnswersFound),
		slog.Int("followup_questions", len(result.FollowupQuestions)),
	)
	return result, nil
}

// GetReport returns the discovery report scored under the effective policy.
func (s *DiscoveryService) GetReport(ctx context.Context, projectID int64, opts ...completion.Option) (*ports.ProjectReport, error) {
	s.logger.InfoContext(ctx, "fetching discovery report", slog.Int64("project_id", projectID))

	if err := validateProjectID(projectID); err != nil {
		return nil, err
	}

	policy, err := s.policies.Resolve(ctx, opts...)
	if err != nil {
		return nil, err
	}

	report, err := s.client.GetReport(ctx, projectID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch discovery report",
			slog.String("operation", "GetReport"),
			slog.Int64("project_id", projectID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return &ports.ProjectReport{
		Report:     report,
		Completion: s.score(ctx, policy, report.Progress()),
	}, nil
}

// score computes the completion and records it.
func (s *DiscoveryService) score(ctx context.Context, policy completion.Policy, report *progress.Report) completion.Result {
	result := policy.Calculate(report)
	if s.metrics != nil {
		s.metrics.RecordCompletion(ctx, result.Status.String())
	}
	return result
}

func validateProjectID(id int64) error {
	if id <= 0 {
		return domain.Invalid("project_id", domain.MsgMustBePositive)
	}
	return nil
}
