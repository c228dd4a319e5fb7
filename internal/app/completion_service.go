package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/completion"
	"github.com/jsamuelsen11/discovery-dashboard/internal/ports"
)

// Compile-time check that CompletionService implements ports.CompletionService.
var _ ports.CompletionService = (*CompletionService)(nil)

// CompletionService scores raw progress payloads that did not come from the
// discovery backend, such as a payload posted by a client or read by the CLI.
type CompletionService struct {
	decoder  ports.ProgressDecoder
	policies *Policies
	metrics  completionRecorder
	logger   *slog.Logger
}

// NewCompletionService creates a CompletionService. metrics may be nil.
func NewCompletionService(
	decoder ports.ProgressDecoder,
	policies *Policies,
	metrics completionRecorder,
	logger *slog.Logger,
) *CompletionService {
	return &CompletionService{
		decoder:  decoder,
		policies: policies,
		metrics:  metrics,
		logger:   logger,
	}
}

// Evaluate decodes and scores payload. The payload is scored the same way
// as backend progress: negative counts count as zero and a missing total as
// no questions. Only a payload without a usable question block scores as
// the default result. Validation findings are returned next to the result;
// only an invalid policy is an error.
func (s *CompletionService) Evaluate(ctx context.Context, payload []byte, opts ...completion.Option) (*ports.Evaluation, error) {
	policy, err := s.Policy(ctx, opts...)
	if err != nil {
		return nil, err
	}

	report, validation := s.decoder.Decode(payload)
	result := policy.Calculate(report)

	if !validation.Valid() {
		s.logger.WarnContext(ctx, "progress payload failed validation",
			slog.Any("errors", validation.Errors),
		)
	}
	if len(validation.Warnings) > 0 {
		s.logger.WarnContext(ctx, "progress payload is inconsistent",
			slog.Any("warnings", validation.Warnings),
		)
	}

	if s.metrics != nil {
		s.metrics.RecordCompletion(ctx, result.Status.String())
	}

	return &ports.Evaluation{
		Report:     report,
		Completion: result,
		Policy:     policy,
		Validation: validation,
	}, nil
}

// Policy returns the effective policy for opts.
func (s *CompletionService) Policy(ctx context.Context, opts ...completion.Option) (completion.Policy, error) {
	return s.policies.Resolve(ctx, opts...)
}
