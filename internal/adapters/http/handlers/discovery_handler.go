// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/discovery"
	"github.com/jsamuelsen11/discovery-dashboard/internal/ports"
)

// DiscoveryHandler handles HTTP requests for discovery projects, their
// completion, questions, transcripts and reports.
type DiscoveryHandler struct {
	svc ports.DiscoveryService
}

// NewDiscoveryHandler creates a new DiscoveryHandler with the given service port.
func NewDiscoveryHandler(svc ports.DiscoveryService) *DiscoveryHandler {
	return &DiscoveryHandler{svc: svc}
}

// ListProjects handles GET /api/v1/projects.
func (h *DiscoveryHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	opts, ok := policyOptions(w, r)
	if !ok {
		return
	}

	projects, err := h.svc.ListProjects(r.Context(), opts...)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectListResponse(projects))
}

// Summary handles GET /api/v1/projects/summary.
func (h *DiscoveryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	opts, ok := policyOptions(w, r)
	if !ok {
		return
	}

	summary, err := h.svc.Summary(r.Context(), opts...)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSummaryResponse(summary))
}

// GetCompletion handles GET /api/v1/projects/{id}/completion.
func (h *DiscoveryHandler) GetCompletion(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	opts, ok := policyOptions(w, r)
	if !ok {
		return
	}

	pc, err := h.svc.GetProjectCompletion(r.Context(), id, opts...)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	resp := dto.ToProjectResponse(pc)
	resp.Completion = dto.ToDescribedCompletionResponse(pc.Completion)
	writeJSON(w, http.StatusOK, resp)
}

// GetStatus handles GET /api/v1/projects/{id}/status.
func (h *DiscoveryHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	status, err := h.svc.GetDiscoveryStatus(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToStatusResponse(status))
}

// ListQuestions handles GET /api/v1/projects/{id}/questions.
// Supports an optional ?status= filter.
func (h *DiscoveryHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	filter := discovery.QuestionFilter{Status: discovery.QuestionStatus(r.URL.Query().Get("status"))}
	if filter.Status != "" && !filter.Status.IsValid() {
		dto.WriteErrorResponse(w, r,
			domain.Invalid("query.status", "must be one of answered, partially_answered, unanswered"))
		return
	}

	questions, err := h.svc.ListQuestions(r.Context(), id, filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToQuestionListResponse(questions))
}

// GenerateQuestions handles POST /api/v1/projects/{id}/questions/generate.
func (h *DiscoveryHandler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	result, err := h.svc.GenerateQuestions(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToGenerationResponse(result))
}

// ProcessTranscript handles POST /api/v1/projects/{id}/transcripts.
func (h *DiscoveryHandler) ProcessTranscript(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.TranscriptRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.svc.ProcessTranscript(r.Context(), &discovery.Transcript{
		ProjectID: id,
		Text:      req.TranscriptText,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTranscriptResultResponse(result))
}

// GetReport handles GET /api/v1/projects/{id}/report.
func (h *DiscoveryHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	opts, ok := policyOptions(w, r)
	if !ok {
		return
	}

	report, err := h.svc.GetReport(r.Context(), id, opts...)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToReportResponse(report))
}
