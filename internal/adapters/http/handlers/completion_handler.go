package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/discovery-dashboard/internal/ports"
)

// CompletionHandler handles stateless completion scoring.
type CompletionHandler struct {
	svc ports.CompletionService
}

// NewCompletionHandler creates a new CompletionHandler with the given service port.
func NewCompletionHandler(svc ports.CompletionService) *CompletionHandler {
	return &CompletionHandler{svc: svc}
}

// Evaluate handles POST /api/v1/completion. The body is a raw progress
// payload; a malformed payload is reported in the response's validation
// block with status 200, not as an error response.
func (h *CompletionHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	opts, ok := policyOptions(w, r)
	if !ok {
		return
	}
	body, ok := readBody(w, r)
	if !ok {
		return
	}

	eval, err := h.svc.Evaluate(r.Context(), body, opts...)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEvaluationResponse(eval))
}

// Policy handles GET /api/v1/completion/policy.
func (h *CompletionHandler) Policy(w http.ResponseWriter, r *http.Request) {
	opts, ok := policyOptions(w, r)
	if !ok {
		return
	}

	policy, err := h.svc.Policy(r.Context(), opts...)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPolicyResponse(policy))
}
