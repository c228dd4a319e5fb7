package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/discovery-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/discovery-dashboard/internal/ports"
)

// SettingsHandler handles the dashboard settings endpoints.
type SettingsHandler struct {
	svc ports.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler with the given service port.
func NewSettingsHandler(svc ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// GetSettings handles GET /api/v1/settings.
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.GetSettings(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSettingsResponse(s))
}

// UpdateSettings handles PATCH /api/v1/settings.
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateSettingsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateSettings(r.Context(), req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSettingsResponse(updated))
}
