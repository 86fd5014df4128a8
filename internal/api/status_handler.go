package api

import (
	"net/http"

	"github.com/kirychukyurii/deck-status/internal/model"
)

// GetStatus handles GET /api/status
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	state := h.health.State()

	h.respondJSON(w, http.StatusOK, model.ServiceStatus{
		DeckAPI:             h.deckAPI,
		HealthCheckEnabled:  state.Enabled,
		UpstreamHealthy:     state.Healthy,
		ConsecutiveFailures: state.ConsecutiveFailures,
		LastCheck:           state.LastCheck,
		Sessions:            h.sessions.Count(),
	})
}
