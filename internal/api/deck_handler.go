package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kirychukyurii/deck-status/internal/dom"
	"github.com/kirychukyurii/deck-status/internal/service"
)

// refresh runs one refresh cycle on doc. The upstream call outlives a
// disconnecting client because the result lands in the session document.
func (h *Handler) refresh(r *http.Request, doc *dom.Document) {
	err := h.updater.Refresh(context.WithoutCancel(r.Context()), doc)
	if errors.Is(err, service.ErrMissingElements) {
		h.logger.Error("page document is incomplete, refresh skipped")
		return
	}
	if err != nil {
		h.logger.Debug("deck refresh rendered an error",
			slog.String("error", err.Error()),
		)
	}
}

// GetDeck handles GET /api/deck
func (h *Handler) GetDeck(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.existingSession(r)
	if !ok {
		h.respondError(w, http.StatusNotFound, "no deck session")
		return
	}

	snapshot, err := h.updater.Snapshot(doc)
	if err != nil {
		h.logger.Error("failed to read deck snapshot",
			slog.String("error", err.Error()),
		)
		h.respondError(w, http.StatusInternalServerError, "failed to read deck state")
		return
	}

	h.respondJSON(w, http.StatusOK, snapshot)
}

// RefreshDeck handles POST /api/deck/refresh
func (h *Handler) RefreshDeck(w http.ResponseWriter, r *http.Request) {
	doc := h.pageSession(w, r)
	h.refresh(r, doc)

	snapshot, err := h.updater.Snapshot(doc)
	if err != nil {
		h.logger.Error("failed to read deck snapshot",
			slog.String("error", err.Error()),
		)
		h.respondError(w, http.StatusInternalServerError, "failed to read deck state")
		return
	}

	h.respondJSON(w, http.StatusOK, snapshot)
}
