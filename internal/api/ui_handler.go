package api

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/kirychukyurii/deck-status/internal/dom"
	"github.com/kirychukyurii/deck-status/ui"
)

// pageView is the data the index template renders
type pageView struct {
	BasePath       string
	Remaining      string
	ShuffleStatus  string
	CardClasses    []string
	ButtonLabel    string
	ButtonDisabled bool
	ErrorText      string
	ErrorDisplay   string
}

// ServePage handles GET / (page load) and POST /refresh (the refresh button).
// Both run one refresh cycle and render the result.
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	doc := h.pageSession(w, r)
	h.refresh(r, doc)
	h.renderPage(w, doc)
}

// ServeStatic returns a handler that serves the embedded static assets
func (h *Handler) ServeStatic() http.Handler {
	fsys, err := ui.GetFileSystem()
	if err != nil {
		h.logger.Error("failed to get UI filesystem", "error", err.Error())
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "UI not available", http.StatusNotFound)
		})
	}

	// chi.Mount doesn't strip the base path, so strip it together with /static
	return http.StripPrefix(h.basePath+"/static/", http.FileServer(fsys))
}

// renderPage writes the document as HTML
func (h *Handler) renderPage(w http.ResponseWriter, doc *dom.Document) {
	snapshot, err := h.updater.Snapshot(doc)
	if err != nil {
		h.logger.Error("failed to read deck snapshot",
			slog.String("error", err.Error()),
		)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	view := pageView{
		BasePath:       h.basePath,
		Remaining:      snapshot.Remaining,
		ShuffleStatus:  snapshot.ShuffleStatus,
		ButtonLabel:    snapshot.ButtonLabel,
		ButtonDisabled: !snapshot.ButtonEnabled,
		ErrorText:      snapshot.Error,
		ErrorDisplay:   dom.DisplayNone,
	}
	if snapshot.Loading {
		view.CardClasses = []string{dom.ClassLoading}
	}
	if snapshot.Error != "" {
		view.ErrorDisplay = dom.DisplayBlock
	}

	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, "index.html", view); err != nil {
		h.logger.Error("failed to render page",
			slog.String("error", err.Error()),
		)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
