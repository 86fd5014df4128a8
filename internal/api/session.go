package api

import (
	"net/http"

	"github.com/kirychukyurii/deck-status/internal/dom"
)

const sessionCookie = "deck_session"

// pageSession returns the caller's page document, opening a new session
// (and setting its cookie) when the request carries none or an expired one
func (h *Handler) pageSession(w http.ResponseWriter, r *http.Request) *dom.Document {
	var current string
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		current = cookie.Value
	}

	id, doc, created := h.sessions.GetOrCreate(current)
	if created {
		path := h.basePath
		if path == "" {
			path = "/"
		}
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    id,
			Path:     path,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	return doc
}

// existingSession returns the caller's page document without creating one
func (h *Handler) existingSession(r *http.Request) (*dom.Document, bool) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return nil, false
	}
	return h.sessions.Get(cookie.Value)
}
