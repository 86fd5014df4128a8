package model

import "time"

// DeckResponse is the body returned by the deck-shuffle endpoint
type DeckResponse struct {
	Success   bool   `json:"success"`
	DeckID    string `json:"deck_id"`
	Shuffled  bool   `json:"shuffled"`
	Remaining int    `json:"remaining"`
}

// DeckSnapshot is the rendered state of a page's deck widgets
type DeckSnapshot struct {
	Remaining     string    `json:"remaining"`
	ShuffleStatus string    `json:"shuffle_status"`
	Loading       bool      `json:"loading"`
	ButtonLabel   string    `json:"button_label"`
	ButtonEnabled bool      `json:"button_enabled"`
	Error         string    `json:"error,omitempty"` // empty while the banner is hidden
	LastRefresh   time.Time `json:"last_refresh,omitzero"`
}
