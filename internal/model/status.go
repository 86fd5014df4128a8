package model

import "time"

// ServiceStatus represents the current status of the deck-status service
type ServiceStatus struct {
	DeckAPI             string    `json:"deck_api"`             // Base URL of the upstream deck API
	HealthCheckEnabled  bool      `json:"health_check_enabled"` // Whether the upstream probe runs
	UpstreamHealthy     bool      `json:"upstream_healthy"`     // False once consecutive failures reach the threshold
	ConsecutiveFailures int       `json:"consecutive_failures"` // Failed probes since the last success
	LastCheck           time.Time `json:"last_check,omitzero"`  // Time of the last probe
	Sessions            int       `json:"sessions"`             // Live page sessions
}
