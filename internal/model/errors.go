package model

import (
	"errors"
	"fmt"
)

// UnknownErrorMessage is shown when a failure carries no readable message
const UnknownErrorMessage = "An unknown error occurred"

// ErrInvalidResponse reports a deck API body that does not have the expected shape
var ErrInvalidResponse = errors.New("Invalid API response format")

// APIError normalizes a non-2xx response from the deck API
type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
}

// NewAPIError builds an APIError for the given HTTP status code
func NewAPIError(status int) *APIError {
	return &APIError{
		Message: fmt.Sprintf("HTTP error! status: %d", status),
		Status:  status,
	}
}

func (e *APIError) Error() string {
	return e.Message
}

// messager is satisfied by failure values that expose a message without being errors
type messager interface {
	Message() string
}

// DisplayMessage derives a human-readable message from an arbitrary failure value.
// Precedence: error, string, message field, fallback.
func DisplayMessage(v any) string {
	switch val := v.(type) {
	case nil:
		return UnknownErrorMessage
	case error:
		return val.Error()
	case string:
		return val
	case messager:
		return val.Message()
	case map[string]any:
		if msg, ok := val["message"].(string); ok {
			return msg
		}
	case map[string]string:
		if msg, ok := val["message"]; ok {
			return msg
		}
	}

	return UnknownErrorMessage
}
