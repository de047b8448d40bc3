// Package usecase implements the reservation lifecycle and the user/room
// commands around it. Every use case returns a Verdict describing the
// business outcome; an accompanying error is only non-nil for unexpected
// repository faults, which the transport layer turns into a generic
// internal error response. Business-rule failures are never errors.
package usecase

import "net/http"

// Verdict is the structured result every use case hands to the transport
// layer, which maps it onto the wire response as-is.
type Verdict struct {
	Status  int    `json:"-"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func failure(status int, message string) Verdict {
	return Verdict{Status: status, Success: false, Message: message}
}

func success(message string, data any) Verdict {
	return Verdict{Status: http.StatusOK, Success: true, Message: message, Data: data}
}
