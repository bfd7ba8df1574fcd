// Package handlers implements the chatbot's JSON HTTP surface.
package handlers

import (
	"encoding/json"
	"net/http"
)

// errorBody is the uniform payload for transport-level failures. The
// chat pipeline itself never produces user-visible errors; anything
// past request validation answers with HTTP 200.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ErrorResponse writes a JSON error with the given status and returns
// any encoding error.
func ErrorResponse(w http.ResponseWriter, statusCode int, errorCode, message string) error {
	return WriteJSON(w, statusCode, errorBody{Error: errorCode, Message: message})
}

// WriteJSON writes data as a JSON response and returns any encoding
// error.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}
	return json.NewEncoder(w).Encode(data)
}
