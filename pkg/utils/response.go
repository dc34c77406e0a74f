package utils

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorEnvelope is the uniform error body every endpoint returns.
type ErrorEnvelope struct {
	Error string `json:"error"`
}

// RespondJSON writes a JSON response with the given status.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[http] failed to encode response: %v", err)
	}
}

// RespondError writes an error envelope.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorEnvelope{Error: message})
}
