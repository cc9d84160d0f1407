// Package respond provides shared JSON response utilities for API handlers.
// Every endpoint answers with the same envelope:
//
//	{ "success": true, ... }            on success
//	{ "success": false, "error": "…" }  on failure
package respond

import (
	"encoding/json"
	"net/http"
)

// Envelope is a success payload. Callers add their own keys next to "success".
type Envelope map[string]interface{}

// Success writes a 200 with success:true merged into the payload.
func Success(w http.ResponseWriter, payload Envelope) {
	body := Envelope{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	writeJSON(w, http.StatusOK, body)
}

// Error writes a failure envelope with the given status and message.
func Error(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	writeJSON(w, status, Envelope{"success": false, "error": message})
}

// JSON writes an arbitrary value with a status code, bypassing the envelope.
// Used for health checks and other non-envelope payloads.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	writeJSON(w, status, v)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
