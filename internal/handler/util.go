package handler

import (
	"encoding/json"
	"net/http"
)

// errorResponse is the body of every error reply. Handlers put only
// caller-safe text in Error; internal failure details stay in the logs.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes v as the JSON response body. Encoding happens before the
// status line is sent so a marshal failure can still surface as a 500.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

// writeError writes a sanitized JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
