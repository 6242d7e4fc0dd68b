package handler

import (
	"net/http"

	natsclient "github.com/psychohealer/psychohealer/internal/nats"
)

// HealthHandler handles liveness endpoints and the root banner.
type HealthHandler struct {
	natsClient *natsclient.Client
	version    string
}

// NewHealthHandler creates a new health handler. natsClient may be nil when
// the in-memory store backend is configured.
func NewHealthHandler(natsClient *natsclient.Client, version string) *HealthHandler {
	return &HealthHandler{
		natsClient: natsClient,
		version:    version,
	}
}

// Root handles GET /
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message":     "PsychoHealer API is running",
		"version":     h.version,
		"description": "AI-powered Psychology Assistant",
	})
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "PsychoHealer",
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	// Only the durable store backend has an external dependency to check.
	if h.natsClient != nil && !h.natsClient.IsConnected() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"reason": "NATS not connected",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}
