package handler

import (
	"net/http"
	"time"
)

// HealthHandler serves the liveness probes.
type HealthHandler struct {
	now func() time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{now: time.Now}
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"message": "Indian Stock API is running!",
	})
}

// StreamHealth handles GET /stream-health.
func (h *HealthHandler) StreamHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"message":   "Stock data streaming service is running!",
		"timestamp": h.now().UnixMilli(),
	})
}
