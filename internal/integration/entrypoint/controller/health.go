// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a dependency is reachable.
type HealthChecker func(ctx context.Context) error

// HealthController handles health check endpoints.
type HealthController struct {
	checkers map[string]HealthChecker
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
	Timestamp    string            `json:"timestamp"`
}

// NewHealthController creates a new health controller over named checkers.
func NewHealthController(checkers map[string]HealthChecker) *HealthController {
	return &HealthController{
		checkers: checkers,
	}
}

// Check handles GET /health requests.
// It answers 503 when any dependency is down.
func (h *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:       "ok",
		Dependencies: make(map[string]string, len(h.checkers)),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	status := http.StatusOK

	for name, check := range h.checkers {
		if err := check(ctx); err != nil {
			response.Dependencies[name] = "disconnected"
			response.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		response.Dependencies[name] = "connected"
	}

	c.JSON(status, response)
}
