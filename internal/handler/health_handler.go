package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rodgersmanaseh/cedy1/internal/metrics"
)

// HealthHandler handles health check requests. The store lives in
// process memory, so health reports store sizes rather than pinging an
// external dependency.
type HealthHandler struct {
	stores map[string]metrics.StoreCounter
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(stores map[string]metrics.StoreCounter) *HealthHandler {
	return &HealthHandler{stores: stores}
}

// HealthResponse represents the response for health check endpoints.
type HealthResponse struct {
	Status  string         `json:"status"`
	Version string         `json:"version,omitempty"`
	Stores  map[string]int `json:"stores,omitempty"`
}

// Health handles GET /health - comprehensive health check.
func (h *HealthHandler) Health(c *gin.Context) {
	stores := make(map[string]int, len(h.stores))
	for name, store := range h.stores {
		stores[name] = store.Count(c.Request.Context())
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Version: "1.0.0",
		Stores:  stores,
	})
}

// Ready handles GET /ready - readiness probe for Kubernetes.
func (h *HealthHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live handles GET /live - liveness probe for Kubernetes.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
