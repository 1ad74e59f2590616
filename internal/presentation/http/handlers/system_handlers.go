package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/revas-hq/website-go/internal/infrastructure/observability/performance"
)

// SystemHandlers contains liveness and runtime status handlers
type SystemHandlers struct {
	perfTracker *performance.Tracker
}

// NewSystemHandlers creates system handlers with injected dependencies
func NewSystemHandlers(perfTracker *performance.Tracker) *SystemHandlers {
	return &SystemHandlers{perfTracker: perfTracker}
}

// GetHealth reports service liveness
func (h *SystemHandlers) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":              "ok",
		"uptime":              h.perfTracker.Uptime().String(),
		"completedOperations": h.perfTracker.CompletedCount(),
	})
}
