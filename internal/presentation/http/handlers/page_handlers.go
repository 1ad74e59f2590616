package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/revas-hq/website-go/internal/application/services"
	"github.com/revas-hq/website-go/internal/infrastructure/observability/logging"
	"github.com/revas-hq/website-go/internal/infrastructure/observability/performance"
	"github.com/revas-hq/website-go/internal/presentation/http/middleware"
)

// PageHandlers contains all page-related HTTP handlers
type PageHandlers struct {
	pageService *services.PageService
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewPageHandlers creates page handlers with injected dependencies
func NewPageHandlers(pageService *services.PageService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *PageHandlers {
	return &PageHandlers{
		pageService: pageService,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// GetPage loads one page by slug for a locale.
func (h *PageHandlers) GetPage(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received get page request",
		"method", c.Request.Method, "path", c.Request.URL.Path, "slug", c.Param("slug"), "requestId", middleware.GetRequestID(c))
	websiteCtx, exists := middleware.GetWebsiteContext(c)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "website context not found"})
		return
	}

	marker := h.perfTracker.StartOperation("get_page_request", websiteCtx.Identity.Name)
	defer marker.Complete()

	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page slug is required"})
		return
	}

	req := services.PageRequest{
		Identity:    websiteCtx.Identity,
		RouteLocale: c.Param("locale"),
		Slug:        slug,
	}

	result := h.pageService.Load(c.Request.Context(), req)

	h.logger.Content().Info("Get page request completed",
		"slug", slug, "status", result.Status, "duration", time.Since(start))

	marker.SetSuccess(result.Status == http.StatusOK)
	h.logger.Perf().Info("Performance for GetPage request",
		"duration", marker.Duration, "website", websiteCtx.Identity.Name, "success", result.Status == http.StatusOK)
	c.JSON(result.Status, result.Data)
}
