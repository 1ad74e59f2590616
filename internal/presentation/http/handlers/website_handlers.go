// Package handlers provides HTTP handlers for the website content endpoints
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/revas-hq/website-go/internal/application/services"
	"github.com/revas-hq/website-go/internal/infrastructure/cookies"
	"github.com/revas-hq/website-go/internal/infrastructure/observability/logging"
	"github.com/revas-hq/website-go/internal/infrastructure/observability/performance"
	"github.com/revas-hq/website-go/internal/presentation/http/middleware"
)

// WebsiteHandlers contains all website-related HTTP handlers
type WebsiteHandlers struct {
	websiteService *services.WebsiteService
	logger         *logging.ChanneledLogger
	perfTracker    *performance.Tracker
}

// NewWebsiteHandlers creates website handlers with injected dependencies
func NewWebsiteHandlers(websiteService *services.WebsiteService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *WebsiteHandlers {
	return &WebsiteHandlers{
		websiteService: websiteService,
		logger:         logger,
		perfTracker:    perfTracker,
	}
}

// GetWebsite loads the website view-model for a locale. Both preference
// cookies are set on every outcome, success or failure.
func (h *WebsiteHandlers) GetWebsite(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received get website request",
		"method", c.Request.Method, "path", c.Request.URL.Path, "requestId", middleware.GetRequestID(c))
	websiteCtx, exists := middleware.GetWebsiteContext(c)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "website context not found"})
		return
	}

	marker := h.perfTracker.StartOperation("get_website_request", websiteCtx.Identity.Name)
	defer marker.Complete()

	req := services.WebsiteRequest{
		Identity:            websiteCtx.Identity,
		RouteLocale:         c.Param("locale"),
		QuerySelectedLocale: c.Query("selectedLocale"),
		QueryTextIncrease:   c.Query("textIncrease"),
		QueryContrastMode:   c.Query("contrastMode"),
		StoredA11y:          cookies.ReadA11y(c.Request, websiteCtx.Identity.Name),
		StoredLocale:        cookies.ReadLocale(c.Request, websiteCtx.Identity.Name),
	}

	result := h.websiteService.Load(c.Request.Context(), req)

	// Cookies are part of the loader contract on every path.
	http.SetCookie(c.Writer, cookies.NewA11yCookie(websiteCtx.Identity.Name, result.A11y))
	http.SetCookie(c.Writer, cookies.NewLocaleCookie(websiteCtx.Identity.Name, result.Locale))

	h.logger.Content().Info("Get website request completed",
		"locale", req.RouteLocale, "status", result.Status, "duration", time.Since(start))

	marker.SetSuccess(result.Status == http.StatusOK)
	h.logger.Perf().Info("Performance for GetWebsite request",
		"duration", marker.Duration, "website", websiteCtx.Identity.Name, "success", result.Status == http.StatusOK)
	c.JSON(result.Status, result.Data)
}
