package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/revas-hq/website-go/internal/application/services"
	"github.com/revas-hq/website-go/internal/infrastructure/observability/logging"
	"github.com/revas-hq/website-go/internal/infrastructure/observability/performance"
	"github.com/revas-hq/website-go/internal/presentation/http/middleware"
)

// FeedHandlers contains all feed-related HTTP handlers
type FeedHandlers struct {
	feedService *services.FeedService
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewFeedHandlers creates feed handlers with injected dependencies
func NewFeedHandlers(feedService *services.FeedService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *FeedHandlers {
	return &FeedHandlers{
		feedService: feedService,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// GetFeed loads a content directory feed.
func (h *FeedHandlers) GetFeed(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received get feed request",
		"method", c.Request.Method, "path", c.Request.URL.Path, "feed", c.Param("feed"), "requestId", middleware.GetRequestID(c))
	websiteCtx, exists := middleware.GetWebsiteContext(c)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "website context not found"})
		return
	}

	marker := h.perfTracker.StartOperation("get_feed_request", websiteCtx.Identity.Name)
	defer marker.Complete()

	feedSlug := c.Param("feed")
	if feedSlug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "feed slug is required"})
		return
	}

	req := services.FeedRequest{
		Identity:    websiteCtx.Identity,
		RouteLocale: c.Param("locale"),
		FeedSlug:    feedSlug,
	}

	result := h.feedService.LoadFeed(c.Request.Context(), req)

	h.logger.Content().Info("Get feed request completed",
		"feed", feedSlug, "itemCount", len(result.Data.Items), "status", result.Status, "duration", time.Since(start))

	marker.SetSuccess(result.Status == http.StatusOK)
	h.logger.Perf().Info("Performance for GetFeed request",
		"duration", marker.Duration, "website", websiteCtx.Identity.Name, "success", result.Status == http.StatusOK)
	c.JSON(result.Status, result.Data)
}

// GetFeedItem loads a single feed entry by slug. The item parameter is a
// wildcard because slugs may contain path separators.
func (h *FeedHandlers) GetFeedItem(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received get feed item request",
		"method", c.Request.Method, "path", c.Request.URL.Path, "feed", c.Param("feed"), "requestId", middleware.GetRequestID(c))
	websiteCtx, exists := middleware.GetWebsiteContext(c)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "website context not found"})
		return
	}

	marker := h.perfTracker.StartOperation("get_feed_item_request", websiteCtx.Identity.Name)
	defer marker.Complete()

	feedSlug := c.Param("feed")
	itemSlug := strings.TrimPrefix(c.Param("item"), "/")
	if feedSlug == "" || itemSlug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "feed and item slugs are required"})
		return
	}

	req := services.FeedItemRequest{
		FeedRequest: services.FeedRequest{
			Identity:    websiteCtx.Identity,
			RouteLocale: c.Param("locale"),
			FeedSlug:    feedSlug,
		},
		ItemSlug: itemSlug,
	}

	result := h.feedService.LoadItem(c.Request.Context(), req)

	h.logger.Content().Info("Get feed item request completed",
		"feed", feedSlug, "item", itemSlug, "status", result.Status, "duration", time.Since(start))

	marker.SetSuccess(result.Status == http.StatusOK)
	h.logger.Perf().Info("Performance for GetFeedItem request",
		"duration", marker.Duration, "website", websiteCtx.Identity.Name, "success", result.Status == http.StatusOK)
	c.JSON(result.Status, result.Data)
}
