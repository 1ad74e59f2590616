// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/revas-hq/website-go/internal/application/container"
	"github.com/revas-hq/website-go/internal/presentation/http/handlers"
	"github.com/revas-hq/website-go/internal/presentation/http/middleware"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.WebsiteMiddleware())

	// Initialize handlers
	websiteHandlers := handlers.NewWebsiteHandlers(container.WebsiteService, container.Logger, container.PerfTracker)
	pageHandlers := handlers.NewPageHandlers(container.PageService, container.Logger, container.PerfTracker)
	feedHandlers := handlers.NewFeedHandlers(container.FeedService, container.Logger, container.PerfTracker)
	seoHandlers := handlers.NewSEOHandlers(container.WebsiteService, container.Logger)
	systemHandlers := handlers.NewSystemHandlers(container.PerfTracker)

	// Crawler-facing artifacts
	r.GET("/sitemap.xml", seoHandlers.GetSitemap)
	r.GET("/robots.txt", seoHandlers.GetRobots)

	// Operational endpoints
	r.GET("/metrics", gin.WrapH(container.Metrics.Handler()))

	api := r.Group("/api/v1")
	{
		api.GET("/health", systemHandlers.GetHealth)

		websites := api.Group("/websites/:locale")
		{
			websites.GET("", websiteHandlers.GetWebsite)
			websites.GET("/pages/:slug", pageHandlers.GetPage)
			websites.GET("/feeds/:feed", feedHandlers.GetFeed)
			websites.GET("/feeds/:feed/items/*item", feedHandlers.GetFeedItem)
		}
	}

	return r
}
