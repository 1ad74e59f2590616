// Package container provides dependency injection for all singleton services
package container

import (
	"github.com/revas-hq/website-go/internal/application/services"
	"github.com/revas-hq/website-go/internal/infrastructure/cms"
	"github.com/revas-hq/website-go/internal/infrastructure/observability/logging"
	"github.com/revas-hq/website-go/internal/infrastructure/observability/monitoring"
	"github.com/revas-hq/website-go/internal/infrastructure/observability/performance"
	"github.com/revas-hq/website-go/pkg/config"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	// Content Services (stateless singletons)
	WebsiteService *services.WebsiteService
	PageService    *services.PageService
	FeedService    *services.FeedService

	// Infrastructure Dependencies
	CMSClient   *cms.Client
	Logger      *logging.ChanneledLogger
	PerfTracker *performance.Tracker
	Metrics     *monitoring.Metrics
}

// NewContainer creates and wires all singleton services
func NewContainer(logger *logging.ChanneledLogger) *Container {
	metrics := monitoring.NewMetrics()
	cmsClient := cms.NewClient(config.CMSBaseURL, config.CMSRequestTimeout, logger, metrics)

	return &Container{
		WebsiteService: services.NewWebsiteService(cmsClient, logger),
		PageService:    services.NewPageService(cmsClient, logger),
		FeedService:    services.NewFeedService(cmsClient, logger),

		CMSClient:   cmsClient,
		Logger:      logger,
		PerfTracker: performance.NewTracker(performance.DefaultTrackerConfig()),
		Metrics:     metrics,
	}
}
