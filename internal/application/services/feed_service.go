package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/revas-hq/website-go/internal/domain/entities/content"
	"github.com/revas-hq/website-go/internal/domain/entities/rendering"
	"github.com/revas-hq/website-go/internal/domain/repositories"
	domain "github.com/revas-hq/website-go/internal/domain/services"
	"github.com/revas-hq/website-go/internal/infrastructure/observability/logging"
)

// FeedRequest carries the decoded request context for the feed loader.
type FeedRequest struct {
	Identity    repositories.WebsiteIdentity
	RouteLocale string
	FeedSlug    string
}

// FeedItemRequest additionally names one item within the feed.
type FeedItemRequest struct {
	FeedRequest
	ItemSlug string
}

// FeedResult is the feed loader's outcome. Feed responses set no cookies.
type FeedResult struct {
	Data   rendering.FeedData
	Status int
}

// FeedItemResult is the feed-item loader's outcome.
type FeedItemResult struct {
	Data   rendering.FeedItemData
	Status int
}

// FeedService orchestrates the feed and feed-item loaders. Both ride on the
// same remote call; the CMS has no single-item endpoint.
type FeedService struct {
	feeds  repositories.FeedFetcher
	logger *logging.ChanneledLogger
}

// NewFeedService creates a new feed application service
func NewFeedService(feeds repositories.FeedFetcher, logger *logging.ChanneledLogger) *FeedService {
	return &FeedService{
		feeds:  feeds,
		logger: logger,
	}
}

// feedPath is the canonical path of a feed within a locale.
func feedPath(routeLocale, feedSlug string) string {
	return fmt.Sprintf("/%s/-/%s", routeLocale, feedSlug)
}

// normalizeFeedItem maps one feed entry into its view-model. The item URL is
// built from the slug carried in the item id's "content" query parameter.
func normalizeFeedItem(item content.FeedItem, routeLocale, feedSlug string) rendering.FeedItemUI {
	slug := domain.SlugFromFeedItemID(item.ID)

	return rendering.FeedItemUI{
		Title:                 item.Title,
		Description:           item.Summary,
		AttachmentURL:         item.Image,
		AttachmentMediaType:   content.MediaTypeImage,
		AttachmentDescription: item.Title,
		Content:               item.ContentHTML,
		PublishedOn:           domain.FormatFullDate(item.DatePublished, domain.ExpandLocale(routeLocale)),
		URL:                   fmt.Sprintf("%s/%s", feedPath(routeLocale, feedSlug), slug),
	}
}

// LoadFeed fetches a content directory feed and maps it for rendering.
func (s *FeedService) LoadFeed(ctx context.Context, req FeedRequest) FeedResult {
	result := FeedResult{Status: http.StatusOK}

	data := rendering.FeedData{
		Items: []rendering.FeedItemUI{},
	}

	if req.Identity.Empty() {
		s.logger.Content().Error("Feed loader called with empty identity", "feed", req.FeedSlug)
		data.Error = "missing website identity"
		data.Errors.GetFeed = true
		result.Data = data
		result.Status = http.StatusInternalServerError
		return result
	}

	feed, remoteErr := s.feeds.FetchFeed(ctx, req.Identity, req.FeedSlug)
	if remoteErr != nil {
		data.Error = remoteErr.Message
		if content.IsNotFound(remoteErr) {
			data.Errors.PageNotFound = true
			result.Status = http.StatusNotFound
		} else {
			data.Errors.GetFeed = true
			result.Status = http.StatusInternalServerError
		}
		result.Data = data
		return result
	}

	data.Title = feed.Title
	data.Description = feed.Description
	data.Meta = rendering.Meta{Title: feed.Title, Description: feed.Description}
	data.OpenGraphData = data.Meta
	data.TwitterMeta = data.Meta

	for _, item := range feed.Items {
		data.Items = append(data.Items, normalizeFeedItem(item, req.RouteLocale, req.FeedSlug))
	}

	// The first item carrying an image supplies the feed-level meta image.
	for _, item := range data.Items {
		if item.AttachmentURL != "" {
			data.Meta.ImageURL = item.AttachmentURL
			data.OpenGraphData.ImageURL = item.AttachmentURL
			data.TwitterMeta.ImageURL = item.AttachmentURL
			break
		}
	}

	result.Data = data
	return result
}

// LoadItem fetches the whole feed and locates one item by slug.
func (s *FeedService) LoadItem(ctx context.Context, req FeedItemRequest) FeedItemResult {
	result := FeedItemResult{Status: http.StatusOK}

	data := rendering.FeedItemData{}

	if req.Identity.Empty() {
		s.logger.Content().Error("Feed item loader called with empty identity", "feed", req.FeedSlug, "item", req.ItemSlug)
		data.Error = "missing website identity"
		data.Errors.GetFeed = true
		result.Data = data
		result.Status = http.StatusInternalServerError
		return result
	}

	feed, remoteErr := s.feeds.FetchFeed(ctx, req.Identity, req.FeedSlug)
	if remoteErr != nil {
		data.Error = remoteErr.Message
		if content.IsNotFound(remoteErr) {
			data.Errors.PageNotFound = true
			result.Status = http.StatusNotFound
		} else {
			data.Errors.GetFeed = true
			result.Status = http.StatusInternalServerError
		}
		result.Data = data
		return result
	}

	var match *content.FeedItem
	for i := range feed.Items {
		if domain.MatchFeedItemID(feed.Items[i].ID, req.ItemSlug) {
			match = &feed.Items[i]
			break
		}
	}

	if match == nil {
		s.logger.Content().Info("Feed item not found", "feed", req.FeedSlug, "item", req.ItemSlug)
		data.Errors.PageNotFound = true
		result.Data = data
		result.Status = http.StatusNotFound
		return result
	}

	item := normalizeFeedItem(*match, req.RouteLocale, req.FeedSlug)

	data.Item = item
	data.FeedTitle = feed.Title
	data.FeedPath = feedPath(req.RouteLocale, req.FeedSlug)
	data.Meta = rendering.Meta{
		Title:       item.Title,
		Description: item.Description,
		ImageURL:    item.AttachmentURL,
	}
	data.OpenGraphData = data.Meta
	data.TwitterMeta = data.Meta

	result.Data = data
	return result
}
