package services

import (
	"context"
	"net/http"

	"github.com/revas-hq/website-go/internal/domain/entities/content"
	"github.com/revas-hq/website-go/internal/domain/entities/rendering"
	"github.com/revas-hq/website-go/internal/domain/repositories"
	domain "github.com/revas-hq/website-go/internal/domain/services"
	"github.com/revas-hq/website-go/internal/infrastructure/observability/logging"
)

// PageRequest carries the decoded request context for the page loader.
type PageRequest struct {
	Identity    repositories.WebsiteIdentity
	RouteLocale string
	Slug        string
}

// PageResult is the page loader's outcome. Page responses set no cookies.
type PageResult struct {
	Data   rendering.PageData
	Status int
}

// PageService orchestrates the page loader.
type PageService struct {
	pages  repositories.PageFetcher
	logger *logging.ChanneledLogger
}

// NewPageService creates a new page application service
func NewPageService(pages repositories.PageFetcher, logger *logging.ChanneledLogger) *PageService {
	return &PageService{
		pages:  pages,
		logger: logger,
	}
}

// Load fetches one page and normalizes its blocks into flat view-models.
// Open Graph and Twitter metadata are copied from the page's own fields with
// no fallback to the generic meta; that fallback is the renderer's concern.
func (s *PageService) Load(ctx context.Context, req PageRequest) PageResult {
	result := PageResult{Status: http.StatusOK}

	data := rendering.PageData{
		Blocks:   []rendering.BlockUI{},
		Authors:  []rendering.AuthorUI{},
		Metadata: map[string]string{},
	}

	if req.Identity.Empty() {
		s.logger.Content().Error("Page loader called with empty identity", "slug", req.Slug)
		data.Error = "missing website identity"
		data.Errors.GetPage = true
		result.Data = data
		result.Status = http.StatusInternalServerError
		return result
	}

	page, remoteErr := s.pages.FetchPage(ctx, req.Identity, req.Slug, domain.ExpandLocale(req.RouteLocale))
	if remoteErr != nil {
		data.Error = remoteErr.Message
		if content.IsNotFound(remoteErr) {
			data.Errors.PageNotFound = true
			result.Status = http.StatusNotFound
		} else {
			data.Errors.GetPage = true
			result.Status = http.StatusInternalServerError
		}
		result.Data = data
		return result
	}

	data.Meta = rendering.Meta{
		Title:       page.Title,
		Description: page.Description,
		ImageURL:    page.ImageURL,
	}
	data.OpenGraphData = rendering.Meta{
		Title:       page.OpenGraphTitle,
		Description: page.OpenGraphDescription,
		ImageURL:    page.OpenGraphImageURL,
	}
	data.TwitterMeta = rendering.Meta{
		Title:       page.TwitterTitle,
		Description: page.TwitterDescription,
		ImageURL:    page.TwitterImageURL,
	}

	for _, block := range page.Blocks {
		data.Blocks = append(data.Blocks, normalizeBlock(block))
	}
	data.Authors = normalizeAuthors(page.Authors)
	data.Metadata = metadataOrEmpty(page.Metadata)

	result.Data = data
	return result
}
