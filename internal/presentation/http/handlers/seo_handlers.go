package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/revas-hq/website-go/internal/application/services"
	domain "github.com/revas-hq/website-go/internal/domain/services"
	"github.com/revas-hq/website-go/internal/infrastructure/observability/logging"
	"github.com/revas-hq/website-go/internal/presentation/http/middleware"
	"github.com/revas-hq/website-go/pkg/config"
)

// SEOHandlers serves the crawler-facing artifacts built from website data.
type SEOHandlers struct {
	websiteService *services.WebsiteService
	logger         *logging.ChanneledLogger
}

// NewSEOHandlers creates SEO handlers with injected dependencies
func NewSEOHandlers(websiteService *services.WebsiteService, logger *logging.ChanneledLogger) *SEOHandlers {
	return &SEOHandlers{
		websiteService: websiteService,
		logger:         logger,
	}
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// GetSitemap emits a sitemap covering every available language root plus the
// internal navigation entries of each one.
func (h *SEOHandlers) GetSitemap(c *gin.Context) {
	start := time.Now()
	websiteCtx, exists := middleware.GetWebsiteContext(c)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "website context not found"})
		return
	}

	result := h.websiteService.Load(c.Request.Context(), services.WebsiteRequest{
		Identity: websiteCtx.Identity,
	})
	if result.Status != http.StatusOK {
		h.logger.Content().Warn("Sitemap request failed to load website data",
			"website", websiteCtx.Identity.Name, "status", result.Status)
		c.Status(result.Status)
		return
	}

	base := strings.TrimSuffix(config.PublicBaseURL, "/")
	locales := result.Data.AvailableLanguages
	if len(locales) == 0 && result.Data.LanguageCode != "" {
		locales = []string{result.Data.LanguageCode}
	}

	urlSet := sitemapURLSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, locale := range locales {
		expanded := domain.ExpandLocale(locale)
		urlSet.URLs = append(urlSet.URLs, sitemapURL{Loc: base + "/" + expanded})
		for _, link := range result.Data.Navigation {
			if link.External || !strings.HasPrefix(link.URL, "/") {
				continue
			}
			urlSet.URLs = append(urlSet.URLs, sitemapURL{Loc: base + "/" + expanded + link.URL})
		}
	}

	body, err := xml.MarshalIndent(urlSet, "", "  ")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build sitemap"})
		return
	}

	h.logger.Content().Info("Sitemap request completed",
		"website", websiteCtx.Identity.Name, "urlCount", len(urlSet.URLs), "duration", time.Since(start))
	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), body...))
}

// GetRobots emits robots.txt pointing crawlers at the sitemap.
func (h *SEOHandlers) GetRobots(c *gin.Context) {
	base := strings.TrimSuffix(config.PublicBaseURL, "/")
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", base)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}
