package services

import (
	"context"
	"net/http"
	"strconv"

	"github.com/revas-hq/website-go/internal/domain/entities/content"
	"github.com/revas-hq/website-go/internal/domain/entities/rendering"
	"github.com/revas-hq/website-go/internal/domain/repositories"
	domain "github.com/revas-hq/website-go/internal/domain/services"
	"github.com/revas-hq/website-go/internal/infrastructure/observability/logging"
)

// WebsiteRequest carries the decoded request context for the website loader.
type WebsiteRequest struct {
	Identity    repositories.WebsiteIdentity
	RouteLocale string

	QuerySelectedLocale string
	QueryTextIncrease   string
	QueryContrastMode   string

	StoredA11y   domain.A11yPreferences
	StoredLocale domain.LocalePreference
}

// WebsiteResult is the website loader's outcome: the view-model, the HTTP
// status, and the preference state to persist. Both preference payloads are
// populated on every path, so the response always sets both cookies.
type WebsiteResult struct {
	Data   rendering.WebsiteData
	Status int
	A11y   domain.A11yPreferences
	Locale domain.LocalePreference
}

// WebsiteService orchestrates the website loader.
type WebsiteService struct {
	websites repositories.WebsiteFetcher
	logger   *logging.ChanneledLogger
}

// NewWebsiteService creates a new website application service
func NewWebsiteService(websites repositories.WebsiteFetcher, logger *logging.ChanneledLogger) *WebsiteService {
	return &WebsiteService{
		websites: websites,
		logger:   logger,
	}
}

// Load resolves preferences, fetches the website and normalizes it into the
// render-ready view-model.
func (s *WebsiteService) Load(ctx context.Context, req WebsiteRequest) WebsiteResult {
	a11y := domain.ResolveAccessibility(req.StoredA11y, req.QueryTextIncrease, req.QueryContrastMode)
	locale := domain.ResolveLocale(req.StoredLocale, req.QuerySelectedLocale)

	result := WebsiteResult{
		Status: http.StatusOK,
		A11y:   a11y.Preferences(),
		Locale: locale,
	}

	data := rendering.WebsiteData{
		Navigation:         []rendering.LinkUI{},
		Links:              []rendering.LinkUI{},
		Socials:            []rendering.SocialLinkUI{},
		Authors:            []rendering.AuthorUI{},
		AvailableLanguages: []string{},
		SelectedLocale:     locale.SelectedLocale,
		ContrastMode:       a11y.ContrastMode,
		TextIncreaseAmount: a11y.TextIncreaseAmount,
		TextBaseUnit:       a11y.TextBaseUnit,
		TextLineBaseUnit:   a11y.TextLineBaseUnit,
		SpacingBaseUnit:    a11y.SpacingBaseUnit,
		IsHighContrastMode: a11y.IsHighContrastMode,
		Metadata:           map[string]string{},
		ThemeMetadata:      map[string]string{},
	}

	if req.Identity.Empty() {
		s.logger.Content().Error("Website loader called with empty identity")
		data.Error = "missing website identity"
		data.Errors.GetWebsite = true
		result.Data = data
		result.Status = http.StatusInternalServerError
		return result
	}

	website, remoteErr := s.websites.FetchWebsite(ctx, req.Identity, domain.ExpandLocale(req.RouteLocale))
	if remoteErr != nil {
		data.Error = remoteErr.Message
		data.Errors.GetWebsite = true
		result.Data = data
		if content.IsNotFound(remoteErr) {
			result.Status = http.StatusNotFound
		} else {
			result.Status = http.StatusInternalServerError
		}
		return result
	}

	data.ID = website.ID
	data.LanguageCode = website.LanguageCode
	data.Title = website.Title
	data.HeadCodeInjection = website.HeadCodeInjection
	data.BodyCodeInjection = website.BodyCodeInjection
	data.Metadata = metadataOrEmpty(website.Metadata)

	s.projectTheme(website.Theme, a11y, &data)

	for _, link := range website.Navigation {
		data.Navigation = append(data.Navigation, normalizeLink(link))
	}
	data.Links, data.Socials = partitionLinks(website.Links)
	data.Authors = normalizeAuthors(website.Authors)

	if website.Notification != nil {
		link := flattenLink(website.Notification.Link)
		data.HasNotification = true
		data.Notification = rendering.NotificationUI{
			Title:        website.Notification.Title,
			Description:  website.Notification.Description,
			LinkTitle:    link.Title,
			LinkURL:      link.URL,
			LinkMetadata: link.Metadata,
			Metadata:     metadataOrEmpty(website.Notification.Metadata),
		}
	}

	if website.MainLink != nil {
		link := flattenLink(website.MainLink)
		data.HasMainLink = true
		data.MainLinkTitle = link.Title
		data.MainLinkURL = link.URL
		data.MainLinkMetadata = link.Metadata
	} else {
		data.MainLinkMetadata = map[string]string{}
	}

	if website.MainItem != nil {
		data.HasMainItem = true
		data.MainItem = normalizeBlockItem(*website.MainItem)
	} else {
		data.MainItem = normalizeBlockItem(content.BlockItem{})
	}

	for _, alternate := range website.Alternates {
		if alternate.LanguageCode != "" {
			data.AvailableLanguages = append(data.AvailableLanguages, alternate.LanguageCode)
		}
	}

	result.Data = data
	return result
}

// projectTheme flattens the website theme into the view-model, applying the
// high-contrast overrides.
func (s *WebsiteService) projectTheme(theme *content.Theme, a11y domain.A11yState, data *rendering.WebsiteData) {
	if theme == nil {
		return
	}

	primaryColor := theme.AccentColor
	contrastColor := domain.ContrastOf(theme.AccentColor)
	if a11y.IsHighContrastMode {
		primaryColor = "#000000"
		contrastColor = "white"
	}

	borderRadiusAmount := 0
	if theme.BorderRadius != "" {
		if parsed, err := strconv.Atoi(theme.BorderRadius); err == nil {
			borderRadiusAmount = parsed
		}
	}

	data.PrimaryColor = primaryColor
	data.ContrastColor = contrastColor
	data.DarkColor = domain.Darken(primaryColor)
	data.BorderRadiusAmount = borderRadiusAmount
	data.FontFamily = theme.FontFamily
	data.FontFamilyURL = theme.FontFamilyURL
	data.LogoURL = theme.LogoURL
	data.FaviconURL = theme.IconURL
	data.ThemeMetadata = metadataOrEmpty(theme.Metadata)
}
