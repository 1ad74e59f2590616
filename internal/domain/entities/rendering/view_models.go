// Package rendering provides the flat, render-ready view-models returned by
// the loaders. Optional sub-objects from the CMS are resolved into sibling
// fields with empty-string/empty-map defaults so the front-end never branches
// on nulls.
package rendering

// ErrorFlags discriminates the failure source for the front-end. At most one
// flag is set per response.
type ErrorFlags struct {
	GetWebsite   bool `json:"getWebsite,omitempty"`
	GetPage      bool `json:"getPage,omitempty"`
	GetFeed      bool `json:"getFeed,omitempty"`
	PageNotFound bool `json:"pageNotFound,omitempty"`
}

// Meta is a title/description/image triple used for document metadata,
// Open Graph and Twitter cards.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type LinkUI struct {
	Title    string            `json:"title"`
	URL      string            `json:"url"`
	External bool              `json:"external"`
	Metadata map[string]string `json:"metadata"`
}

// SocialLinkUI tags a social link with its network type ("facebook",
// "github", ...), defaulting to "link" when the network is unknown.
type SocialLinkUI struct {
	Title    string            `json:"title"`
	URL      string            `json:"url"`
	Type     string            `json:"type"`
	Metadata map[string]string `json:"metadata"`
}

type AuthorUI struct {
	Name                  string            `json:"name"`
	Description           string            `json:"description"`
	AttachmentURL         string            `json:"attachmentUrl"`
	AttachmentMediaType   string            `json:"attachmentMediaType"`
	AttachmentDescription string            `json:"attachmentDescription"`
	Metadata              map[string]string `json:"metadata"`
}

type NotificationUI struct {
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	LinkTitle    string            `json:"linkTitle"`
	LinkURL      string            `json:"linkUrl"`
	LinkMetadata map[string]string `json:"linkMetadata"`
	Metadata     map[string]string `json:"metadata"`
}

type BlockItemUI struct {
	Title                 string            `json:"title"`
	Description           string            `json:"description"`
	LinkTitle             string            `json:"linkTitle"`
	LinkURL               string            `json:"linkUrl"`
	LinkMetadata          map[string]string `json:"linkMetadata"`
	AttachmentURL         string            `json:"attachmentUrl"`
	AttachmentMediaType   string            `json:"attachmentMediaType"`
	AttachmentDescription string            `json:"attachmentDescription"`
	AttachmentCaption     string            `json:"attachmentCaption"`
	AttachmentMetadata    map[string]string `json:"attachmentMetadata"`
	Metadata              map[string]string `json:"metadata"`
}

type BlockUI struct {
	HTML                  string            `json:"html"`
	BlockLayout           string            `json:"blockLayout"`
	Title                 string            `json:"title"`
	Description           string            `json:"description"`
	LinkTitle             string            `json:"linkTitle"`
	LinkURL               string            `json:"linkUrl"`
	LinkMetadata          map[string]string `json:"linkMetadata"`
	AttachmentURL         string            `json:"attachmentUrl"`
	AttachmentMediaType   string            `json:"attachmentMediaType"`
	AttachmentDescription string            `json:"attachmentDescription"`
	AttachmentCaption     string            `json:"attachmentCaption"`
	AttachmentMetadata    map[string]string `json:"attachmentMetadata"`
	ItemsLayout           string            `json:"itemsLayout"`
	Items                 []BlockItemUI     `json:"items"`
	Metadata              map[string]string `json:"metadata"`
}

// WebsiteData is the website loader's response body.
type WebsiteData struct {
	Error  string     `json:"error,omitempty"`
	Errors ErrorFlags `json:"errors"`

	ID           string `json:"id"`
	LanguageCode string `json:"languageCode"`
	Title        string `json:"title"`

	// Theme projection. PrimaryColor and ContrastColor carry the
	// high-contrast overrides already applied.
	PrimaryColor       string            `json:"primaryColor"`
	ContrastColor      string            `json:"contrastColor"`
	DarkColor          string            `json:"darkColor"`
	BorderRadiusAmount int               `json:"borderRadiusAmount"`
	FontFamily         string            `json:"fontFamily"`
	FontFamilyURL      string            `json:"fontFamilyUrl"`
	LogoURL            string            `json:"logoUrl"`
	FaviconURL         string            `json:"faviconUrl"`
	ThemeMetadata      map[string]string `json:"themeMetadata"`

	HeadCodeInjection string `json:"headCodeInjection"`
	BodyCodeInjection string `json:"bodyCodeInjection"`

	Navigation []LinkUI       `json:"navigation"`
	Links      []LinkUI       `json:"links"`
	Socials    []SocialLinkUI `json:"socials"`
	Authors    []AuthorUI     `json:"authors"`

	HasNotification bool           `json:"hasNotification"`
	Notification    NotificationUI `json:"notification"`

	HasMainLink      bool              `json:"hasMainLink"`
	MainLinkTitle    string            `json:"mainLinkTitle"`
	MainLinkURL      string            `json:"mainLinkUrl"`
	MainLinkMetadata map[string]string `json:"mainLinkMetadata"`

	HasMainItem bool        `json:"hasMainItem"`
	MainItem    BlockItemUI `json:"mainItem"`

	AvailableLanguages []string `json:"availableLanguages"`
	SelectedLocale     string   `json:"selectedLocale"`

	// Accessibility units derived from the persisted preferences.
	ContrastMode       string  `json:"contrastMode"`
	TextIncreaseAmount string  `json:"textIncreaseAmount"`
	TextBaseUnit       float64 `json:"textBaseUnit"`
	TextLineBaseUnit   float64 `json:"textLineBaseUnit"`
	SpacingBaseUnit    float64 `json:"spacingBaseUnit"`
	IsHighContrastMode bool    `json:"isHighContrastMode"`

	Metadata map[string]string `json:"metadata"`
}

// PageData is the page loader's response body.
type PageData struct {
	Error  string     `json:"error,omitempty"`
	Errors ErrorFlags `json:"errors"`

	Meta          Meta `json:"meta"`
	OpenGraphData Meta `json:"openGraphData"`
	TwitterMeta   Meta `json:"twitterMeta"`

	Blocks   []BlockUI         `json:"blocks"`
	Authors  []AuthorUI        `json:"authors"`
	Metadata map[string]string `json:"metadata"`
}

type FeedItemUI struct {
	Title                 string `json:"title"`
	Description           string `json:"description"`
	AttachmentURL         string `json:"attachmentUrl"`
	AttachmentMediaType   string `json:"attachmentMediaType"`
	AttachmentDescription string `json:"attachmentDescription"`
	Content               string `json:"content"`
	PublishedOn           string `json:"publishedOn"`
	URL                   string `json:"url"`
}

// FeedData is the feed loader's response body.
type FeedData struct {
	Error  string     `json:"error,omitempty"`
	Errors ErrorFlags `json:"errors"`

	Meta          Meta `json:"meta"`
	OpenGraphData Meta `json:"openGraphData"`
	TwitterMeta   Meta `json:"twitterMeta"`

	Title       string       `json:"title"`
	Description string       `json:"description"`
	Items       []FeedItemUI `json:"items"`
}

// FeedItemData is the feed-item loader's response body. FeedTitle and
// FeedPath feed the breadcrumb back to the containing feed.
type FeedItemData struct {
	Error  string     `json:"error,omitempty"`
	Errors ErrorFlags `json:"errors"`

	Meta          Meta `json:"meta"`
	OpenGraphData Meta `json:"openGraphData"`
	TwitterMeta   Meta `json:"twitterMeta"`

	Item      FeedItemUI `json:"item"`
	FeedTitle string     `json:"feedTitle"`
	FeedPath  string     `json:"feedPath"`
}
