// Package content defines the application's core content-related domain entities
// as delivered by the remote CMS.
package content

// Attachment media types accepted from the CMS.
const (
	MediaTypeImage        = "image/*"
	MediaTypeYouTubeVideo = "application/vnd.youtube.video"
)

// Block layouts accepted from the CMS.
const (
	BlockLayoutMain    = "main"
	BlockLayoutDefault = "default"
)

// Item layouts accepted from the CMS. An empty layout is valid and means
// the renderer picks its default.
const (
	ItemsLayoutLinear  = "linear"
	ItemsLayoutGrid    = "grid"
	ItemsLayoutColumns = "columns"
)

type Link struct {
	Title    string            `json:"title"`
	URL      string            `json:"url"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type Attachment struct {
	MediaType   string            `json:"mediaType"`
	URL         string            `json:"url"`
	Description string            `json:"description"`
	Caption     string            `json:"caption"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type Author struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	ImageURL    string            `json:"imageUrl"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type Notification struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Link        *Link             `json:"link,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type Theme struct {
	LogoURL       string            `json:"logoUrl"`
	IconURL       string            `json:"iconUrl"`
	AccentColor   string            `json:"accentColor"`
	BorderRadius  string            `json:"borderRadius"`
	FontFamily    string            `json:"fontFamily"`
	FontFamilyURL string            `json:"fontFamilyUrl"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

type Alternate struct {
	LanguageCode string `json:"languageCode"`
}

type Website struct {
	ID                string            `json:"id"`
	LanguageCode      string            `json:"languageCode"`
	Title             string            `json:"title"`
	Theme             *Theme            `json:"theme,omitempty"`
	Notification      *Notification     `json:"notification,omitempty"`
	Navigation        []Link            `json:"navigation"`
	Links             []Link            `json:"links"`
	Authors           []Author          `json:"authors"`
	MainLink          *Link             `json:"mainLink,omitempty"`
	MainItem          *BlockItem        `json:"mainItem,omitempty"`
	Metadata          map[string]string `json:"metadata,omitempty"`
	Alternates        []Alternate       `json:"alternates"`
	HeadCodeInjection string            `json:"headCodeInjection"`
	BodyCodeInjection string            `json:"bodyCodeInjection"`
}

type Block struct {
	HTML        string            `json:"html"`
	BlockLayout string            `json:"blockLayout"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Link        *Link             `json:"link,omitempty"`
	Attachment  *Attachment       `json:"attachment,omitempty"`
	ItemsLayout string            `json:"itemsLayout"`
	Items       []BlockItem       `json:"items"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type BlockItem struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Link        *Link             `json:"link,omitempty"`
	Attachment  *Attachment       `json:"attachment,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type Page struct {
	ID                   string            `json:"id"`
	Slug                 string            `json:"slug"`
	LanguageCode         string            `json:"languageCode"`
	Title                string            `json:"title"`
	Description          string            `json:"description"`
	ImageURL             string            `json:"imageUrl"`
	OpenGraphTitle       string            `json:"openGraphTitle"`
	OpenGraphDescription string            `json:"openGraphDescription"`
	OpenGraphImageURL    string            `json:"openGraphImageUrl"`
	TwitterTitle         string            `json:"twitterTitle"`
	TwitterDescription   string            `json:"twitterDescription"`
	TwitterImageURL      string            `json:"twitterImageUrl"`
	Blocks               []Block           `json:"blocks"`
	Authors              []Author          `json:"authors"`
	Metadata             map[string]string `json:"metadata,omitempty"`
}

// Feed follows the JSON Feed item layout published by the CMS content
// directories.
type Feed struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Items       []FeedItem `json:"items"`
}

// FeedItem's ID is itself a URL whose "content" query parameter encodes the
// item's slug. That parameter is the only stable per-item path segment.
type FeedItem struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Summary       string `json:"summary,omitempty"`
	Image         string `json:"image,omitempty"`
	DatePublished string `json:"date_published,omitempty"`
	DateModified  string `json:"date_modified,omitempty"`
	ContentHTML   string `json:"content_html,omitempty"`
}
