// Package repositories defines the fetcher interfaces for remote content.
// These abstract the CMS transport details, ensuring the loaders are clean
// and decoupled from the HTTP client.
package repositories

import (
	"context"

	"github.com/revas-hq/website-go/internal/domain/entities/content"
)

// WebsiteIdentity names the website a request acts on behalf of. The public
// key is the CMS's unauthenticated access credential.
type WebsiteIdentity struct {
	Name      string
	PublicKey string
}

// Empty reports whether either identity field is missing. Loaders treat an
// empty identity as a local generic failure without calling any fetcher.
func (w WebsiteIdentity) Empty() bool {
	return w.Name == "" || w.PublicKey == ""
}

type WebsiteFetcher interface {
	FetchWebsite(ctx context.Context, identity WebsiteIdentity, languageCode string) (*content.Website, *content.RemoteError)
}

type PageFetcher interface {
	FetchPage(ctx context.Context, identity WebsiteIdentity, pageSlug, languageCode string) (*content.Page, *content.RemoteError)
}

type FeedFetcher interface {
	FetchFeed(ctx context.Context, identity WebsiteIdentity, feedSlug string) (*content.Feed, *content.RemoteError)
}
