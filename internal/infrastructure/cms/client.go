// Package cms implements the remote CMS adapters. Each adapter wraps one CMS
// endpoint: it performs the HTTP GET, maps transport failures into the shared
// RemoteError taxonomy, and validates the response shape before handing the
// typed entity to the loaders.
package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/revas-hq/website-go/internal/domain/entities/content"
	"github.com/revas-hq/website-go/internal/domain/repositories"
	"github.com/revas-hq/website-go/internal/infrastructure/observability/logging"
	"github.com/revas-hq/website-go/internal/infrastructure/observability/monitoring"
)

// Endpoint labels used for logs and metrics.
const (
	endpointWebsite = "website"
	endpointPage    = "page"
	endpointFeed    = "feed"
)

// Client calls the remote CMS HTTP API. It implements the domain fetcher
// interfaces consumed by the loaders.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     *logging.ChanneledLogger
	metrics    *monitoring.Metrics
}

// NewClient creates a CMS client. Every call runs under the given timeout;
// the legacy front-end had none and a hung CMS call blocked the request
// indefinitely.
func NewClient(baseURL string, timeout time.Duration, logger *logging.ChanneledLogger, metrics *monitoring.Metrics) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		timeout:    timeout,
		logger:     logger,
		metrics:    metrics,
	}
}

var (
	_ repositories.WebsiteFetcher = (*Client)(nil)
	_ repositories.PageFetcher    = (*Client)(nil)
	_ repositories.FeedFetcher    = (*Client)(nil)
)

// websiteEnvelope wraps the website endpoint's response body.
type websiteEnvelope struct {
	Website *content.Website `json:"website"`
}

// pageEnvelope wraps the page endpoint's response body.
type pageEnvelope struct {
	Page *content.Page `json:"page"`
}

// errorEnvelope wraps remote error bodies.
type errorEnvelope struct {
	Error *content.RemoteError `json:"error"`
}

// FetchWebsite retrieves the website for a language code. An empty language
// code asks the CMS for the website's default language.
func (c *Client) FetchWebsite(ctx context.Context, identity repositories.WebsiteIdentity, languageCode string) (*content.Website, *content.RemoteError) {
	query := url.Values{"publicKey": {identity.PublicKey}}
	if languageCode != "" {
		query.Set("languageCode", languageCode)
	}
	endpoint := fmt.Sprintf("%s/websites/v2/websites/%s?%s", c.baseURL, url.PathEscape(identity.Name), query.Encode())

	body, duration, remoteErr := c.get(ctx, endpointWebsite, endpoint)
	if remoteErr != nil {
		return nil, remoteErr
	}

	var envelope websiteEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Website == nil {
		return nil, c.schemaError(endpointWebsite, ErrInvalidWebsiteSchema, duration, err)
	}
	if err := validateWebsite(envelope.Website); err != nil {
		return nil, c.schemaError(endpointWebsite, ErrInvalidWebsiteSchema, duration, err)
	}

	c.metrics.ObserveCMSRequest(endpointWebsite, monitoring.OutcomeSuccess, duration)
	return envelope.Website, nil
}

// FetchPage retrieves one page by slug for a language code.
func (c *Client) FetchPage(ctx context.Context, identity repositories.WebsiteIdentity, pageSlug, languageCode string) (*content.Page, *content.RemoteError) {
	query := url.Values{"publicKey": {identity.PublicKey}}
	if languageCode != "" {
		query.Set("languageCode", languageCode)
	}
	endpoint := fmt.Sprintf("%s/themes/websites/v2/websites/%s/pages/%s?%s",
		c.baseURL, url.PathEscape(identity.Name), url.PathEscape(pageSlug), query.Encode())

	body, duration, remoteErr := c.get(ctx, endpointPage, endpoint)
	if remoteErr != nil {
		return nil, remoteErr
	}

	var envelope pageEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Page == nil {
		return nil, c.schemaError(endpointPage, ErrInvalidPageSchema, duration, err)
	}
	if err := validatePage(envelope.Page); err != nil {
		return nil, c.schemaError(endpointPage, ErrInvalidPageSchema, duration, err)
	}

	c.metrics.ObserveCMSRequest(endpointPage, monitoring.OutcomeSuccess, duration)
	return envelope.Page, nil
}

// FetchFeed retrieves a content directory feed. Unlike the website and page
// endpoints, the feed body is bare, not wrapped in an envelope.
func (c *Client) FetchFeed(ctx context.Context, identity repositories.WebsiteIdentity, feedSlug string) (*content.Feed, *content.RemoteError) {
	query := url.Values{"publicKey": {identity.PublicKey}}
	endpoint := fmt.Sprintf("%s/contents/v0/directories/%s/feed.json?%s",
		c.baseURL, url.PathEscape(feedSlug), query.Encode())

	body, duration, remoteErr := c.get(ctx, endpointFeed, endpoint)
	if remoteErr != nil {
		return nil, remoteErr
	}

	var feed content.Feed
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, c.schemaError(endpointFeed, ErrInvalidFeedSchema, duration, err)
	}
	if err := validateFeed(&feed); err != nil {
		return nil, c.schemaError(endpointFeed, ErrInvalidFeedSchema, duration, err)
	}

	c.metrics.ObserveCMSRequest(endpointFeed, monitoring.OutcomeSuccess, duration)
	return &feed, nil
}

// get performs one GET under the client timeout and classifies failures.
func (c *Client) get(ctx context.Context, endpointName, endpoint string) ([]byte, time.Duration, *content.RemoteError) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, time.Since(start), c.transportError(endpointName, start, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, time.Since(start), c.transportError(endpointName, start, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, time.Since(start), c.transportError(endpointName, start, err)
	}

	duration := time.Since(start)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		remoteErr := decodeRemoteError(body, resp.StatusCode)
		outcome := monitoring.OutcomeRemoteError
		if content.IsNotFound(remoteErr) {
			outcome = monitoring.OutcomeNotFound
		}
		c.metrics.ObserveCMSRequest(endpointName, outcome, duration)
		c.logger.CMS().Warn("CMS request failed",
			"endpoint", endpointName, "status", resp.StatusCode,
			"code", remoteErr.Code, "message", remoteErr.Message, "duration", duration)
		return nil, duration, remoteErr
	}

	c.logger.CMS().Debug("CMS request completed", "endpoint", endpointName, "duration", duration)
	return body, duration, nil
}

// decodeRemoteError extracts the CMS's structured error from a non-2xx body,
// falling back to a transport-coded error carrying the HTTP status.
func decodeRemoteError(body []byte, statusCode int) *content.RemoteError {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil && envelope.Error.Message != "" {
		return envelope.Error
	}

	var bare content.RemoteError
	if err := json.Unmarshal(body, &bare); err == nil && bare.Message != "" {
		return &bare
	}

	return &content.RemoteError{
		Code:    content.CodeTransport,
		Message: fmt.Sprintf("unexpected status %d from api", statusCode),
	}
}

func (c *Client) transportError(endpointName string, start time.Time, err error) *content.RemoteError {
	duration := time.Since(start)
	c.metrics.ObserveCMSRequest(endpointName, monitoring.OutcomeTransport, duration)
	c.logger.CMS().Error("CMS request transport failure",
		"endpoint", endpointName, "error", err.Error(), "duration", duration)
	return &content.RemoteError{Code: content.CodeTransport, Message: err.Error()}
}

func (c *Client) schemaError(endpointName, message string, duration time.Duration, cause error) *content.RemoteError {
	detail := ""
	if cause != nil {
		detail = cause.Error()
	}
	c.metrics.ObserveCMSRequest(endpointName, monitoring.OutcomeInvalidSchema, duration)
	c.logger.CMS().Error("CMS response failed schema validation",
		"endpoint", endpointName, "detail", detail)
	return &content.RemoteError{Code: content.CodeInvalidSchema, Message: message}
}
