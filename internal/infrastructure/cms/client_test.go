package cms

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revas-hq/website-go/internal/domain/entities/content"
	"github.com/revas-hq/website-go/internal/domain/repositories"
	"github.com/revas-hq/website-go/internal/infrastructure/observability/logging"
	"github.com/revas-hq/website-go/internal/infrastructure/observability/monitoring"
)

var testIdentity = repositories.WebsiteIdentity{Name: "www.revas.app", PublicKey: "pk-test"}

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()

	loggerConfig := logging.DefaultLoggerConfig()
	loggerConfig.DefaultLevel = slog.LevelError + 1

	logger, err := logging.NewChanneledLogger(loggerConfig)
	require.NoError(t, err)

	return NewClient(srv.URL, 2*time.Second, logger, monitoring.NewMetrics())
}

func TestFetchWebsiteSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/websites/v2/websites/www.revas.app", r.URL.Path)
		assert.Equal(t, "pk-test", r.URL.Query().Get("publicKey"))
		assert.Equal(t, "it-IT", r.URL.Query().Get("languageCode"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"website":{"id":"w1","languageCode":"it-IT","title":"Revas"}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	website, remoteErr := client.FetchWebsite(context.Background(), testIdentity, "it-IT")

	require.Nil(t, remoteErr)
	assert.Equal(t, "w1", website.ID)
	assert.Equal(t, "it-IT", website.LanguageCode)
	assert.Equal(t, "Revas", website.Title)
}

func TestFetchWebsiteOmitsEmptyLanguageCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.URL.Query()["languageCode"]
		assert.False(t, present)
		w.Write([]byte(`{"website":{"id":"w1","languageCode":"en-US"}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	_, remoteErr := client.FetchWebsite(context.Background(), testIdentity, "")
	assert.Nil(t, remoteErr)
}

func TestFetchWebsiteNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"code":5,"message":"website not found"}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	website, remoteErr := client.FetchWebsite(context.Background(), testIdentity, "en-US")

	assert.Nil(t, website)
	require.NotNil(t, remoteErr)
	assert.True(t, content.IsNotFound(remoteErr))
	assert.Equal(t, "website not found", remoteErr.Message)
}

func TestFetchWebsiteBareErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"code":5,"message":"website not found"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	_, remoteErr := client.FetchWebsite(context.Background(), testIdentity, "en-US")

	require.NotNil(t, remoteErr)
	assert.True(t, content.IsNotFound(remoteErr))
}

func TestFetchWebsiteUndecodableErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`upstream exploded`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	_, remoteErr := client.FetchWebsite(context.Background(), testIdentity, "en-US")

	require.NotNil(t, remoteErr)
	assert.Equal(t, content.CodeTransport, remoteErr.Code)
	assert.Equal(t, "unexpected status 502 from api", remoteErr.Message)
	assert.False(t, content.IsNotFound(remoteErr))
}

func TestFetchWebsiteInvalidSchema(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing envelope", `{"something":"else"}`},
		{"missing id", `{"website":{"languageCode":"en-US"}}`},
		{"missing language code", `{"website":{"id":"w1"}}`},
		{"bad attachment media type", `{"website":{"id":"w1","languageCode":"en-US","mainItem":{"attachment":{"mediaType":"video/mp4","url":"https://cdn/x"}}}}`},
		{"navigation link without url", `{"website":{"id":"w1","languageCode":"en-US","navigation":[{"title":"About"}]}}`},
		{"not json", `<html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := newTestClient(t, srv)
			website, remoteErr := client.FetchWebsite(context.Background(), testIdentity, "en-US")

			assert.Nil(t, website)
			require.NotNil(t, remoteErr)
			assert.Equal(t, content.CodeInvalidSchema, remoteErr.Code)
			assert.Equal(t, ErrInvalidWebsiteSchema, remoteErr.Message)
		})
	}
}

func TestFetchWebsiteTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := newTestClient(t, srv)
	website, remoteErr := client.FetchWebsite(context.Background(), testIdentity, "en-US")

	assert.Nil(t, website)
	require.NotNil(t, remoteErr)
	assert.Equal(t, content.CodeTransport, remoteErr.Code)
}

func TestFetchWebsiteTimeout(t *testing.T) {
	block := make(chan struct{})
	defer close(block)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	loggerConfig := logging.DefaultLoggerConfig()
	loggerConfig.DefaultLevel = slog.LevelError + 1
	logger, err := logging.NewChanneledLogger(loggerConfig)
	require.NoError(t, err)

	client := NewClient(srv.URL, 50*time.Millisecond, logger, monitoring.NewMetrics())
	_, remoteErr := client.FetchWebsite(context.Background(), testIdentity, "en-US")

	require.NotNil(t, remoteErr)
	assert.Equal(t, content.CodeTransport, remoteErr.Code)
}

func TestFetchPageSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/themes/websites/v2/websites/www.revas.app/pages/about-us", r.URL.Path)
		w.Write([]byte(`{"page":{"id":"p1","slug":"about-us","title":"About us","blocks":[{"blockLayout":"main","items":[{"title":"Item"}]}]}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	page, remoteErr := client.FetchPage(context.Background(), testIdentity, "about-us", "en-US")

	require.Nil(t, remoteErr)
	assert.Equal(t, "about-us", page.Slug)
	require.Len(t, page.Blocks, 1)
	assert.Equal(t, content.BlockLayoutMain, page.Blocks[0].BlockLayout)
}

func TestFetchPageInvalidSchema(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"page":{"id":"p1","slug":"about-us","blocks":[{"blockLayout":"sidebar"}]}}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	page, remoteErr := client.FetchPage(context.Background(), testIdentity, "about-us", "en-US")

	assert.Nil(t, page)
	require.NotNil(t, remoteErr)
	assert.Equal(t, content.CodeInvalidSchema, remoteErr.Code)
	assert.Equal(t, ErrInvalidPageSchema, remoteErr.Message)
}

func TestFetchFeedSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/contents/v0/directories/blog/feed.json", r.URL.Path)
		assert.Equal(t, "pk-test", r.URL.Query().Get("publicKey"))

		// The feed endpoint returns the feed bare, without an envelope.
		w.Write([]byte(`{"title":"Blog","items":[{"id":"https://api/render?content=first-post","title":"First","date_published":"2026-01-05"}]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	feed, remoteErr := client.FetchFeed(context.Background(), testIdentity, "blog")

	require.Nil(t, remoteErr)
	assert.Equal(t, "Blog", feed.Title)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, "First", feed.Items[0].Title)
}

func TestFetchFeedInvalidSchema(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"id":"x"}]}`)) // missing title
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	feed, remoteErr := client.FetchFeed(context.Background(), testIdentity, "blog")

	assert.Nil(t, feed)
	require.NotNil(t, remoteErr)
	assert.Equal(t, content.CodeInvalidSchema, remoteErr.Code)
	assert.Equal(t, ErrInvalidFeedSchema, remoteErr.Message)
}
