package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revas-hq/website-go/internal/application/services"
	"github.com/revas-hq/website-go/internal/domain/entities/content"
	"github.com/revas-hq/website-go/internal/domain/repositories"
	domain "github.com/revas-hq/website-go/internal/domain/services"
	"github.com/revas-hq/website-go/internal/infrastructure/cookies"
	"github.com/revas-hq/website-go/internal/infrastructure/observability/logging"
	"github.com/revas-hq/website-go/internal/infrastructure/observability/performance"
	"github.com/revas-hq/website-go/internal/presentation/http/middleware"
)

type stubWebsiteFetcher struct {
	website *content.Website
	err     *content.RemoteError
}

func (f *stubWebsiteFetcher) FetchWebsite(_ context.Context, _ repositories.WebsiteIdentity, _ string) (*content.Website, *content.RemoteError) {
	return f.website, f.err
}

func newWebsiteRouter(t *testing.T, fetcher repositories.WebsiteFetcher) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	loggerConfig := logging.DefaultLoggerConfig()
	loggerConfig.DefaultLevel = slog.LevelError + 1
	logger, err := logging.NewChanneledLogger(loggerConfig)
	require.NoError(t, err)

	service := services.NewWebsiteService(fetcher, logger)
	handlers := NewWebsiteHandlers(service, logger, performance.NewTracker(nil))

	r := gin.New()
	r.Use(middleware.WebsiteMiddleware())
	r.GET("/api/v1/websites/:locale", handlers.GetWebsite)
	return r
}

func setCookieNames(rec *httptest.ResponseRecorder) []string {
	names := []string{}
	for _, raw := range rec.Result().Cookies() {
		names = append(names, raw.Name)
	}
	return names
}

func TestGetWebsiteSuccess(t *testing.T) {
	fetcher := &stubWebsiteFetcher{website: &content.Website{
		ID:           "w1",
		LanguageCode: "it-IT",
		Title:        "Revas",
	}}
	router := newWebsiteRouter(t, fetcher)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/websites/it", nil)
	req.Header.Set("Revas-Authority", "www.revas.app")
	req.Header.Set("Revas-Public-Key", "pk-test")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "w1", body["id"])
	assert.Equal(t, "Revas", body["title"])

	assert.Contains(t, setCookieNames(rec), "www.revas.app.a11y")
	assert.Contains(t, setCookieNames(rec), "www.revas.app.i18n")
}

func TestGetWebsiteSetsCookiesOnFailure(t *testing.T) {
	fetcher := &stubWebsiteFetcher{err: &content.RemoteError{Code: content.CodeTransport, Message: "cms down"}}
	router := newWebsiteRouter(t, fetcher)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/websites/en", nil)
	req.Header.Set("Revas-Authority", "www.revas.app")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	errors, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, errors["getWebsite"])

	names := setCookieNames(rec)
	assert.Contains(t, names, "www.revas.app.a11y")
	assert.Contains(t, names, "www.revas.app.i18n")
}

func TestGetWebsiteNotFound(t *testing.T) {
	fetcher := &stubWebsiteFetcher{err: &content.RemoteError{Code: content.CodeNotFound, Message: "website not found"}}
	router := newWebsiteRouter(t, fetcher)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/websites/en", nil)
	req.Header.Set("Revas-Authority", "www.revas.app")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Len(t, setCookieNames(rec), 2)
}

func TestGetWebsiteQueryOverridesPersistToCookies(t *testing.T) {
	fetcher := &stubWebsiteFetcher{website: &content.Website{ID: "w1", LanguageCode: "en-US"}}
	router := newWebsiteRouter(t, fetcher)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/websites/en?contrastMode=high&textIncrease=200&selectedLocale=it-IT", nil)
	req.Header.Set("Revas-Authority", "www.revas.app")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	reread := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rec.Result().Cookies() {
		reread.AddCookie(cookie)
	}

	a11y := cookies.ReadA11y(reread, "www.revas.app")
	assert.Equal(t, domain.ContrastModeHigh, a11y.ContrastMode)
	assert.Equal(t, domain.TextIncrease200, a11y.TextIncreaseAmount)

	locale := cookies.ReadLocale(reread, "www.revas.app")
	assert.Equal(t, "it-IT", locale.SelectedLocale)
}
