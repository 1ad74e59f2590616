// Package cookies reads and writes the per-website preference cookies. The
// a11y and i18n preferences are independently serialized JSON payloads,
// base64url-encoded, keyed by website name.
package cookies

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/revas-hq/website-go/internal/domain/services"
)

// Cookie key suffixes. The legacy keys used "/" as separator, which is not a
// valid RFC 6265 cookie-name token.
const (
	a11ySuffix = ".a11y"
	i18nSuffix = ".i18n"
)

const maxAgeOneYear = 365 * 24 * 60 * 60

// A11yCookieName returns the accessibility cookie key for a website.
func A11yCookieName(websiteName string) string {
	return sanitizeName(websiteName) + a11ySuffix
}

// I18nCookieName returns the locale cookie key for a website.
func I18nCookieName(websiteName string) string {
	return sanitizeName(websiteName) + i18nSuffix
}

// sanitizeName strips the characters RFC 6265 forbids in cookie names.
func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '(', ')', '<', '>', '@', ',', ';', ':', '\\', '"', '/', '[', ']', '?', '=', '{', '}', ' ':
			return '-'
		}
		return r
	}, name)
}

// ReadA11y decodes the stored accessibility preferences, returning zero-value
// preferences when the cookie is absent or unreadable.
func ReadA11y(r *http.Request, websiteName string) services.A11yPreferences {
	var prefs services.A11yPreferences
	readJSON(r, A11yCookieName(websiteName), &prefs)
	return prefs
}

// ReadLocale decodes the stored locale preference, returning the zero value
// when the cookie is absent or unreadable.
func ReadLocale(r *http.Request, websiteName string) services.LocalePreference {
	var pref services.LocalePreference
	readJSON(r, I18nCookieName(websiteName), &pref)
	return pref
}

// NewA11yCookie serializes accessibility preferences into a Set-Cookie value.
func NewA11yCookie(websiteName string, prefs services.A11yPreferences) *http.Cookie {
	return newJSONCookie(A11yCookieName(websiteName), prefs)
}

// NewLocaleCookie serializes the locale preference into a Set-Cookie value.
func NewLocaleCookie(websiteName string, pref services.LocalePreference) *http.Cookie {
	return newJSONCookie(I18nCookieName(websiteName), pref)
}

func readJSON(r *http.Request, name string, out any) {
	cookie, err := r.Cookie(name)
	if err != nil {
		return
	}
	payload, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return
	}
	// Malformed payloads read as "no preference" rather than failing the request.
	_ = json.Unmarshal(payload, out)
}

func newJSONCookie(name string, value any) *http.Cookie {
	payload, _ := json.Marshal(value)
	return &http.Cookie{
		Name:     name,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		MaxAge:   maxAgeOneYear,
		SameSite: http.SameSiteLaxMode,
	}
}
