package services

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// SlugFromFeedItemID extracts the item slug from a feed item id. Item ids are
// themselves URLs whose "content" query parameter carries the slug; that
// parameter is the only stable per-item path segment the CMS provides.
func SlugFromFeedItemID(id string) string {
	parsed, err := url.Parse(id)
	if err != nil {
		return ""
	}
	return parsed.Query().Get("content")
}

// MatchFeedItemID reports whether a feed item id resolves the requested slug.
// The extracted "content" parameter is compared for equality first; when it
// does not match, a suffix match on the raw id keeps short historical links
// resolving.
func MatchFeedItemID(id, slug string) bool {
	if slug == "" {
		return false
	}
	if SlugFromFeedItemID(id) == slug {
		return true
	}
	return strings.HasSuffix(id, slug)
}

var monthNames = map[string][]string{
	"en": {
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	"it": {
		"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno",
		"luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre",
	},
}

var weekdayNames = map[string][]string{
	"en": {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	"it": {"domenica", "lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato"},
}

// FormatFullDate renders a feed timestamp in the locale's full date style,
// e.g. "Monday, January 5, 2026" or "lunedì 5 gennaio 2026". Empty input
// stays empty; input that is not a timestamp passes through untouched.
func FormatFullDate(value, locale string) string {
	if value == "" {
		return ""
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t, err = time.Parse("2006-01-02", value)
	}
	if err != nil {
		return value
	}

	lang := BaseLanguage(locale)
	months, ok := monthNames[lang]
	if !ok {
		lang = "en"
		months = monthNames["en"]
	}
	weekdays := weekdayNames[lang]

	weekday := weekdays[int(t.Weekday())]
	month := months[int(t.Month())-1]

	if lang == "it" {
		return fmt.Sprintf("%s %d %s %d", weekday, t.Day(), month, t.Year())
	}
	return fmt.Sprintf("%s, %s %d, %d", weekday, month, t.Day(), t.Year())
}
