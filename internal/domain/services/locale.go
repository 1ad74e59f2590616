package services

import "golang.org/x/text/language"

// LocalePreference is the i18n cookie payload. An empty SelectedLocale means
// "no preference".
type LocalePreference struct {
	SelectedLocale string `json:"selectedLocale"`
}

// ResolveLocale computes the effective selected locale from the stored cookie
// value and the request's query override. The resolved value is always
// re-persisted on the response.
func ResolveLocale(stored LocalePreference, querySelectedLocale string) LocalePreference {
	if querySelectedLocale != "" {
		return LocalePreference{SelectedLocale: querySelectedLocale}
	}
	return stored
}

// ExpandLocale turns the route's locale parameter into the language code the
// CMS expects. The two short forms the site links use expand to their full
// tags; any other non-empty value passes through untouched.
func ExpandLocale(routeLocale string) string {
	switch routeLocale {
	case "it":
		return "it-IT"
	case "en":
		return "en-US"
	case "":
		return ""
	default:
		return routeLocale
	}
}

// BaseLanguage reduces a locale of any precision ("it", "it-IT", "en-US") to
// its base language code, falling back to English for unparseable input.
func BaseLanguage(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return "en"
	}
	base, _ := tag.Base()
	return base.String()
}
