package services

import (
	"net/url"
	"regexp"
	"strings"
)

// socialNetworks are the networks the renderer has icons for. The derived
// type for anything else is "link".
var socialNetworks = []string{
	"facebook",
	"twitter",
	"instagram",
	"linkedin",
	"github",
	"gitlab",
	"youtube",
	"tiktok",
	"twitch",
	"snapchat",
	"whatsapp",
	"wechat",
	"dribbble",
}

var schemePattern = regexp.MustCompile(`^[a-z][a-z0-9+.-]*:`)

// IsExternalURL reports whether the URL carries an explicit scheme and is
// therefore rendered as an external link.
func IsExternalURL(rawURL string) bool {
	return schemePattern.MatchString(rawURL)
}

// SocialNetworkOf returns the social network a URL points at, or "" when the
// URL is not a recognized social profile. The check matches host labels, not
// raw substrings, so a path that merely mentions a network does not classify.
func SocialNetworkOf(rawURL string) string {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || parsed.Host == "" {
		return ""
	}

	labels := strings.Split(strings.ToLower(parsed.Hostname()), ".")
	for _, network := range socialNetworks {
		for _, label := range labels {
			if label == network {
				return network
			}
		}
	}
	return ""
}

// IsSocialURL reports whether the URL points at one of the known social
// networks.
func IsSocialURL(rawURL string) bool {
	return SocialNetworkOf(rawURL) != ""
}
