package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsExternalURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://example.com", true},
		{"http://example.com/path", true},
		{"mailto:hello@example.com", true},
		{"tel:+3902000000", true},
		{"/about-us", false},
		{"about-us", false},
		{"", false},
		{"//example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExternalURL(tt.url))
		})
	}
}

func TestSocialNetworkOf(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.facebook.com/revas", "facebook"},
		{"https://twitter.com/revas", "twitter"},
		{"https://www.linkedin.com/company/revas", "linkedin"},
		{"https://dribbble.com/revas", "dribbble"},
		{"https://github.com/revas-hq", "github"},
		// A network name in the path does not classify the link.
		{"https://example.com/facebook", ""},
		{"https://example.com/?ref=instagram", ""},
		{"https://example.com", ""},
		{"/contact", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, SocialNetworkOf(tt.url))
		})
	}
}

func TestIsSocialURL(t *testing.T) {
	assert.True(t, IsSocialURL("https://www.youtube.com/@revas"))
	assert.False(t, IsSocialURL("https://example.com/youtube-embed"))
}
