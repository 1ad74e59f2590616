package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugFromFeedItemID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"https://api.revas.app/contents/render?content=my-post", "my-post"},
		{"https://api.revas.app/contents/render?publicKey=k&content=another-post", "another-post"},
		{"https://api.revas.app/contents/render", ""},
		{"", ""},
		{"://bad", ""},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, SlugFromFeedItemID(tt.id))
		})
	}
}

func TestMatchFeedItemID(t *testing.T) {
	id := "https://api.revas.app/contents/render?content=my-post"

	assert.True(t, MatchFeedItemID(id, "my-post"))
	assert.False(t, MatchFeedItemID(id, "other-post"))
	assert.False(t, MatchFeedItemID(id, ""))

	// Historical ids without a content parameter still resolve by suffix.
	assert.True(t, MatchFeedItemID("urn:revas:item:my-post", "my-post"))
	assert.False(t, MatchFeedItemID("urn:revas:item:my-post", "post-my"))
}

func TestFormatFullDate(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		locale string
		want   string
	}{
		{"english date only", "2026-01-05", "en-US", "Monday, January 5, 2026"},
		{"italian date only", "2026-01-05", "it-IT", "lunedì 5 gennaio 2026"},
		{"short locale", "2026-01-05", "it", "lunedì 5 gennaio 2026"},
		{"rfc3339", "2026-09-01T10:00:00Z", "en-US", "Tuesday, September 1, 2026"},
		{"unknown locale falls back to english", "2026-01-05", "de-DE", "Monday, January 5, 2026"},
		{"empty value", "", "en-US", ""},
		{"not a timestamp passes through", "some day", "en-US", "some day"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFullDate(tt.value, tt.locale))
		})
	}
}
