package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLocale(t *testing.T) {
	stored := LocalePreference{SelectedLocale: "it-IT"}

	assert.Equal(t, "en-US", ResolveLocale(stored, "en-US").SelectedLocale)
	assert.Equal(t, "it-IT", ResolveLocale(stored, "").SelectedLocale)
	assert.Equal(t, "", ResolveLocale(LocalePreference{}, "").SelectedLocale)
}

func TestExpandLocale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"it", "it-IT"},
		{"en", "en-US"},
		{"fr-FR", "fr-FR"},
		{"es", "es"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandLocale(tt.in))
		})
	}
}

func TestBaseLanguage(t *testing.T) {
	assert.Equal(t, "it", BaseLanguage("it-IT"))
	assert.Equal(t, "it", BaseLanguage("it"))
	assert.Equal(t, "en", BaseLanguage("en-US"))
	assert.Equal(t, "en", BaseLanguage(""))
	assert.Equal(t, "en", BaseLanguage("???"))
}
