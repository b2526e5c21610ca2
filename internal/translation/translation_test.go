// internal/translation/translation_test.go
package translation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected Language
	}{
		{"ru", LanguageRU},
		{"en", LanguageEN},
		{"EN", LanguageEN},
		{"en-US", LanguageEN},
		{"en_GB", LanguageEN},
		{"ru-RU", LanguageRU},
		{"de", LanguageRU},
		{"kk", LanguageRU},
		{"", LanguageRU},
		{"  en  ", LanguageEN},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Normalize(tt.input), "input: %q", tt.input)
	}
}

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		header   string
		expected Language
	}{
		{"query wins over header", "en", "ru-RU,ru;q=0.9", LanguageEN},
		{"header used when no query", "", "en-US,en;q=0.9,ru;q=0.8", LanguageEN},
		{"first header tag only", "", "ru,en;q=0.9", LanguageRU},
		{"unknown query falls back to russian", "fr", "", LanguageRU},
		{"nothing given", "", "", LanguageRU},
		{"header with quality factor", "", "en;q=0.5", LanguageEN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromRequest(tt.query, tt.header))
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		primary   string
		secondary string
		lang      Language
		fallback  string
		expected  string
	}{
		{"russian always returns primary", "Привет", "Hello", LanguageRU, "", "Привет"},
		{"english returns secondary when present", "Привет", "Hello", LanguageEN, "", "Hello"},
		{"english falls back to primary", "Привет", "", LanguageEN, "", "Привет"},
		{"both empty returns fallback", "", "", LanguageEN, "Case 5", "Case 5"},
		{"both empty russian returns fallback", "", "", LanguageRU, "Case 5", "Case 5"},
		{"secondary ignored for russian even when primary empty", "", "Hello", LanguageRU, "x", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(tt.primary, tt.secondary, tt.lang, tt.fallback))
		})
	}
}
