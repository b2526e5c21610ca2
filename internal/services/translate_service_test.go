// internal/services/translate_service_test.go
package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tab1k/tbd-back/internal/config"
	"github.com/tab1k/tbd-back/internal/translation"
)

func TestTranslateSuccess(t *testing.T) {
	var gotPath string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]string{"translatedText": "Hello"})
	}))
	defer srv.Close()

	svc := NewTranslateService(config.TranslatorConfig{BaseURL: srv.URL, APIKey: "k"})
	res := svc.Translate(context.Background(), "Привет", translation.LanguageEN)

	require.True(t, res.OK())
	assert.Equal(t, "Hello", res.Text)
	assert.Equal(t, "/translate", gotPath)
	assert.Equal(t, "Привет", gotBody["q"])
	assert.Equal(t, "ru", gotBody["source"])
	assert.Equal(t, "en", gotBody["target"])
	assert.Equal(t, "k", gotBody["api_key"])
}

func TestTranslateProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream overloaded", http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := NewTranslateService(config.TranslatorConfig{BaseURL: srv.URL})
	res := svc.Translate(context.Background(), "Привет", translation.LanguageEN)

	assert.False(t, res.OK())
	assert.Error(t, res.Err)
	assert.Empty(t, res.Text)
}

func TestTranslateEmptyProviderResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"translatedText": "   "})
	}))
	defer srv.Close()

	svc := NewTranslateService(config.TranslatorConfig{BaseURL: srv.URL})
	res := svc.Translate(context.Background(), "Привет", translation.LanguageEN)

	assert.False(t, res.OK())
	assert.Error(t, res.Err)
}

func TestTranslateBlankInputShortCircuits(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	svc := NewTranslateService(config.TranslatorConfig{BaseURL: srv.URL})
	res := svc.Translate(context.Background(), "   ", translation.LanguageEN)

	assert.NoError(t, res.Err)
	assert.Empty(t, res.Text)
	assert.False(t, called, "blank input must not reach the provider")
}

func TestTranslateDisabledWithoutBaseURL(t *testing.T) {
	svc := NewTranslateService(config.TranslatorConfig{})
	res := svc.Translate(context.Background(), "Привет", translation.LanguageEN)

	assert.NoError(t, res.Err)
	assert.Empty(t, res.Text)
}
