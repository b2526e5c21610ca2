// internal/services/translate_service.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tab1k/tbd-back/internal/config"
	"github.com/tab1k/tbd-back/internal/translation"
)

// TranslateService calls an external LibreTranslate-compatible endpoint. It
// satisfies translation.Translator: every failure is captured in the Result
// so a slow or broken provider degrades to a missing translation instead of
// failing the save.
type TranslateService struct {
	cfg    config.TranslatorConfig
	client *http.Client
	log    *logrus.Entry
}

func NewTranslateService(cfg config.TranslatorConfig) *TranslateService {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &TranslateService{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		log:    logrus.WithField("component", "translate_service"),
	}
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

func (s *TranslateService) Translate(ctx context.Context, text string, target translation.Language) translation.Result {
	text = strings.TrimSpace(text)
	if text == "" {
		// Nothing to translate; not a failure.
		return translation.Result{}
	}

	if s.cfg.BaseURL == "" {
		// Auto-translation is disabled; entities stay untranslated.
		return translation.Result{}
	}

	res := s.call(ctx, text, target)
	if res.Err != nil {
		s.log.WithError(res.Err).WithField("target", string(target)).Warn("translation provider call failed")
	}
	return res
}

func (s *TranslateService) call(ctx context.Context, text string, target translation.Language) translation.Result {
	payload, err := json.Marshal(translateRequest{
		Q:      text,
		Source: string(translation.LanguageRU),
		Target: string(target),
		Format: "text",
		APIKey: s.cfg.APIKey,
	})
	if err != nil {
		return translation.Result{Err: fmt.Errorf("encode request: %w", err)}
	}

	url := strings.TrimRight(s.cfg.BaseURL, "/") + "/translate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return translation.Result{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return translation.Result{Err: fmt.Errorf("provider unreachable: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return translation.Result{Err: fmt.Errorf("provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))}
	}

	var result translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return translation.Result{Err: fmt.Errorf("decode response: %w", err)}
	}

	translated := strings.TrimSpace(result.TranslatedText)
	if translated == "" {
		return translation.Result{Err: fmt.Errorf("provider returned empty translation")}
	}

	return translation.Result{Text: translated}
}
