package translator

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

// DefaultLibreTranslateBaseURL is the public LibreTranslate instance.
const DefaultLibreTranslateBaseURL = "https://libretranslate.com"

// LibreTranslateProvider translates through a LibreTranslate server.
type LibreTranslateProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

type libreRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type libreResponse struct {
	TranslatedText *string `json:"translatedText"`
	Error          string  `json:"error"`
}

// NewLibreTranslateProvider creates a provider rooted at baseURL.
// An empty baseURL selects DefaultLibreTranslateBaseURL; a nil client selects http.DefaultClient.
func NewLibreTranslateProvider(baseURL, apiKey string, client *http.Client) *LibreTranslateProvider {
	if baseURL == "" {
		baseURL = DefaultLibreTranslateBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &LibreTranslateProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

// Name implements Provider.
func (p *LibreTranslateProvider) Name() string {
	return "libretranslate"
}

// Translate implements Provider.
func (p *LibreTranslateProvider) Translate(ctx context.Context, text, dest string) (string, error) {
	payload, err := json.Marshal(libreRequest{
		Q:      text,
		Source: "auto",
		Target: dest,
		Format: "text",
		APIKey: p.apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("libretranslate: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/translate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("libretranslate: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("libretranslate: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("libretranslate: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var lr libreResponse
		if json.Unmarshal(body, &lr) == nil && lr.Error != "" {
			return "", &StatusError{Provider: p.Name(), StatusCode: resp.StatusCode, Body: lr.Error}
		}
		return "", &StatusError{Provider: p.Name(), StatusCode: resp.StatusCode, Body: excerpt(body)}
	}

	var lr libreResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return "", fmt.Errorf("libretranslate: %w: %v", ErrUnexpectedResponse, err)
	}
	if lr.Error != "" {
		return "", fmt.Errorf("libretranslate: %s", lr.Error)
	}
	if lr.TranslatedText == nil {
		return "", fmt.Errorf("libretranslate: %w: missing translatedText", ErrUnexpectedResponse)
	}
	return *lr.TranslatedText, nil
}
