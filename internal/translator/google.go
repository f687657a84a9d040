package translator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
)

const (
	// DefaultGoogleBaseURL is the public Google Translate web endpoint host.
	DefaultGoogleBaseURL = "https://translate.googleapis.com"

	// maxResponseBytes caps how much of an upstream body is read.
	maxResponseBytes = 1 << 20
	// maxErrorBodyChars caps the upstream body excerpt kept in errors.
	maxErrorBodyChars = 256
)

// ErrUnexpectedResponse indicates the provider answered with a body of an unknown shape.
var ErrUnexpectedResponse = errors.New("unexpected response format")

// GoogleProvider translates through the Google Translate web API used by
// browser extensions (client=gtx). No credentials are required.
type GoogleProvider struct {
	baseURL string
	client  *http.Client
}

// NewGoogleProvider creates a provider rooted at baseURL.
// An empty baseURL selects DefaultGoogleBaseURL; a nil client selects http.DefaultClient.
func NewGoogleProvider(baseURL string, client *http.Client) *GoogleProvider {
	if baseURL == "" {
		baseURL = DefaultGoogleBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &GoogleProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// Name implements Provider.
func (p *GoogleProvider) Name() string {
	return "google"
}

// Translate implements Provider.
func (p *GoogleProvider) Translate(ctx context.Context, text, dest string) (string, error) {
	query := url.Values{}
	query.Set("client", "gtx")
	query.Set("sl", "auto")
	query.Set("tl", dest)
	query.Set("dt", "t")
	query.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/translate_a/single?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("google: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("google: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("google: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{
			Provider:   p.Name(),
			StatusCode: resp.StatusCode,
			Body:       excerpt(body),
		}
	}

	translated, err := parseGoogleResponse(body)
	if err != nil {
		return "", fmt.Errorf("google: %w", err)
	}
	return translated, nil
}

// parseGoogleResponse extracts the translation from a response shaped like
//
//	[[["สวัสดี","Hello",null,null,10]],null,"en",...]
//
// Long inputs are split upstream into several segments that are joined here.
// A null segment list means there was nothing to translate.
func parseGoogleResponse(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("%w: empty payload", ErrUnexpectedResponse)
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("%w: segments: %v", ErrUnexpectedResponse, err)
	}

	var sb strings.Builder
	for _, segment := range segments {
		if len(segment) == 0 {
			continue
		}
		var part *string
		if err := json.Unmarshal(segment[0], &part); err != nil {
			return "", fmt.Errorf("%w: segment text: %v", ErrUnexpectedResponse, err)
		}
		if part != nil {
			sb.WriteString(*part)
		}
	}
	return sb.String(), nil
}

func excerpt(body []byte) string {
	s := strings.TrimSpace(string(body))
	if r := []rune(s); len(r) > maxErrorBodyChars {
		return string(r[:maxErrorBodyChars]) + "..."
	}
	return s
}
