package translator

import (
	"fmt"
	"net/http"

	"github.com/guttosm/translate-service/config"
)

// Supported provider names.
const (
	ProviderGoogle         = "google"
	ProviderLibreTranslate = "libretranslate"
)

// NewProvider creates the provider named in cfg.
func NewProvider(cfg config.TranslatorConfig, client *http.Client) (Provider, error) {
	switch cfg.Provider {
	case ProviderGoogle, "":
		return NewGoogleProvider(cfg.BaseURL, client), nil
	case ProviderLibreTranslate:
		return NewLibreTranslateProvider(cfg.BaseURL, cfg.APIKey, client), nil
	default:
		return nil, fmt.Errorf("unknown translation provider %q", cfg.Provider)
	}
}
