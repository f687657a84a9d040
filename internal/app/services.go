// Package app provides service initialization.
package app

import (
	"fmt"
	"net/http"

	"github.com/guttosm/translate-service/config"
	"github.com/guttosm/translate-service/internal/circuitbreaker"
	"github.com/guttosm/translate-service/internal/logger"
	"github.com/guttosm/translate-service/internal/translator"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Gateway *translator.Gateway
	// CircuitBreaker is nil unless a failure threshold is configured.
	CircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeServices builds the translation gateway from cfg.
func InitializeServices(cfg config.TranslatorConfig) (*ServiceComponents, error) {
	client := &http.Client{Timeout: cfg.Timeout}

	provider, err := translator.NewProvider(cfg, client)
	if err != nil {
		return nil, fmt.Errorf("translator provider: %w", err)
	}

	languages, err := translator.NewLanguageTable(cfg.PrimaryLanguage, cfg.SecondaryLanguage)
	if err != nil {
		return nil, fmt.Errorf("translator languages: %w", err)
	}

	opts := []translator.Option{translator.WithTimeout(cfg.Timeout)}

	var cb *circuitbreaker.CircuitBreaker
	if cfg.CircuitBreakerFailureThreshold > 0 {
		cbConfig := circuitbreaker.DefaultConfig()
		cbConfig.FailureThreshold = cfg.CircuitBreakerFailureThreshold
		cbConfig.SuccessThreshold = cfg.CircuitBreakerSuccessThreshold
		cbConfig.Timeout = cfg.CircuitBreakerTimeout
		cb = circuitbreaker.New(cbConfig)
		opts = append(opts, translator.WithCircuitBreaker(cb))
	}

	gateway := translator.NewGateway(provider, languages, opts...)

	log := logger.Logger()
	log.Info().
		Str("provider", provider.Name()).
		Interface("languages", languages.Codes()).
		Dur("timeout", cfg.Timeout).
		Bool("circuit_breaker", cb != nil).
		Msg("Translation gateway initialized")

	return &ServiceComponents{
		Gateway:        gateway,
		CircuitBreaker: cb,
	}, nil
}
