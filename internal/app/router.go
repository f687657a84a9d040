// Package app provides router configuration.
package app

import (
	"github.com/guttosm/translate-service/config"
	"github.com/guttosm/translate-service/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(services *ServiceComponents, cfg config.Config) *RouterComponents {
	handler := http.NewHandler(services.Gateway)

	healthHandler := http.NewHealthHandler()
	healthHandler.SetInfo("provider", services.Gateway.Provider().Name())
	if services.CircuitBreaker != nil {
		healthHandler.RegisterCircuitBreaker("translation_provider", services.CircuitBreaker)
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config: http.RouterConfig{
			CORSOrigins: cfg.Server.CORSOrigins,
			SwaggerUser: cfg.Server.SwaggerUser,
			SwaggerPass: cfg.Server.SwaggerPass,
		},
	}
}
