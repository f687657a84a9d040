// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/translate-service/config"
	"github.com/guttosm/translate-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// It fails when the translator configuration is unusable, so a bad
// provider name or language tag stops the process at startup.
func InitializeApp(cfg config.Config) (*gin.Engine, error) {
	InitializeLogger(cfg.Log)

	serviceComponents, err := InitializeServices(cfg.Translator)
	if err != nil {
		return nil, err
	}

	routerComponents := InitializeRouter(serviceComponents, cfg)

	return http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config), nil
}
