package http

import (
	"github.com/gin-gonic/gin"
)

// PublicRouteGroup defines routes that don't require authentication.
type PublicRouteGroup interface {
	// RegisterPublicRoutes registers public routes to the given router group.
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// TranslateRoutes handles translation route registration.
type TranslateRoutes struct {
	handler *Handler
}

var _ PublicRouteGroup = (*TranslateRoutes)(nil)

// NewTranslateRoutes creates a new TranslateRoutes instance.
func NewTranslateRoutes(handler *Handler) *TranslateRoutes {
	return &TranslateRoutes{handler: handler}
}

// RegisterPublicRoutes registers the translation endpoint.
func (r *TranslateRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/translate/", r.handler.Translate)
}
