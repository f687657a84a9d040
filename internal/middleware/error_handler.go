package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/translate-service/internal/domain/dto"
	"github.com/guttosm/translate-service/internal/i18n"
	"github.com/guttosm/translate-service/internal/logger"
)

// ErrorHandler returns a middleware that handles gin context errors.
// Errors attached by handlers are logged; if nothing was written yet a
// generic 500 is sent.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		log := logger.Logger()
		evt := log.Error()
		if c.Writer.Written() && c.Writer.Status() < http.StatusInternalServerError {
			evt = log.Warn()
		}
		evt.Str("request_id", GetRequestID(c)).
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Int("status_code", c.Writer.Status()).
			Msg("Request error")

		if !c.Writer.Written() {
			message := i18n.GetCatalog().Message(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			c.JSON(http.StatusInternalServerError, dto.NewError(message))
		}
	}
}
