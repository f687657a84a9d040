package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/translate-service/internal/domain/dto"
	"github.com/guttosm/translate-service/internal/i18n"
	"github.com/guttosm/translate-service/internal/metrics"
	"github.com/guttosm/translate-service/internal/translator"
)

// Handler provides HTTP handlers for translation routes.
type Handler struct {
	service translator.Service
}

// NewHandler creates a new Handler instance.
func NewHandler(service translator.Service) *Handler {
	useJSONFieldNames()
	return &Handler{service: service}
}

// Translate handles POST /translate/ requests.
//
// @Summary      Translate a sentence
// @Description  Translates the sentence into the secondary language (Thai by default) when choice is true, or into the primary language (English by default) when choice is false. The source language is detected by the upstream provider.
// @Tags         Translation
// @Accept       json
// @Produce      json
// @Param        Accept-Language header string false "Locale of validation messages (en, th)"
// @Param        request body dto.TranslationRequest true "Sentence and direction"
// @Success      200 {object} dto.TranslationResponse "Translated sentence"
// @Failure      422 {object} dto.ValidationErrorResponse "Malformed or incomplete request body"
// @Failure      500 {object} dto.ErrorResponse "Translation failed"
// @Router       /translate/ [post]
func (h *Handler) Translate(c *gin.Context) {
	var req dto.TranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.RecordValidationFailure()
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponse{
			Detail: validationDetails(err, i18n.GetLocale(c)),
		})
		return
	}

	result, err := h.service.Translate(c.Request.Context(), req.Text(), req.Direction())
	if err != nil {
		_ = c.Error(err)
		c.AbortWithStatusJSON(statusForError(err))
		return
	}

	c.JSON(http.StatusOK, dto.TranslationResponse{Translation: result.TranslatedText})
}

// statusForError maps a gateway error to the HTTP status and body sent to
// the client. Every failure cause shares one status.
func statusForError(err error) (int, any) {
	var failure *translator.Failure
	if !errors.As(err, &failure) {
		failure = &translator.Failure{Err: err}
	}
	return http.StatusInternalServerError, dto.NewError(failure.Error())
}
