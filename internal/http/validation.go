package http

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/guttosm/translate-service/internal/domain/dto"
	"github.com/guttosm/translate-service/internal/i18n"
)

var registerTagNameOnce sync.Once

// useJSONFieldNames makes validator report fields by their JSON name,
// so a missing Sentence is reported at ["body", "sentence"].
func useJSONFieldNames() {
	registerTagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
	})
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// validationDetails converts a binding error into field-level detail.
func validationDetails(err error, locale string) []dto.FieldError {
	catalog := i18n.GetCatalog()
	fieldError := func(loc []string, key, errType string) dto.FieldError {
		return dto.FieldError{Loc: loc, Msg: catalog.Message(key, locale), Type: errType}
	}

	var (
		validationErrs validator.ValidationErrors
		typeErr        *json.UnmarshalTypeError
		syntaxErr      *json.SyntaxError
	)

	switch {
	case errors.As(err, &validationErrs):
		details := make([]dto.FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			loc := dto.BodyLoc(fe.Field())
			if fe.Tag() == "required" {
				details = append(details, fieldError(loc, i18n.ValidationKeyMissing, dto.ErrTypeMissing))
				continue
			}
			details = append(details, fieldError(loc, i18n.ValidationKeyInvalid, dto.ErrTypeInvalid))
		}
		return details

	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return []dto.FieldError{fieldError(dto.BodyLoc(), i18n.ValidationKeyInvalid, dto.ErrTypeInvalid)}
		}
		loc := dto.BodyLoc(strings.Split(typeErr.Field, ".")...)
		switch typeErr.Type.Kind() {
		case reflect.Bool:
			return []dto.FieldError{fieldError(loc, i18n.ValidationKeyBool, dto.ErrTypeBool)}
		case reflect.String:
			return []dto.FieldError{fieldError(loc, i18n.ValidationKeyString, dto.ErrTypeString)}
		default:
			return []dto.FieldError{fieldError(loc, i18n.ValidationKeyInvalid, dto.ErrTypeInvalid)}
		}

	case errors.As(err, &syntaxErr),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF):
		return []dto.FieldError{fieldError(dto.BodyLoc(), i18n.ValidationKeyInvalidJSON, dto.ErrTypeJSONDecode)}

	default:
		return []dto.FieldError{fieldError(dto.BodyLoc(), i18n.ValidationKeyInvalid, dto.ErrTypeInvalid)}
	}
}
