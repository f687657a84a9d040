package dto

// Validation error types reported in FieldError.Type.
const (
	ErrTypeMissing    = "value_error.missing"
	ErrTypeJSONDecode = "value_error.jsondecode"
	ErrTypeBool       = "type_error.bool"
	ErrTypeString     = "type_error.str"
	ErrTypeInvalid    = "value_error"
)

// TranslationResponse is returned on a successful translation.
// @Description Translated text as reported by the provider
type TranslationResponse struct {
	Translation string `json:"translation" example:"สวัสดี"`
} // @name TranslationResponse

// ErrorResponse carries a single human-readable error.
// @Description Error response
type ErrorResponse struct {
	Detail string `json:"detail" example:"Translation failed: google: upstream returned status 429"`
} // @name ErrorResponse

// FieldError describes one rejected part of a request body.
type FieldError struct {
	// Loc is the path of the offending value, e.g. ["body", "choice"].
	Loc  []string `json:"loc" example:"body,sentence"`
	Msg  string   `json:"msg" example:"field required"`
	Type string   `json:"type" example:"value_error.missing"`
} // @name FieldError

// ValidationErrorResponse is returned with 422 when the body is rejected.
// @Description Request body validation errors
type ValidationErrorResponse struct {
	Detail []FieldError `json:"detail"`
} // @name ValidationErrorResponse

// NewError creates an ErrorResponse.
func NewError(detail string) ErrorResponse {
	return ErrorResponse{Detail: detail}
}

// BodyLoc builds a location inside the request body.
func BodyLoc(field ...string) []string {
	return append([]string{"body"}, field...)
}
