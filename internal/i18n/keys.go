package i18n

// Error message keys.
const (
	ErrKeyInternalError    = "error.internal_error"
	ErrKeyNotFound         = "error.not_found"
	ErrKeyMethodNotAllowed = "error.method_not_allowed"
)

// Validation message keys, one per rejection reason of a request body.
const (
	ValidationKeyMissing     = "validation.missing"
	ValidationKeyInvalidJSON = "validation.invalid_json"
	ValidationKeyBool        = "validation.type_bool"
	ValidationKeyString      = "validation.type_string"
	ValidationKeyInvalid     = "validation.invalid"
)
