// Package i18n localizes user-facing messages of the translate service.
// It covers validation and generic error messages; translated sentences
// themselves come from the upstream provider.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultCatalog *Catalog
	catalogOnce    sync.Once
)

// Catalog holds localized messages keyed by locale and message key.
type Catalog struct {
	messages map[string]map[string]string
}

// NewCatalog creates a catalog with the built-in messages.
func NewCatalog() *Catalog {
	return &Catalog{
		messages: defaultMessages,
	}
}

// GetCatalog returns the shared catalog instance.
func GetCatalog() *Catalog {
	catalogOnce.Do(func() {
		defaultCatalog = NewCatalog()
	})
	return defaultCatalog
}

// Message returns the message for key in locale.
// Unknown locales and missing keys fall back to DefaultLocale, then to the key itself.
func (c *Catalog) Message(key, locale string) string {
	if msgs, ok := c.messages[locale]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if msg, ok := c.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Supports reports whether the catalog has messages for locale.
func (c *Catalog) Supports(locale string) bool {
	_, ok := c.messages[locale]
	return ok
}

// GetLocale extracts the preferred supported locale from the Accept-Language header.
func GetLocale(c *gin.Context) string {
	return ParseLocale(c.GetHeader(AcceptLanguageHeader))
}

// ParseLocale picks the first language of an Accept-Language value,
// e.g. "th-TH,th;q=0.9,en;q=0.8" yields "th".
func ParseLocale(acceptLang string) string {
	if acceptLang == "" {
		return DefaultLocale
	}

	first := strings.Split(acceptLang, ",")[0]
	lang := strings.TrimSpace(strings.Split(first, ";")[0])
	if idx := strings.Index(lang, "-"); idx > 0 {
		lang = lang[:idx]
	}
	lang = strings.ToLower(lang)

	if GetCatalog().Supports(lang) {
		return lang
	}
	return DefaultLocale
}

var defaultMessages = map[string]map[string]string{
	"en": {
		ErrKeyInternalError:      "An unexpected error occurred",
		ErrKeyNotFound:           "Not Found",
		ErrKeyMethodNotAllowed:   "Method Not Allowed",
		ValidationKeyMissing:     "field required",
		ValidationKeyInvalidJSON: "JSON decode error",
		ValidationKeyBool:        "value could not be parsed to a boolean",
		ValidationKeyString:      "str type expected",
		ValidationKeyInvalid:     "value is not valid",
	},
	"th": {
		ErrKeyInternalError:      "เกิดข้อผิดพลาดที่ไม่คาดคิด",
		ErrKeyNotFound:           "ไม่พบ",
		ErrKeyMethodNotAllowed:   "ไม่อนุญาตให้ใช้เมธอดนี้",
		ValidationKeyMissing:     "จำเป็นต้องระบุฟิลด์นี้",
		ValidationKeyInvalidJSON: "ไม่สามารถอ่าน JSON ได้",
		ValidationKeyBool:        "ค่าต้องเป็นบูลีน",
		ValidationKeyString:      "ค่าต้องเป็นข้อความ",
		ValidationKeyInvalid:     "ค่าไม่ถูกต้อง",
	},
}
