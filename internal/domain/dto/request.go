// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the translation gateway and carry the
// wire names of the public API.
package dto

// TranslationRequest represents the JSON request body of POST /translate/.
//
// Both fields are required. They are pointers so that an empty sentence and a
// false choice are accepted as values rather than reported as missing.
//
// @Description Sentence to translate and the direction flag
// @Example {"sentence": "Hello", "choice": true}
type TranslationRequest struct {
	// Sentence is the text to translate. Its language is detected upstream.
	Sentence *string `json:"sentence" binding:"required" example:"Hello"`
	// Choice selects the destination: true for the secondary language (Thai),
	// false for the primary language (English).
	Choice *bool `json:"choice" binding:"required" example:"true"`
} // @name TranslationRequest

// Text returns the sentence, or "" when unset.
func (r *TranslationRequest) Text() string {
	if r.Sentence == nil {
		return ""
	}
	return *r.Sentence
}

// Direction returns the choice flag, or false when unset.
func (r *TranslationRequest) Direction() bool {
	return r.Choice != nil && *r.Choice
}
