// Package translator implements the translation gateway: it resolves the
// destination language for a request, performs a single call to the upstream
// provider and normalizes every upstream error into a Failure.
package translator

import (
	"context"
	"fmt"
)

// Provider is an external translation service.
// Implementations must be safe for concurrent use.
type Provider interface {
	// Name identifies the provider in logs and metrics.
	Name() string
	// Translate renders text into the dest language. The source language is
	// detected by the provider.
	Translate(ctx context.Context, text, dest string) (string, error)
}

// Direction selects the destination language of a translation.
type Direction bool

const (
	// Primary translates into the primary language (English by default).
	Primary Direction = false
	// Secondary translates into the secondary language (Thai by default).
	Secondary Direction = true
)

// String returns "primary" or "secondary".
func (d Direction) String() string {
	if d == Secondary {
		return "secondary"
	}
	return "primary"
}

// Result is a successful translation.
type Result struct {
	TranslatedText string
}

// Failure is the single error kind returned by the gateway.
// It wraps whatever the provider reported.
type Failure struct {
	Err error
}

func newFailure(err error) *Failure {
	return &Failure{Err: err}
}

// Error implements error.
func (f *Failure) Error() string {
	return "Translation failed: " + f.Message()
}

// Message returns the underlying cause as text.
func (f *Failure) Message() string {
	if f.Err == nil {
		return "unknown error"
	}
	return f.Err.Error()
}

// Unwrap returns the provider error.
func (f *Failure) Unwrap() error {
	return f.Err
}

// StatusError reports a non-successful HTTP response from a provider.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: upstream returned status %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s: upstream returned status %d: %s", e.Provider, e.StatusCode, e.Body)
}
