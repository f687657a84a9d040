package translator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/translate-service/internal/circuitbreaker"
	"github.com/guttosm/translate-service/internal/logger"
	"github.com/guttosm/translate-service/internal/metrics"
)

// Service defines the translation operation consumed by the HTTP layer.
// This interface can be mocked for testing.
type Service interface {
	// Translate renders sentence into the language selected by direction.
	// Any error returned is a *Failure.
	Translate(ctx context.Context, sentence string, direction bool) (Result, error)
}

// Gateway implements Service on top of a single Provider.
type Gateway struct {
	provider  Provider
	languages LanguageTable
	timeout   time.Duration
	breaker   *circuitbreaker.CircuitBreaker
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithTimeout bounds each provider call. Zero means no bound.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		g.timeout = d
	}
}

// WithCircuitBreaker guards provider calls with cb.
func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker) Option {
	return func(g *Gateway) {
		g.breaker = cb
	}
}

// NewGateway creates a Gateway for provider using the given language table.
func NewGateway(provider Provider, languages LanguageTable, opts ...Option) *Gateway {
	g := &Gateway{
		provider:  provider,
		languages: languages,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Provider returns the upstream provider.
func (g *Gateway) Provider() Provider {
	return g.provider
}

// Languages returns the direction table.
func (g *Gateway) Languages() LanguageTable {
	return g.languages
}

// CircuitBreaker returns the breaker guarding provider calls, or nil.
func (g *Gateway) CircuitBreaker() *circuitbreaker.CircuitBreaker {
	return g.breaker
}

// Translate performs exactly one provider call. The provider text is returned
// verbatim on success; every failure is returned as a *Failure.
func (g *Gateway) Translate(ctx context.Context, sentence string, direction bool) (Result, error) {
	dir := Direction(direction)
	log := logger.FromContext(ctx).With().
		Str("provider", g.provider.Name()).
		Str("direction", dir.String()).
		Logger()

	dest, err := g.languages.Resolve(dir)
	if err != nil {
		log.Error().Err(err).Msg("Translation direction not configured")
		return Result{}, newFailure(err)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := g.call(ctx, sentence, dest)
	duration := time.Since(start)

	if err != nil {
		metrics.RecordTranslation(g.provider.Name(), dir.String(), metrics.StatusFailure, duration)
		log.Warn().
			Err(err).
			Str("dest", dest).
			Int64("duration_ms", duration.Milliseconds()).
			Msg("Translation failed")
		return Result{}, newFailure(err)
	}

	metrics.RecordTranslation(g.provider.Name(), dir.String(), metrics.StatusSuccess, duration)
	log.Debug().
		Str("dest", dest).
		Int("chars", len(sentence)).
		Int64("duration_ms", duration.Milliseconds()).
		Msg("Translation completed")

	return Result{TranslatedText: text}, nil
}

type outcome struct {
	text string
	err  error
}

// call runs the provider in its own goroutine so a provider that ignores
// ctx still cannot hold the request past its deadline.
func (g *Gateway) call(ctx context.Context, sentence, dest string) (string, error) {
	var text string
	invoke := func() error {
		ch := make(chan outcome, 1)
		go func() {
			defer func() {
				if r := recover(); r != nil {
					ch <- outcome{err: fmt.Errorf("provider %s panicked: %v", g.provider.Name(), r)}
				}
			}()
			t, err := g.provider.Translate(ctx, sentence, dest)
			ch <- outcome{text: t, err: err}
		}()

		select {
		case o := <-ch:
			text = o.text
			return o.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	var err error
	if g.breaker == nil {
		err = invoke()
	} else {
		err = g.breaker.Execute(ctx, invoke)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		err = fmt.Errorf("%s: request timed out: %w", g.provider.Name(), err)
	}
	return text, err
}
