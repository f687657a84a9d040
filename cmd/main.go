// Package main is the entry point for the translate-service application.
//
// @title           Translate Service API
// @version         1.0.0
// @description     Translates a sentence between a primary language (English) and a secondary language (Thai).
//
//	The source language is detected by the upstream provider; the request only selects the destination.
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/translate-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8071
// @BasePath  /
//
// @tag.name        Translation
// @tag.description Sentence translation
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/guttosm/translate-service/docs" // swagger docs

	"github.com/guttosm/translate-service/config"
	"github.com/guttosm/translate-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := app.NewServer(router, cfg.Server.Addr())

	if err := server.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
