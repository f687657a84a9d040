// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/translate-service/config"
	"github.com/guttosm/translate-service/internal/logger"
)

// InitializeLogger initializes the JSON logger from the log configuration.
func InitializeLogger(cfg config.LogConfig) {
	logger.Setup(logger.Options{
		Level:  cfg.Level,
		Pretty: cfg.Pretty,
		File:   cfg.File,
	})
}
