// Package config provides configuration management for the translate service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the complete application configuration.
type Config struct {
	Server     ServerConfig
	Log        LogConfig
	Translator TranslatorConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host        string
	Port        string
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
	// File enables a rotating log file in addition to stderr when set.
	File string
}

// TranslatorConfig holds the upstream translation provider configuration.
type TranslatorConfig struct {
	Provider          string
	BaseURL           string
	APIKey            string
	Timeout           time.Duration
	PrimaryLanguage   string
	SecondaryLanguage string
	// CircuitBreaker configuration. A zero failure threshold disables the breaker.
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
// A .env file in the working directory is read first when present;
// variables already set in the environment take precedence.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Server: ServerConfig{
			Host:        getEnv("HOST", "0.0.0.0"),
			Port:        getEnv("PORT", "8071"),
			CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser: getEnv("SWAGGER_USER", ""),
			SwaggerPass: getEnv("SWAGGER_PASS", ""),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
			File:   getEnv("LOG_FILE", ""),
		},
		Translator: TranslatorConfig{
			Provider:                       strings.ToLower(getEnv("TRANSLATOR_PROVIDER", "google")),
			BaseURL:                        getEnv("TRANSLATOR_BASE_URL", ""),
			APIKey:                         getEnv("TRANSLATOR_API_KEY", ""),
			Timeout:                        getEnvDuration("TRANSLATOR_TIMEOUT", 10*time.Second),
			PrimaryLanguage:                getEnv("PRIMARY_LANGUAGE", "en"),
			SecondaryLanguage:              getEnv("SECONDARY_LANGUAGE", "th"),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 0),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

// DefaultCORSOrigins returns the origins allowed for local development.
// They are always allowed in addition to CORS_ORIGINS.
func DefaultCORSOrigins() []string {
	return []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
}

func parseCORSOrigins(s string) []string {
	defaults := DefaultCORSOrigins()
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
