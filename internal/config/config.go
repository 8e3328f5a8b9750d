// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Runtime environments accepted in App.Environment.
const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
	EnvTest        = "test"
)

// StructuredConfig is the top-level configuration container of the service.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: environment, secrets, logging.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network, timeout and throttling settings of the HTTP API.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the endpoints of the external collaborators (plan
	// lookup and comment fetching).
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Environment is one of production, development or test.
	// Only the test environment may fall back to the well-known test key.
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// StyleProfileKey is the 64-character hex AES-256 key used to encrypt
	// style profiles at rest.
	// Env: APP_STYLE_PROFILE_ENCRYPTION_KEY
	StyleProfileKey string `env:"STYLE_PROFILE_ENCRYPTION_KEY"`

	// TokenSignKey is the secret used to verify bearer tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of bearer tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// LogLevel is the zerolog level name (debug, info, warn, ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the semantic version of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// DisableToneAnalysis replaces the lexicon tone classifier with one that
	// reports every comment as neutral.
	// Env: APP_DISABLE_TONE_ANALYSIS
	DisableToneAnalysis bool `env:"DISABLE_TONE_ANALYSIS"`
}

// Storage groups the configuration of the storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the PostgreSQL backend.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound HTTP API.
type Server struct {
	// HTTPAddress is the "host:port" the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins is the CORS allow-list, comma separated in env.
	// Env: SERVER_ALLOWED_ORIGINS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// ExtractRateLimit is the sustained number of extraction requests per
	// second accepted by the process.
	// Env: SERVER_EXTRACT_RATE_LIMIT
	ExtractRateLimit float64 `env:"EXTRACT_RATE_LIMIT"`

	// ExtractBurst is the token bucket size of the extraction limiter.
	// Env: SERVER_EXTRACT_BURST
	ExtractBurst int `env:"EXTRACT_BURST"`
}

// Adapter holds the addresses of the external collaborators.
type Adapter struct {
	// PlansAddress is the base URL of the billing service answering plan
	// lookups.
	// Env: ADAPTER_PLANS_ADDRESS
	PlansAddress string `env:"PLANS_ADDRESS"`

	// CommentsAddress is the base URL of the integrations service that
	// fetches platform comments.
	// Env: ADAPTER_COMMENTS_ADDRESS
	CommentsAddress string `env:"COMMENTS_ADDRESS"`

	// ServiceToken is sent as a bearer token to both collaborators.
	// Env: ADAPTER_SERVICE_TOKEN
	ServiceToken string `env:"SERVICE_TOKEN"`

	// RequestTimeout bounds a single outbound call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// IsTest reports whether the service runs in the test environment.
func (a App) IsTest() bool {
	return a.Environment == EnvTest
}

// IsProduction reports whether the service runs in production.
func (a App) IsProduction() bool {
	return a.Environment == EnvProduction
}

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment: EnvProduction,
			TokenIssuer: "roastr",
			LogLevel:    "info",
		},
		Server: Server{
			HTTPAddress:      "localhost:8080",
			RequestTimeout:   30 * time.Second,
			ExtractRateLimit: 1,
			ExtractBurst:     5,
		},
		Adapter: Adapter{
			RequestTimeout: 10 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the service
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables, seeded from a .env file when one exists
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(dotEnvPath()).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
