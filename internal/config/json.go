package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration is a time.Duration that decodes from JSON strings such as "30s".
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	if s == "" {
		*d = 0
		return nil
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)

	return nil
}

// StructuredJSONConfig is the on-disk JSON layout of the configuration.
// Secrets are intentionally absent: the encryption key is only accepted from
// the environment.
type StructuredJSONConfig struct {
	App struct {
		Environment string `json:"environment"`
		TokenIssuer string `json:"token_issuer"`
		LogLevel    string `json:"log_level"`
		Version     string `json:"version"`

		DisableToneAnalysis bool `json:"disable_tone_analysis"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress      string   `json:"http_address"`
		RequestTimeout   Duration `json:"request_timeout"`
		AllowedOrigins   []string `json:"allowed_origins"`
		ExtractRateLimit float64  `json:"extract_rate_limit"`
		ExtractBurst     int      `json:"extract_burst"`
	} `json:"server,omitempty"`

	Adapter struct {
		PlansAddress    string   `json:"plans_address"`
		CommentsAddress string   `json:"comments_address"`
		RequestTimeout  Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Environment: jsonCfg.App.Environment,
			TokenIssuer: jsonCfg.App.TokenIssuer,
			LogLevel:    jsonCfg.App.LogLevel,
			Version:     jsonCfg.App.Version,

			DisableToneAnalysis: jsonCfg.App.DisableToneAnalysis,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:      jsonCfg.Server.HTTPAddress,
			RequestTimeout:   time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins:   jsonCfg.Server.AllowedOrigins,
			ExtractRateLimit: jsonCfg.Server.ExtractRateLimit,
			ExtractBurst:     jsonCfg.Server.ExtractBurst,
		},
		Adapter: Adapter{
			PlansAddress:    jsonCfg.Adapter.PlansAddress,
			CommentsAddress: jsonCfg.Adapter.CommentsAddress,
			RequestTimeout:  time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
	}

	return cfg, nil
}
