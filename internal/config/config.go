package config

import (
	"fmt"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the chronicles service.
// Environment variables are parsed from the CHRONICLES_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Progress store: sqlite | jsonfile | auto (auto resolves to sqlite)
	StoreDriver string `envconfig:"STORE_DRIVER" default:"auto"`
	DataDir     string `envconfig:"DATA_DIR" default:"./data"`

	// NASA API access
	NASAAPIKey    string `envconfig:"NASA_API_KEY" default:"DEMO_KEY"`
	APIBaseURL    string `envconfig:"API_BASE_URL" default:"https://api.nasa.gov"`
	ImagesBaseURL string `envconfig:"IMAGES_BASE_URL" default:"https://images-api.nasa.gov"`

	// Aggregation tuning
	CacheTTLSeconds    int `envconfig:"CACHE_TTL_SECONDS" default:"3600"`
	APODFloorYear      int `envconfig:"APOD_FLOOR_YEAR" default:"1995"`
	SearchPageSize     int `envconfig:"SEARCH_PAGE_SIZE" default:"5"`
	HTTPTimeoutSeconds int `envconfig:"HTTP_TIMEOUT_SECONDS" default:"10"`

	// Health monitoring
	HealthIntervalSeconds     int `envconfig:"HEALTH_INTERVAL_SECONDS" default:"30"`
	HealthProbeTimeoutSeconds int `envconfig:"HEALTH_PROBE_TIMEOUT_SECONDS" default:"5"`
}

// ResolveDefaults validates the store driver and derives paths.
func (c *Config) ResolveDefaults() error {
	if c.StoreDriver == "" || c.StoreDriver == "auto" {
		c.StoreDriver = "sqlite"
	}
	allowed := map[string]bool{"sqlite": true, "jsonfile": true}
	if !allowed[c.StoreDriver] {
		return fmt.Errorf("unsupported STORE_DRIVER: %s", c.StoreDriver)
	}
	if c.CacheTTLSeconds <= 0 {
		return fmt.Errorf("CACHE_TTL_SECONDS must be positive, got %d", c.CacheTTLSeconds)
	}
	if c.SearchPageSize <= 0 {
		return fmt.Errorf("SEARCH_PAGE_SIZE must be positive, got %d", c.SearchPageSize)
	}
	return nil
}

// StorePath returns the driver-specific location of the progress store.
func (c *Config) StorePath() string {
	if c.StoreDriver == "sqlite" {
		return filepath.Join(c.DataDir, "chronicles.db")
	}
	return c.DataDir
}

// New creates a new Config by parsing environment variables.
// Example: CHRONICLES_HTTP_PORT, CHRONICLES_NASA_API_KEY.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("CHRONICLES", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Str("store_driver", cfg.StoreDriver).
		Str("data_dir", cfg.DataDir).
		Int("cache_ttl_seconds", cfg.CacheTTLSeconds).
		Int("apod_floor_year", cfg.APODFloorYear).
		Str("nasa_key_present", func() string {
			if cfg.NASAAPIKey != "" && cfg.NASAAPIKey != "DEMO_KEY" {
				return "true"
			}
			return "false"
		}()).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing.
func NewForTesting() *Config {
	return &Config{
		Environment:               EnvTesting,
		HTTPPort:                  8080,
		StoreDriver:               "jsonfile",
		DataDir:                   "",
		NASAAPIKey:                "DEMO_KEY",
		APIBaseURL:                "https://api.nasa.gov",
		ImagesBaseURL:             "https://images-api.nasa.gov",
		CacheTTLSeconds:           3600,
		APODFloorYear:             1995,
		SearchPageSize:            5,
		HTTPTimeoutSeconds:        10,
		HealthIntervalSeconds:     30,
		HealthProbeTimeoutSeconds: 5,
	}
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
