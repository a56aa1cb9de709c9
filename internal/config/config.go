package config

import (
	"fmt"
	"time"
)

// DefaultDirectionsURL is the Google Maps Directions API JSON endpoint.
const DefaultDirectionsURL = "https://maps.googleapis.com/maps/api/directions/json"

// UpstreamConfig holds settings for the directions provider.
type UpstreamConfig struct {
	APIKey        string
	DirectionsURL string
	Timeout       time.Duration
}

// ServiceConfig holds all configuration for the routing service.
type ServiceConfig struct {
	Port     string
	AppEnv   string
	LogFile  string
	Upstream UpstreamConfig
}

// Load reads configuration from environment variables.
func Load() (*ServiceConfig, error) {
	v, err := load("ROUTING")
	if err != nil {
		return nil, err
	}

	cfg := &ServiceConfig{
		Port:     getServicePort(v, "SERVICE_PORT"),
		AppEnv:   getAppEnv(v),
		LogFile:  v.GetString("LOG_FILE"),
		Upstream: loadUpstreamConfig(v),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports settings the service cannot start without.
func (c *ServiceConfig) Validate() error {
	if c.Upstream.APIKey == "" {
		return fmt.Errorf("GOOGLE_MAPS_API_KEY is required")
	}
	if c.Upstream.DirectionsURL == "" {
		return fmt.Errorf("DIRECTIONS_URL must not be empty")
	}
	if c.Upstream.Timeout < 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must not be negative")
	}
	return nil
}
