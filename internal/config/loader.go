package config

import (
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultPort   = ":8004"
	defaultAppEnv = "development"
)

// load returns a viper instance bound to environment variables under prefix.
func load(prefix string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("SERVICE_PORT", defaultPort)
	v.SetDefault("APP_ENV", defaultAppEnv)
	v.SetDefault("DIRECTIONS_URL", DefaultDirectionsURL)
	v.SetDefault("UPSTREAM_TIMEOUT", "0s")
	v.SetDefault("LOG_FILE", "")

	return v, nil
}

// getServicePort returns the listen address, accepting "8004" or ":8004".
func getServicePort(v *viper.Viper, key string) string {
	port := strings.TrimSpace(v.GetString(key))
	if port == "" {
		return defaultPort
	}
	if !strings.Contains(port, ":") {
		port = ":" + port
	}
	return port
}

func getAppEnv(v *viper.Viper) string {
	env := strings.ToLower(strings.TrimSpace(v.GetString("APP_ENV")))
	if env == "" {
		return defaultAppEnv
	}
	return env
}

func loadUpstreamConfig(v *viper.Viper) UpstreamConfig {
	return UpstreamConfig{
		APIKey:        v.GetString("GOOGLE_MAPS_API_KEY"),
		DirectionsURL: strings.TrimSpace(v.GetString("DIRECTIONS_URL")),
		Timeout:       v.GetDuration("UPSTREAM_TIMEOUT"),
	}
}
