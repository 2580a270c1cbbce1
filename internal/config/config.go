// Package config reads the configuration of the backend from the environment.
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"

	"github.com/envelope-zero/tracker/internal/models"
	"golang.org/x/exp/slices"
)

type Config struct {
	// HTTP server
	ListenAddr string
	APIURL     string

	// Storage
	DataDir string

	// Router
	AllowOrigins []string
	EnablePprof  bool
	StaticDir    string

	// Logging
	GinMode   string
	LogFormat string

	// Reports
	Currency string
}

// Load reads the configuration from the environment.
//
// Unset variables use their defaults.
func Load() *Config {
	return &Config{
		ListenAddr: getEnv("LISTEN_ADDR", "0.0.0.0:5000"),
		APIURL:     getEnv("API_URL", "http://localhost:5000"),

		DataDir: getEnv("DATA_DIR", "data"),

		AllowOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:  os.Getenv("ENABLE_PPROF") == "true",
		StaticDir:    os.Getenv("STATIC_DIR"),

		// gin uses debug as the default mode, we use release for
		// security reasons
		GinMode:   getEnv("GIN_MODE", "release"),
		LogFormat: os.Getenv("LOG_FORMAT"),

		Currency: getEnv("CURRENCY", "USD"),
	}
}

// Validate validates the configuration and returns an error if invalid.
//
// All problems are reported at once.
func (c *Config) Validate() error {
	var errors []string

	if _, _, err := net.SplitHostPort(c.ListenAddr); err != nil {
		errors = append(errors, fmt.Sprintf("invalid listen address '%s': %v", c.ListenAddr, err))
	}

	if u, err := url.Parse(c.APIURL); err != nil {
		errors = append(errors, fmt.Sprintf("invalid API URL '%s': %v", c.APIURL, err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid API URL scheme '%s': must be 'http' or 'https'", u.Scheme))
	}

	if c.DataDir == "" {
		errors = append(errors, "data directory cannot be empty")
	}

	if c.StaticDir != "" {
		if info, err := os.Stat(c.StaticDir); err != nil || !info.IsDir() {
			errors = append(errors, fmt.Sprintf("static directory '%s' does not exist", c.StaticDir))
		}
	}

	validModes := []string{"debug", "release", "test"}
	if !slices.Contains(validModes, c.GinMode) {
		errors = append(errors, fmt.Sprintf("invalid gin mode '%s': must be one of %v", c.GinMode, validModes))
	}

	validFormats := []string{"", "human", "json"}
	if !slices.Contains(validFormats, c.LogFormat) {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be 'human' or 'json'", c.LogFormat))
	}

	if _, err := models.ParseCurrency(c.Currency); err != nil {
		errors = append(errors, err.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// HumanLogs reports whether logs are written in human readable form.
//
// If the log format is not set, it defaults to human readable for development
// and JSON for release.
func (c *Config) HumanLogs() bool {
	if c.LogFormat == "" {
		return c.GinMode == "debug"
	}

	return c.LogFormat == "human"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
