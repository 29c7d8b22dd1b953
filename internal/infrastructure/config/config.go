package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Database holds Turso database configuration. Both fields empty means the
// in-memory store: useful for local runs and tests.
type Database struct {
	URL       string `envconfig:"TURSO_DATABASE_URL"`
	AuthToken string `envconfig:"TURSO_AUTH_TOKEN"`
}

// Server holds the full service configuration.
type Server struct {
	Database Database

	Port int `envconfig:"PORT" default:"8080"`

	// Timezone names the IANA location used to collapse timestamps to
	// calendar days. The original data was written with device-local
	// midnights; one configured location is applied uniformly here.
	Timezone string `envconfig:"TIMEZONE" default:"Local"`

	ReminderInterval time.Duration `envconfig:"REMINDER_INTERVAL" default:"10s"`
	ChatbotURL       string        `envconfig:"CHATBOT_URL"`
	Verbose          bool          `envconfig:"VERBOSE"`
}

// LoadServer loads server configuration from environment variables.
func LoadServer() (*Server, error) {
	var cfg Server
	if err := envconfig.Process("WELLSPRING", &cfg.Database); err != nil {
		return nil, err
	}
	if err := envconfig.Process("WELLSPRING", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Location resolves the configured timezone.
func (c *Server) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
