package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the kiosk service settings.
type Config struct {
	Port            string        `envconfig:"PORT" default:"9091"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"json"`
	DefaultCashier  string        `envconfig:"DEFAULT_CASHIER" default:"Kiosk"`
	ReceiptMessage  string        `envconfig:"RECEIPT_MESSAGE" default:"Have a great day!"`
	SeedMenu        bool          `envconfig:"SEED_MENU" default:"true"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
}

// Load reads the environment. Files in envFiles are loaded first when they
// exist; variables already set are not overridden.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		// a missing .env is fine
		_ = godotenv.Load(f)
	}
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}
	return &cfg, nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}
