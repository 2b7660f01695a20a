package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config is loaded from BOOKSTORE_* environment variables with defaults
// matching the mock storefront scope.
type Config struct {
	HTTPAddr        string `envconfig:"HTTP_ADDR" default:":8080"`
	AdminEmail      string `envconfig:"ADMIN_EMAIL" default:"admin@bookstore.com"`
	AdminPassword   string `envconfig:"ADMIN_PASSWORD" default:"admin"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	SeedDemoOrders  bool   `envconfig:"SEED_DEMO_ORDERS" default:"true"`
	ShutdownTimeout int    `envconfig:"SHUTDOWN_TIMEOUT_SECONDS" default:"5"`
}

func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("bookstore", &c); err != nil {
		return nil, errors.Wrap(err, "process environment")
	}
	return &c, nil
}
