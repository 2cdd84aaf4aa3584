package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is loaded from environment variables.
type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"investment-service"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`
	ChartWidth  int    `env:"CHART_WIDTH" envDefault:"1000"`
	ChartHeight int    `env:"CHART_HEIGHT" envDefault:"600"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
