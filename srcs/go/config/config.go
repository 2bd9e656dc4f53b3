package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	LogLevelEnvKey      = `PARTITIONS_CONFIG_LOG_LEVEL`
	ShowTimestampEnvKey = `PARTITIONS_CONFIG_SHOW_TIMESTAMP`
)

var ConfigEnvKeys = []string{
	LogLevelEnvKey,
	ShowTimestampEnvKey,
}

type Config struct {
	LogLevel      string `env:"PARTITIONS_CONFIG_LOG_LEVEL" envDefault:"INFO"`
	ShowTimestamp bool   `env:"PARTITIONS_CONFIG_SHOW_TIMESTAMP"`
}

// Load reads the config from the environment.
func Load() (*Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &c, nil
}
