package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all application configuration
type Config struct {
	Port      string `env:"PORT" env-default:"8080"`
	DBPath    string `env:"DB_PATH" env-default:"spotify_data.db"`
	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `env:"LOG_FORMAT" env-default:"text"`
	LogFile   string `env:"LOG_FILE" env-default:"spotify_data_api.log"`
}

// Load reads configuration from the environment, with a .env file
// honored when one exists in the working directory.
func Load() (*Config, error) {
	var cfg Config

	if _, err := os.Stat(".env"); err == nil {
		if err := cleanenv.ReadConfig(".env", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read .env: %w", err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return &cfg, nil
}

// Validate validates the configuration and returns detailed errors
func (c *Config) Validate() error {
	var errs []string

	if c.Port == "" {
		errs = append(errs, "PORT cannot be empty")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errs = append(errs, fmt.Sprintf("PORT must be a valid number, got: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errs = append(errs, fmt.Sprintf("PORT must be between 1 and 65535, got: %d", port))
		}
	}

	if c.DBPath == "" {
		errs = append(errs, "DB_PATH cannot be empty")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL must be one of: debug, info, warn, error, got: %s", c.LogLevel))
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[c.LogFormat] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT must be one of: text, json, got: %s", c.LogFormat))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
