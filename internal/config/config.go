// SPDX-License-Identifier: MIT

// Package config loads platestat runtime settings from an optional .env file
// and PLATESTAT_* environment variables, and builds the process logger.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix.
const Prefix = "PLATESTAT"

// DefaultEnvFile is read when present; a missing file is not an error.
const DefaultEnvFile = ".env"

// Config holds runtime settings.
type Config struct {
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	LogFormat        string `envconfig:"LOG_FORMAT" default:"text" validate:"oneof=text json"`
	Delimiter        string `envconfig:"DELIMITER" default:"," validate:"required"`
	DecimalPrecision int32  `envconfig:"DECIMAL_PRECISION" default:"16" validate:"min=1,max=64"`
}

// Load reads envFiles (DefaultEnvFile when none are given) without
// overriding variables already set, then processes PLATESTAT_* variables and
// validates the result. Explicitly named files must exist.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", DefaultEnvFile, err)
		}
	} else if err := godotenv.Load(envFiles...); err != nil {
		return nil, fmt.Errorf("config: load %s: %w", strings.Join(envFiles, ","), err)
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: validation failed: %w", err)
	}

	return nil
}

// Level maps LogLevel to a slog level; unknown values map to Info.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return level
}

// NewLogger builds a text or JSON logger writing to w at the configured level.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Level()}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
