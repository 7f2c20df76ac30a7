// Package config loads the emulator's process configuration from the
// environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is everything pvcmd reads from its environment.
type Config struct {
	// Home is the base of the canned data tree.
	Home string `env:"HOME,required,notEmpty"`
}

// ParseEnv loads configuration from environment variables into target.
// A nil environ reads the process environment.
func ParseEnv(target any, environ map[string]string) error {
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the emulator configuration.
func Load(environ map[string]string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg, environ); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
