// Package config holds runtime settings read from the environment.
package config

import (
	"errors"
	"time"
)

type Config struct {
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string        `env:"LOG_FORMAT" envDefault:"text"`
	RenderDelay time.Duration `env:"ROVER_RENDER_DELAY" envDefault:"200ms"`
	MaxCommands int           `env:"ROVER_MAX_COMMANDS" envDefault:"10000"`
	Workers     int           `env:"ROVER_WORKERS" envDefault:"4"`
	JournalPath string        `env:"ROVER_JOURNAL"`
}

func Load() (Config, error) {
	cfg, err := Parse()
	if err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Parse reads the environment without validating, for callers that apply
// overrides such as command-line flags before calling Validate.
func Parse() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFrom reads the configuration from environ only.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := ParseEnvFrom(&cfg, environ); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Workers <= 0 {
		return errors.New("ROVER_WORKERS must be positive")
	}
	if c.MaxCommands <= 0 {
		return errors.New("ROVER_MAX_COMMANDS must be positive")
	}
	if c.RenderDelay < 0 {
		return errors.New("ROVER_RENDER_DELAY must not be negative")
	}
	return nil
}
