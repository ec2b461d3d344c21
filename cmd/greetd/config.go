package main

import (
	"io/fs"
	"os"
	"strconv"

	"github.com/innermond/greet/http"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	envAddr        = "GREET_ADDR"
	envLogLevel    = "GREET_LOG_LEVEL"
	envMaxInFlight = "GREET_MAX_IN_FLIGHT"

	defaultLogLevel    = "info"
	defaultMaxInFlight = 1
)

type Config struct {
	Addr        string
	LogLevel    zerolog.Level
	MaxInFlight int64
}

// LoadConfig reads envfile when it exists, then the process environment.
// Unset variables fall back to serving on localhost:8000 one request at a time.
func LoadConfig(envfile string) (*Config, error) {
	if envfile != "" {
		if err := godotenv.Load(envfile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "load %s", envfile)
		}
	}

	cfg := &Config{
		Addr:        http.DefaultAddr,
		MaxInFlight: defaultMaxInFlight,
	}

	if v := os.Getenv(envAddr); v != "" {
		cfg.Addr = v
	}

	level := defaultLogLevel
	if v := os.Getenv(envLogLevel); v != "" {
		level = v
	}
	if err := cfg.SetLogLevel(level); err != nil {
		return nil, err
	}

	if v := os.Getenv(envMaxInFlight); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", envMaxInFlight)
		}
		if n < 1 {
			return nil, errors.Errorf("%s must be at least 1, got %d", envMaxInFlight, n)
		}
		cfg.MaxInFlight = n
	}

	return cfg, nil
}

func (c *Config) SetLogLevel(s string) error {
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	c.LogLevel = level
	return nil
}
