package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DefaultEnvFile is loaded from the working directory when present
const DefaultEnvFile = ".env"

// Env holds values supplied through the process environment or a .env file
type Env struct {
	AccessKey string        `envconfig:"UNSPLASH_ACCESS_KEY"`
	BaseURL   string        `envconfig:"UNSPLASH_API_URL" default:"https://api.unsplash.com"`
	Timeout   time.Duration `envconfig:"UNSPLASH_TIMEOUT" default:"30s"`
}

// LoadEnv loads the given .env files (DefaultEnvFile if none) and parses the environment.
// Missing files are ignored; variables already set in the environment win.
func LoadEnv(files ...string) (*Env, error) {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &env, nil
}
