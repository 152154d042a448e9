package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"rolfe.dev/internal/content"
	"rolfe.dev/internal/models"
)

// Config holds all application configuration
type Config struct {
	ServerAddr     string        `env:"SERVER_ADDR" envDefault:":8080"`
	StaticDir      string        `env:"STATIC_DIR" envDefault:"static"`
	StaticPrefix   string        `env:"STATIC_PREFIX" envDefault:"/static"`
	SiteTitle      string        `env:"SITE_TITLE"`
	AllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	Portfolio *models.Portfolio
}

// Load reads the optional .env files, then the environment, and attaches
// the compiled-in portfolio content.
func Load(envFiles ...string) (*Config, error) {
	if err := loadDotEnv(envFiles...); err != nil {
		return nil, err
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	portfolio, err := content.Load()
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	cfg.Portfolio = portfolio

	return &cfg, nil
}

// loadDotEnv loads each file that exists. Variables already set in the
// environment win over the files.
func loadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}
