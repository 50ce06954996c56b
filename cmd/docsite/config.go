package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/jackielii/docsite/content"
	"github.com/jackielii/docsite/i18n"
)

type config struct {
	Addr            string        `env:"ADDR" envDefault:":8080"`
	LocalesDir      string        `env:"LOCALES_DIR"`
	ContentDir      string        `env:"CONTENT_DIR"`
	DefaultLocale   string        `env:"DEFAULT_LOCALE" envDefault:"en"`
	Dev             bool          `env:"DEV"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// loadConfig reads DOCSITE_* variables, after merging a .env file when
// one exists.
func loadConfig() (config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config{}, fmt.Errorf("load .env: %w", err)
	}
	var cfg config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "DOCSITE_"}); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c config) bundle() (*i18n.Bundle, error) {
	if c.LocalesDir == "" {
		return i18n.DefaultWith(c.DefaultLocale)
	}
	return i18n.Load(os.DirFS(c.LocalesDir), c.DefaultLocale)
}

func (c config) store() (*content.Store, error) {
	if c.ContentDir == "" {
		return content.Default()
	}
	return content.Load(os.DirFS(c.ContentDir))
}
