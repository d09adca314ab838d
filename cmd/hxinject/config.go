package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/lmittmann/tint"
	"golang.org/x/text/language"
)

// Config is read from the environment.
type Config struct {
	Language       string `envDefault:"en"       env:"HXINJECT_LANGUAGE"`
	WelcomeMessage string `envDefault:"Welcome!" env:"HXINJECT_WELCOME"`
	Year           int    `envDefault:"2021"     env:"HXINJECT_YEAR"`

	LogLevel      string `envDefault:"info"                      env:"LOG_LEVEL"`
	LogTimeFormat string `envDefault:"2006-01-02T15:04:05Z07:00" env:"LOG_TIME_FORMAT"`
	LogColored    bool   `envDefault:"true"                      env:"LOG_COLORED"`
}

// LoadConfig parses the configuration from the environment.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("error parsing config: %w", err)
	}
	if _, err := cfg.Tag(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Tag returns the configured language.
func (c Config) Tag() (language.Tag, error) {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.Und, fmt.Errorf("invalid HXINJECT_LANGUAGE %q: %w", c.Language, err)
	}
	return tag, nil
}

// Level returns the configured log level, defaulting to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger returns a tint logger writing to w.
func (c Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      c.Level(),
		TimeFormat: c.LogTimeFormat,
		NoColor:    !c.LogColored,
	}))
}
