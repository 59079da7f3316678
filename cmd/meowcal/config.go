package main

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nikmy/meowcal/internal/api"
	"github.com/nikmy/meowcal/internal/markers"
	"github.com/nikmy/meowcal/internal/telegram"
	"github.com/nikmy/meowcal/pkg/calendar"
	"github.com/nikmy/meowcal/pkg/environment"
	"github.com/nikmy/meowcal/pkg/errors"
	"github.com/nikmy/meowcal/pkg/logger"
)

const tokenEnv = "MEOWCAL_TELEGRAM_TOKEN"

type Config struct {
	Environment environment.Env `yaml:"Environment"`
	Calendar    calendar.Config `yaml:"Calendar"`
	HTTP        api.Config      `yaml:"HTTP"`
	Telegram    telegram.Config `yaml:"Telegram"`
	Markers     markers.Config  `yaml:"Markers"`
}

// loadConfig reads the yaml file at path. A non-empty env and the token
// from the process environment take precedence over the file.
func loadConfig(path string, env *environment.Env) (*Config, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFailf(err, "read %q", path)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "parse yaml")
	}

	if env != nil && *env != environment.Unknown {
		cfg.Environment = *env
	}

	if token := os.Getenv(tokenEnv); token != "" {
		cfg.Telegram.Token = token
	}

	return &cfg, nil
}

// widgetSetters are shared by every host: calendar settings from the file
// and, when configured, day markers from an iCalendar file.
func widgetSetters(cfg *Config, log logger.Logger) ([]calendar.Setter, error) {
	setters, err := cfg.Calendar.Setters()
	if err != nil {
		return nil, errors.WrapFail(err, "apply calendar config")
	}

	if cfg.Markers.ICSPath == "" {
		return setters, nil
	}

	loc := time.Local
	if cfg.Calendar.Timezone != "" {
		loc, err = time.LoadLocation(cfg.Calendar.Timezone)
		if err != nil {
			return nil, errors.WrapFailf(err, "load timezone %q", cfg.Calendar.Timezone)
		}
	}

	src, err := markers.LoadFile(cfg.Markers.ICSPath, loc, log.With("markers"))
	if err != nil {
		return nil, errors.WrapFail(err, "load markers")
	}

	return append(setters, calendar.AsExtraRender(src.Render)), nil
}
