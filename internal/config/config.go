package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App struct {
		Name      string `koanf:"name"`
		HTTPAddr  string `koanf:"http_addr"`
		LogLevel  string `koanf:"log_level"`
		LogFile   string `koanf:"log_file"`
		DevAlerts bool   `koanf:"dev_alerts"`
	} `koanf:"app"`

	HTTP struct {
		ReadTimeout  time.Duration `koanf:"read_timeout"`
		WriteTimeout time.Duration `koanf:"write_timeout"`
		IdleTimeout  time.Duration `koanf:"idle_timeout"`
	} `koanf:"http"`

	Kitchen struct {
		PreparingAfter time.Duration `koanf:"preparing_after"`
		ReadyAfter     time.Duration `koanf:"ready_after"`
		EstimatedReady time.Duration `koanf:"estimated_ready"`
	} `koanf:"kitchen"`

	Rabbit struct {
		URL string `koanf:"url"`
	} `koanf:"rabbitmq"`
}

// Load reads base.yaml from pathDir, overlays an optional per-environment
// yaml, then overlays ONEEATS_-prefixed environment variables
// (nested keys with __, e.g. ONEEATS_APP__HTTP_ADDR).
func Load(pathDir, envName string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(fmt.Sprintf("%s/base.yaml", pathDir)), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("load base: %w", err)
	}

	// Optional: allow missing for local runs.
	_ = k.Load(file.Provider(fmt.Sprintf("%s/%s.yaml", pathDir, envName)), yaml.Parser())

	if err := k.Load(env.Provider("ONEEATS_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "ONEEATS_")
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration used when a key is absent from every
// source. Tests build on top of it directly.
func Default() Config {
	var cfg Config
	cfg.App.Name = "oneeats-ordering"
	cfg.App.HTTPAddr = ":8084"
	cfg.App.LogLevel = "info"
	cfg.App.LogFile = "./logs/app.log"
	cfg.HTTP.ReadTimeout = 5 * time.Second
	cfg.HTTP.WriteTimeout = 10 * time.Second
	cfg.HTTP.IdleTimeout = 60 * time.Second
	cfg.Kitchen.PreparingAfter = 2 * time.Second
	cfg.Kitchen.ReadyAfter = 15 * time.Second
	cfg.Kitchen.EstimatedReady = 30 * time.Minute
	return cfg
}

func (c Config) Validate() error {
	if c.App.HTTPAddr == "" {
		return fmt.Errorf("app.http_addr required")
	}
	if c.Kitchen.PreparingAfter <= 0 || c.Kitchen.ReadyAfter <= 0 {
		return fmt.Errorf("kitchen delays must be positive")
	}
	if c.Kitchen.ReadyAfter <= c.Kitchen.PreparingAfter {
		return fmt.Errorf("kitchen.ready_after must exceed kitchen.preparing_after")
	}
	return nil
}
