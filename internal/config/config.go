package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Config holds all application configuration.
type Config struct {
	Crypto struct {
		BaseURL  string   `yaml:"base_url" validate:"required,url"`
		APIKey   string   `yaml:"api_key"`
		Currency string   `yaml:"vs_currency" validate:"required,alpha"`
		IDs      []string `yaml:"ids" validate:"dive,required"`
	} `yaml:"crypto"`
	Equity struct {
		BaseURL       string   `yaml:"base_url" validate:"required,url"`
		Tickers       []string `yaml:"tickers" validate:"dive,required"`
		StripSuffixes []string `yaml:"strip_suffixes" validate:"dive,required"`
	} `yaml:"equity"`
	Refresh struct {
		Schedule       string        `yaml:"schedule" validate:"required,cronspec"`
		RedrawInterval time.Duration `yaml:"redraw_interval" validate:"gt=0"`
	} `yaml:"refresh"`
	Metrics struct {
		ListenAddr string `yaml:"listen_addr" validate:"omitempty,hostname_port"`
	} `yaml:"metrics"`
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
	Proxy    string `yaml:"proxy" validate:"omitempty,url"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("cronspec", validateCronSpec); err != nil {
		panic(err)
	}
	return v
}

func validateCronSpec(fl validator.FieldLevel) bool {
	_, err := ParseSchedule(fl.Field().String())
	return err == nil
}

// ParseSchedule parses a standard cron spec or descriptor such as "@every 10s".
func ParseSchedule(spec string) (cron.Schedule, error) {
	return cron.ParseStandard(spec)
}

// Load returns the configuration compiled into the binary.
func Load() (*Config, error) {
	return Parse(defaultYAML)
}

// Parse decodes YAML config and fills in defaults. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Defaults
	if cfg.Crypto.BaseURL == "" {
		cfg.Crypto.BaseURL = "https://api.coingecko.com/api/v3"
	}
	if cfg.Crypto.Currency == "" {
		cfg.Crypto.Currency = "usd"
	}
	if cfg.Equity.BaseURL == "" {
		cfg.Equity.BaseURL = "https://query1.finance.yahoo.com"
	}
	if cfg.Refresh.Schedule == "" {
		cfg.Refresh.Schedule = "@every 10s"
	}
	if cfg.Refresh.RedrawInterval == 0 {
		cfg.Refresh.RedrawInterval = time.Second
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "error"
	}

	return cfg, nil
}

// Validate checks field formats and the refresh schedule.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config: %s failed %q validation (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
