package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort        = 3000
	defaultEnv         = "development"
	defaultSiteURL     = "http://localhost:3000"
	defaultFreeLimit   = 3
	defaultShortModel  = "gpt-4o-mini"
	defaultDeepModel   = "gpt-4o-mini"
	defaultImageModel  = "gpt-image-1"
	defaultCurrency    = "gbp"
	defaultUnitAmount  = 200
	defaultProductName = "Nightmare AI — Full Reveal"
)

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port:           defaultPort,
		Env:            defaultEnv,
		SiteURL:        defaultSiteURL,
		FreeDailyLimit: defaultFreeLimit,
		OpenAI: OpenAIConfig{
			ShortModel: defaultShortModel,
			DeepModel:  defaultDeepModel,
			ImageModel: defaultImageModel,
		},
		Stripe: StripeConfig{
			Currency:    defaultCurrency,
			UnitAmount:  defaultUnitAmount,
			ProductName: defaultProductName,
		},
	}
}

// Load reads the YAML config at configPath, applies defaults and environment
// overrides, and validates the result. A missing file at the default path is
// not an error; an explicitly given path must exist.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	explicit := path != "" && path != DefaultConfigPath
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := defaultAppConfig()

	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config file %q: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// run on defaults + env
	default:
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	applyEnvOverrides(&cfg)

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d, expected 1-65535", cfg.Port)
	}
	if cfg.FreeDailyLimit < 0 {
		return nil, fmt.Errorf("invalid free_daily_limit %d", cfg.FreeDailyLimit)
	}
	if cfg.Stripe.UnitAmount < 1 {
		return nil, fmt.Errorf("invalid stripe unit_amount %d", cfg.Stripe.UnitAmount)
	}
	cfg.SiteURL = strings.TrimRight(strings.TrimSpace(cfg.SiteURL), "/")
	if cfg.SiteURL == "" {
		cfg.SiteURL = defaultSiteURL
	}

	return &cfg, nil
}

// applyEnvOverrides lets secrets come from the environment so they never need
// to live in the config file.
func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); v != "" {
		cfg.OpenAI.APIKey = v
	}
	if v := strings.TrimSpace(os.Getenv("STRIPE_SECRET_KEY")); v != "" {
		cfg.Stripe.SecretKey = v
	}
	if v := strings.TrimSpace(os.Getenv("SITE_URL")); v != "" {
		cfg.SiteURL = v
	}
}
