package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"MarketAsk/internal/logging"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Data providers.
const (
	ProviderYahoo = "yahoo"
	ProviderREST  = "rest"
	ProviderMock  = "mock"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token" toml:"bot_token"`
		ChatID   string `yaml:"chat_id" toml:"chat_id"`
	} `yaml:"telegram" toml:"telegram"`
	DataSource struct {
		Provider string `yaml:"provider" toml:"provider" validate:"omitempty,oneof=yahoo rest mock"`
		BaseURL  string `yaml:"base_url" toml:"base_url" validate:"omitempty,url"`
		APIKey   string `yaml:"api_key" toml:"api_key"`
		Timeout  int    `yaml:"timeout" toml:"timeout" default:"30" validate:"gt=0"` // seconds
	} `yaml:"data_source" toml:"data_source"`
	Currency struct {
		USDToINR float64 `yaml:"usd_to_inr" toml:"usd_to_inr" default:"82.0" validate:"gt=0"`
	} `yaml:"currency" toml:"currency"`
	Forecast struct {
		DefaultHorizon int `yaml:"default_horizon" toml:"default_horizon" default:"30" validate:"gte=1,ltefield=MaxHorizon"`
		MaxHorizon     int `yaml:"max_horizon" toml:"max_horizon" default:"3650" validate:"gte=1,lte=3650"`
	} `yaml:"forecast" toml:"forecast"`
	HTTP struct {
		Host string `yaml:"host" toml:"host" default:"0.0.0.0"`
		Port int    `yaml:"port" toml:"port" default:"8080" validate:"gte=1,lte=65535"`
	} `yaml:"http" toml:"http"`
	Digest struct {
		Cron    string   `yaml:"cron" toml:"cron"`
		ChatID  string   `yaml:"chat_id" toml:"chat_id"`
		Queries []string `yaml:"queries" toml:"queries"`
	} `yaml:"digest" toml:"digest"`
	Logging logging.Config `yaml:"logging" toml:"logging"`
	Proxy   string         `yaml:"proxy" toml:"proxy"`
}

var validate = validator.New()

// Load reads config from a YAML or TOML file (by extension), fills defaults
// for anything the file leaves unset, then applies environment variable
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("set defaults: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := unmarshal(path, data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func unmarshal(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Unmarshal(data, cfg)
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

// Environment variable overrides
func (c *Config) applyEnv() error {
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		c.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		c.Telegram.ChatID = v
	}
	if v := os.Getenv("MARKET_PROVIDER"); v != "" {
		c.DataSource.Provider = v
	}
	if v := os.Getenv("MARKET_BASE_URL"); v != "" {
		c.DataSource.BaseURL = v
	}
	if v := os.Getenv("MARKET_API_KEY"); v != "" {
		c.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		c.Proxy = v
	}
	if v := os.Getenv("USD_TO_INR"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("USD_TO_INR: %w", err)
		}
		c.Currency.USDToINR = rate
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("HTTP_PORT: %w", err)
		}
		c.HTTP.Port = port
	}
	if v := os.Getenv("DIGEST_CRON"); v != "" {
		c.Digest.Cron = v
	}
	return nil
}

// Provider returns the configured data provider. When unset, a base URL
// selects the REST provider and Yahoo is used otherwise.
func (c *Config) Provider() string {
	if c.DataSource.Provider != "" {
		return c.DataSource.Provider
	}
	if c.DataSource.BaseURL != "" {
		return ProviderREST
	}
	return ProviderYahoo
}

// DataTimeout is the gateway HTTP timeout.
func (c *Config) DataTimeout() time.Duration {
	return time.Duration(c.DataSource.Timeout) * time.Second
}

// DigestChatID is the chat digests go to, falling back to the Telegram default chat.
func (c *Config) DigestChatID() string {
	if c.Digest.ChatID != "" {
		return c.Digest.ChatID
	}
	return c.Telegram.ChatID
}

// Validate checks the settings every surface depends on.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Provider() == ProviderREST && c.DataSource.BaseURL == "" {
		return fmt.Errorf("data_source.base_url is required for the rest provider")
	}
	return nil
}

// ValidateBot additionally checks what the Telegram bot needs.
func (c *Config) ValidateBot() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Digest.Cron != "" {
		if c.DigestChatID() == "" {
			return fmt.Errorf("digest.chat_id or telegram.chat_id is required when digest.cron is set")
		}
		if len(c.Digest.Queries) == 0 {
			return fmt.Errorf("digest.queries must not be empty when digest.cron is set")
		}
	}
	return nil
}
