package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   int64  `yaml:"chat_id"` // destination for autonomous signals
	} `yaml:"telegram"`
	Market struct {
		ExchangeSuffix string   `yaml:"exchange_suffix"`
		Watchlist      []string `yaml:"watchlist"`
	} `yaml:"market"`
	Schedule struct {
		AlertCron  string `yaml:"alert_cron"`
		SignalCron string `yaml:"signal_cron"`
	} `yaml:"schedule"`
	Signals struct {
		CooldownSeconds int `yaml:"cooldown_seconds"`
	} `yaml:"signals"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("SIGNAL_CHAT_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Telegram.ChatID = id
		}
	}
	if v := os.Getenv("EXCHANGE_SUFFIX"); v != "" {
		cfg.Market.ExchangeSuffix = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("SIGNAL_COOLDOWN_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Signals.CooldownSeconds = n
		}
	}

	// Defaults
	if cfg.Market.ExchangeSuffix == "" {
		cfg.Market.ExchangeSuffix = ".NS"
	}
	if len(cfg.Market.Watchlist) == 0 {
		cfg.Market.Watchlist = []string{
			"SBIN", "TCS", "MRF", "RELIANCE", "YESBANK", "IRFC", "SUZLON",
			"TATAINVEST", "SILVERBEES", "HINDCOPPER", "ONGC",
		}
	}
	if cfg.Schedule.AlertCron == "" {
		cfg.Schedule.AlertCron = "@every 1m"
	}
	if cfg.Schedule.SignalCron == "" {
		cfg.Schedule.SignalCron = "@every 5m"
	}
	if cfg.Signals.CooldownSeconds == 0 {
		cfg.Signals.CooldownSeconds = 900
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/alerts.db"
	}

	return cfg, nil
}

// Cooldown returns the signal cooldown as a duration.
func (c *Config) Cooldown() time.Duration {
	return time.Duration(c.Signals.CooldownSeconds) * time.Second
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == 0 {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if len(c.Market.Watchlist) == 0 {
		return fmt.Errorf("market.watchlist must not be empty")
	}
	return nil
}
