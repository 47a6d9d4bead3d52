package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Server       ServerConfig    `mapstructure:"server"`
	Feed         FeedConfig      `mapstructure:"feed"`
	Catalog      CatalogConfig   `mapstructure:"catalog"`
	Telegram     TelegramConfig  `mapstructure:"telegram"`
	RateLimiting RateLimitConfig `mapstructure:"rate_limiting"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// FeedConfig contains feed source settings
type FeedConfig struct {
	URL       string        `mapstructure:"url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// CatalogConfig contains catalog building settings
type CatalogConfig struct {
	MonthNames []string `mapstructure:"month_names"`
}

// TelegramConfig contains Telegram bot settings
type TelegramConfig struct {
	BotToken  string `mapstructure:"bot_token"`
	WebAppURL string `mapstructure:"web_app_url"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerSecond int  `mapstructure:"requests_per_second"`
	Burst             int  `mapstructure:"burst"`
}
