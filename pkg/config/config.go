package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("ZOOCAST")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// Get returns a config value by key using Viper directly
func Get(key string) any {
	return viper.Get(key)
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("feed.url") == "" {
		return fmt.Errorf("feed.url must not be empty")
	}

	if names := viper.GetStringSlice("catalog.month_names"); len(names) != 0 && len(names) != 12 {
		return fmt.Errorf("catalog.month_names must list exactly 12 names, got %d", len(names))
	}

	// The bot is optional; warn when half-configured
	if viper.GetString("telegram.bot_token") != "" && viper.GetString("telegram.web_app_url") == "" {
		log.Printf("[WARN] telegram.web_app_url not set, the /start button will not work correctly")
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Feed.URL == "" {
		return fmt.Errorf("feed.url must not be empty")
	}

	return nil
}

// MonthNames returns the configured month display table, or the empty slice
// when the catalog default should be used.
func MonthNames() []string {
	return viper.GetStringSlice("catalog.month_names")
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Feed source defaults
	viper.SetDefault("feed.url", "https://feeds.feedburner.com/Zoo105")
	viper.SetDefault("feed.timeout", 30*time.Second)
	viper.SetDefault("feed.user_agent", "ZooCatalogAPI/1.0")

	// Catalog defaults; month_names empty means the built-in Italian table
	viper.SetDefault("catalog.month_names", []string{})

	// Telegram defaults; empty token disables the bot
	viper.SetDefault("telegram.bot_token", "")
	viper.SetDefault("telegram.web_app_url", "")

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.requests_per_second", 10)
	viper.SetDefault("rate_limiting.burst", 20)
}
