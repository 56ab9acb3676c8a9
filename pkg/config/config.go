package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	apperrors "github.com/dreamecho/feed-api/pkg/errors"
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
		viper.SetEnvPrefix("DREAMECHO")
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
		return apperrors.ConfigError("server.port", fmt.Sprintf("port %d out of range", port))
	}

	if viper.GetString("database.path") == "" {
		// Database is optional, so we don't return an error
		fmt.Println("Warning: No database path configured")
	}

	// Auto-correct out-of-range feed settings
	if viper.GetDuration("feeds.timeout") <= 0 {
		viper.Set("feeds.timeout", 10*time.Second)
	}
	if viper.GetInt("feeds.cache_max_entries") <= 0 {
		viper.Set("feeds.cache_max_entries", 100)
	}
	if viper.GetInt("feeds.max_concurrent_refresh") <= 0 {
		viper.Set("feeds.max_concurrent_refresh", 5)
	}

	// Auto-correct an out-of-range search threshold
	threshold := viper.GetFloat64("search.threshold")
	if threshold <= 0 || threshold > 1 {
		viper.Set("search.threshold", 0.25)
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Feeds.Timeout <= 0 {
		c.Feeds.Timeout = 10 * time.Second
	}
	if c.Feeds.CacheMaxEntries <= 0 {
		c.Feeds.CacheMaxEntries = 100
	}
	if c.Search.Threshold <= 0 || c.Search.Threshold > 1 {
		c.Search.Threshold = 0.25
	}

	return nil
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

	// Database defaults
	viper.SetDefault("database.path", "./data/feeds.db")
	viper.SetDefault("database.max_connections", 10)
	viper.SetDefault("database.max_idle_connections", 5)
	viper.SetDefault("database.connection_max_lifetime", 30*time.Minute)
	viper.SetDefault("database.enable_wal", true)
	viper.SetDefault("database.enable_foreign_keys", true)
	viper.SetDefault("database.log_queries", false)

	// Feed fetching defaults. The proxy endpoints are tried in order after
	// the direct request fails; each gets the feed URL percent-encoded.
	viper.SetDefault("feeds.proxies", []string{
		"https://api.allorigins.win/get?url=",
		"https://api.codetabs.com/v1/proxy?quest=",
	})
	viper.SetDefault("feeds.timeout", 10*time.Second)
	viper.SetDefault("feeds.user_agent", "FeedAPI/1.0")
	viper.SetDefault("feeds.cache_ttl", 24*time.Hour)
	viper.SetDefault("feeds.cache_max_entries", 100)
	viper.SetDefault("feeds.max_concurrent_refresh", 5)
	viper.SetDefault("feeds.refresh_timeout", 30*time.Second)

	// Search defaults
	viper.SetDefault("search.threshold", 0.25)
	viper.SetDefault("search.max_results", 50)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.endpoints", map[string]int{
		"feeds":   60,
		"search":  60,
		"default": 120,
	})

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})
	viper.SetDefault("security.cors_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	viper.SetDefault("security.cors_headers", []string{"Content-Type", "Authorization"})
	viper.SetDefault("security.enable_request_id", true)
	viper.SetDefault("security.enable_recovery", true)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("logging.output", "stdout")
}
