package config

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestConfig(t *testing.T) {
	tests := []struct {
		name    string
		setup   func()
		cleanup func()
		wantErr bool
		check   func(t *testing.T)
	}{
		{
			name: "environment variable override",
			setup: func() {
				viper.Reset()
				os.Setenv("DREAMECHO_SERVER_PORT", "9090")
			},
			cleanup: func() {
				os.Unsetenv("DREAMECHO_SERVER_PORT")
				viper.Reset()
			},
			wantErr: false,
			check: func(t *testing.T) {
				if GetInt("server.port") != 9090 {
					t.Errorf("Expected server.port to be overridden to 9090, got %d", GetInt("server.port"))
				}
			},
		},
		{
			name: "missing config file with defaults",
			setup: func() {
				viper.Reset()
				// No config file created
			},
			cleanup: func() {
				viper.Reset()
			},
			wantErr: false,
			check: func(t *testing.T) {
				// Should use defaults
				if GetInt("server.port") != 8080 {
					t.Errorf("Expected default server.port to be 8080, got %d", GetInt("server.port"))
				}
				if GetDuration("feeds.cache_ttl") != 24*time.Hour {
					t.Errorf("Expected default feeds.cache_ttl to be 24h, got %v", GetDuration("feeds.cache_ttl"))
				}
				if len(viper.GetStringSlice("feeds.proxies")) != 2 {
					t.Errorf("Expected two default feed proxies, got %v", viper.GetStringSlice("feeds.proxies"))
				}
				if viper.GetFloat64("search.threshold") != 0.25 {
					t.Errorf("Expected default search.threshold to be 0.25, got %v", viper.GetFloat64("search.threshold"))
				}
			},
		},
		{
			name: "out of range search threshold corrected",
			setup: func() {
				viper.Reset()
				os.Setenv("DREAMECHO_SEARCH_THRESHOLD", "2.5")
			},
			cleanup: func() {
				os.Unsetenv("DREAMECHO_SEARCH_THRESHOLD")
				viper.Reset()
			},
			wantErr: false,
			check: func(t *testing.T) {
				if viper.GetFloat64("search.threshold") != 0.25 {
					t.Errorf("Expected search.threshold to be corrected to 0.25, got %v", viper.GetFloat64("search.threshold"))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.cleanup()

			// Re-run initialization for each scenario; Init's once only
			// guards production startup.
			setDefaults()
			viper.SetEnvPrefix("DREAMECHO")
			viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
			viper.AutomaticEnv()
			if err := validate(); (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.check != nil {
				tt.check(t)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: &Config{
				Server: ServerConfig{
					Host: "localhost",
					Port: 8080,
				},
				Database: DatabaseConfig{
					Path: "./data/feeds.db",
				},
			},
			wantErr: false,
		},
		{
			name: "invalid port",
			config: &Config{
				Server: ServerConfig{
					Host: "localhost",
					Port: 0,
				},
			},
			wantErr: true,
		},
		{
			name: "empty database path is allowed",
			config: &Config{
				Server: ServerConfig{
					Host: "localhost",
					Port: 8080,
				},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.config.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	// Zero-value feed and search settings are corrected in place.
	cfg := &Config{Server: ServerConfig{Host: "localhost", Port: 8080}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Feeds.Timeout != 10*time.Second {
		t.Errorf("Expected corrected feeds timeout, got %v", cfg.Feeds.Timeout)
	}
	if cfg.Feeds.CacheMaxEntries != 100 {
		t.Errorf("Expected corrected cache max entries, got %d", cfg.Feeds.CacheMaxEntries)
	}
	if cfg.Search.Threshold != 0.25 {
		t.Errorf("Expected corrected search threshold, got %v", cfg.Search.Threshold)
	}
}
